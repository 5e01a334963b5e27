//go:build e2e

package offers_test

import (
	"net/http"
	"testing"
	"time"

	"restro-api/internal/domain/user"
	"restro-api/internal/handler/dto/request"
	"restro-api/internal/handler/dto/response"
	"restro-api/tests/common/authtest"
	"restro-api/tests/common/builder"
	"restro-api/tests/common/httptest"
	"restro-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	offersURL         = "/api/admin/offers"
	validateOffersURL = "/api/admin/offers/validate"
)

type OfferSuite struct {
	e2e.SharedSuite
}

func (s *OfferSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestOfferSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OfferSuite))
}

func (s *OfferSuite) adminToken() string {
	return authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
}

// =============================================================================
// TestCreateOffer - Offer creation API tests
// =============================================================================

func (s *OfferSuite) TestCreateOffer() {
	s.Run("Normal case: Admin can create an offer", func() {
		t := s.T()
		token := s.adminToken()

		reqBody := builder.NewOfferBuilder().
			WithCode("WELCOME10").
			WithPercentageDiscount("10").
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, offersURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.OfferResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "WELCOME10", created.Code)
		require.Equal(t, "percentage", created.DiscountType)
		require.NotEqual(t, uuid.Nil, created.ID)
	})

	s.Run("Error case: Duplicate code conflicts", func() {
		t := s.T()
		token := s.adminToken()

		reqBody := builder.NewOfferBuilder().
			WithCode("WELCOME10").
			WithPercentageDiscount("10").
			BuildCreateRequestDTO()

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, offersURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w1.Code)

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, offersURL, reqBody, token)
		require.Equal(t, http.StatusConflict, w2.Code, "Should reject a duplicate offer code")
	})

	s.Run("Error case: Customer role is forbidden", func() {
		t := s.T()
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", string(user.RoleCustomer))

		reqBody := builder.NewOfferBuilder().
			WithCode("NOPE").
			WithPercentageDiscount("10").
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, offersURL, reqBody, token)
		require.Equal(t, http.StatusForbidden, w.Code, "Admin surface should be closed to customers")
	})
}

// =============================================================================
// TestUpdateOffer - Offer update API tests
// =============================================================================

func (s *OfferSuite) TestUpdateOffer() {
	s.Run("Normal case: Deactivating an offer takes effect immediately", func() {
		t := s.T()
		token := s.adminToken()

		createReq := builder.NewOfferBuilder().
			WithCode("SEASONAL").
			WithFixedDiscount("75").
			BuildCreateRequestDTO()

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, offersURL, createReq, token)
		require.Equal(t, http.StatusCreated, cw.Code)

		var created response.OfferResponse
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &created))

		reqBody := map[string]any{"is_active": false}
		url := offersURL + "/" + created.ID.String()
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, url, reqBody, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated response.OfferResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
		require.False(t, updated.IsActive)
		require.Equal(t, "SEASONAL", updated.Code, "Code is immutable through updates")

		// A deactivated code no longer validates.
		vw := httptest.PerformRequest(t, s.Router, http.MethodPost, validateOffersURL,
			request.ValidateOfferRequest{Code: "SEASONAL", ReferenceAmount: decimal.NewFromInt(500)}, token)
		require.Equal(t, http.StatusOK, vw.Code)

		var result response.CouponResultResponse
		require.NoError(t, httptest.DecodeResponseBody(t, vw.Body, &result))
		require.False(t, result.IsValid)
		require.Equal(t, "Offer is not active", result.Message)
	})

	s.Run("Error case: Returns 404 for non-existent offer", func() {
		t := s.T()
		token := s.adminToken()

		reqBody := map[string]any{"is_active": false}
		url := offersURL + "/" + uuid.New().String()
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, url, reqBody, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestDeleteOffer - Offer deletion API tests
// =============================================================================

func (s *OfferSuite) TestDeleteOffer() {
	s.Run("Normal case: Deleted offer disappears from the list", func() {
		t := s.T()
		token := s.adminToken()

		createReq := builder.NewOfferBuilder().
			WithCode("TEMP").
			WithFixedDiscount("25").
			BuildCreateRequestDTO()

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, offersURL, createReq, token)
		require.Equal(t, http.StatusCreated, cw.Code)

		var created response.OfferResponse
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &created))

		url := offersURL + "/" + created.ID.String()
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		require.Equal(t, http.StatusNotFound, gw.Code, "Deleted offer should not be retrievable")

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, offersURL, nil, token)
		require.Equal(t, http.StatusOK, lw.Code)

		var listed []*response.OfferResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &listed))
		require.Empty(t, listed)
	})
}

// =============================================================================
// TestValidateOffer - Offer validation API tests
// =============================================================================

func (s *OfferSuite) TestValidateOffer() {
	s.Run("Normal case: Percentage discount computed against reference amount", func() {
		t := s.T()
		token := s.adminToken()

		now := time.Now()
		createReq := builder.NewOfferBuilder().
			WithCode("SAVE20").
			WithPercentageDiscount("20").
			WithWindow(now.Add(-time.Hour), now.Add(24*time.Hour)).
			BuildCreateRequestDTO()

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, offersURL, createReq, token)
		require.Equal(t, http.StatusCreated, cw.Code)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, validateOffersURL,
			request.ValidateOfferRequest{Code: "SAVE20", ReferenceAmount: decimal.RequireFromString("250.00")}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var result response.CouponResultResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &result))
		require.True(t, result.IsValid)
		require.Equal(t, "SAVE20", result.Code)
		require.True(t, decimal.RequireFromString("50.00").Equal(result.DiscountAmount),
			"expected 50.00, got %s", result.DiscountAmount.String())
	})

	s.Run("Normal case: Unknown code is a negative result, not an error", func() {
		t := s.T()
		token := s.adminToken()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, validateOffersURL,
			request.ValidateOfferRequest{Code: "GHOST", ReferenceAmount: decimal.NewFromInt(100)}, token)
		require.Equal(t, http.StatusOK, w.Code)

		var result response.CouponResultResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &result))
		require.False(t, result.IsValid)
		require.Equal(t, "Invalid offer code", result.Message)
		require.True(t, result.DiscountAmount.IsZero())
	})
}
