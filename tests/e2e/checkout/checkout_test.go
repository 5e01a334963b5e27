//go:build e2e

package checkout_test

import (
	"net/http"
	"testing"
	"time"

	"restro-api/internal/domain/user"
	"restro-api/internal/handler/dto/response"
	"restro-api/tests/common/authtest"
	"restro-api/tests/common/builder"
	"restro-api/tests/common/dbtest"
	"restro-api/tests/common/httptest"
	"restro-api/tests/e2e"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	quoteURL  = "/api/checkout/quote"
	ordersURL = "/api/orders"
)

type CheckoutSuite struct {
	e2e.SharedSuite
}

func (s *CheckoutSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CheckoutSuite))
}

// standard cart: 2x250.00 + 3x60.00 = 680.00 subtotal
func standardCart() *builder.CartBuilder {
	return builder.NewCartBuilder().
		WithLine("Paneer Tikka", 2, "250.00").
		WithLine("Garlic Naan", 3, "60.00")
}

func requireMoney(t *testing.T, expected string, actual decimal.Decimal, field string) {
	t.Helper()
	require.True(t, decimal.RequireFromString(expected).Equal(actual),
		"%s: expected %s, got %s", field, expected, actual.String())
}

// =============================================================================
// TestQuote - Checkout quote API tests
// =============================================================================

func (s *CheckoutSuite) TestQuote() {
	s.Run("Normal case: Delivery quote with percentage coupon", func() {
		t := s.T()

		now := time.Now()
		dbtest.CreateTestOffer(t, s.DB, "SAVE20", "percentage", "20",
			now.Add(-time.Hour), now.Add(24*time.Hour), true)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", string(user.RoleCustomer))

		code := "SAVE20"
		reqBody := standardCart().BuildQuoteRequestDTO("delivery", &code)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, reqBody, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actualRes response.QuoteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actualRes))

		requireMoney(t, "680.00", actualRes.Totals.Subtotal, "subtotal")
		requireMoney(t, "136.00", actualRes.Totals.Discount, "discount")
		requireMoney(t, "27.20", actualRes.Totals.GSTAmount, "gstAmount")
		requireMoney(t, "50.00", actualRes.Totals.DeliveryCharges, "deliveryCharges")
		requireMoney(t, "20.00", actualRes.Totals.ServiceCharges, "serviceCharges")
		requireMoney(t, "641.20", actualRes.Totals.Total, "total")

		require.NotNil(t, actualRes.Coupon, "Coupon result should be present")
		require.True(t, actualRes.Coupon.IsValid)
		require.Equal(t, "SAVE20", actualRes.Coupon.Code)
		requireMoney(t, "136.00", actualRes.Coupon.DiscountAmount, "coupon discountAmount")
	})

	s.Run("Normal case: Pickup quote without coupon", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", string(user.RoleCustomer))

		reqBody := standardCart().BuildQuoteRequestDTO("pickup", nil)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, reqBody, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actualRes response.QuoteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actualRes))

		requireMoney(t, "680.00", actualRes.Totals.Subtotal, "subtotal")
		requireMoney(t, "0.00", actualRes.Totals.Discount, "discount")
		requireMoney(t, "34.00", actualRes.Totals.GSTAmount, "gstAmount")
		requireMoney(t, "0.00", actualRes.Totals.DeliveryCharges, "deliveryCharges")
		requireMoney(t, "20.00", actualRes.Totals.ServiceCharges, "serviceCharges")
		requireMoney(t, "734.00", actualRes.Totals.Total, "total")
		require.Nil(t, actualRes.Coupon, "No coupon result without an offer code")
	})

	s.Run("Normal case: Expired coupon still quotes with zero discount", func() {
		t := s.T()

		now := time.Now()
		dbtest.CreateTestOffer(t, s.DB, "OLD10", "percentage", "10",
			now.Add(-48*time.Hour), now.Add(-24*time.Hour), true)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", string(user.RoleCustomer))

		code := "OLD10"
		reqBody := standardCart().BuildQuoteRequestDTO("delivery", &code)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, reqBody, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actualRes response.QuoteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actualRes))

		requireMoney(t, "0.00", actualRes.Totals.Discount, "discount")
		requireMoney(t, "784.00", actualRes.Totals.Total, "total")
		require.NotNil(t, actualRes.Coupon)
		require.False(t, actualRes.Coupon.IsValid)
		require.Equal(t, "Offer has expired or not yet active", actualRes.Coupon.Message)
	})

	s.Run("Normal case: Fixed discount is clamped to subtotal", func() {
		t := s.T()

		now := time.Now()
		dbtest.CreateTestOffer(t, s.DB, "FLAT1000", "fixed", "1000",
			now.Add(-time.Hour), now.Add(24*time.Hour), true)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", string(user.RoleCustomer))

		code := "FLAT1000"
		reqBody := standardCart().BuildQuoteRequestDTO("pickup", &code)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, reqBody, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actualRes response.QuoteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actualRes))

		requireMoney(t, "680.00", actualRes.Totals.Discount, "discount")
		requireMoney(t, "0.00", actualRes.Totals.GSTAmount, "gstAmount")
		requireMoney(t, "20.00", actualRes.Totals.Total, "total")
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		reqBody := standardCart().BuildQuoteRequestDTO("pickup", nil)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, quoteURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, "Should reject unauthorized access")
	})
}

// =============================================================================
// TestPlaceOrder - Order placement API tests
// =============================================================================

func (s *CheckoutSuite) TestPlaceOrder() {
	s.Run("Normal case: Placed order persists the quoted breakdown", func() {
		t := s.T()

		now := time.Now()
		dbtest.CreateTestOffer(t, s.DB, "SAVE20", "percentage", "20",
			now.Add(-time.Hour), now.Add(24*time.Hour), true)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", string(user.RoleCustomer))

		code := "SAVE20"
		reqBody := standardCart().BuildPlaceOrderRequestDTO("delivery", &code)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "placed", created.Status)
		require.Equal(t, "delivery", created.Fulfillment)
		require.Len(t, created.Lines, 2)
		require.NotNil(t, created.OfferCode)
		require.Equal(t, "SAVE20", *created.OfferCode)
		requireMoney(t, "641.20", created.Totals.Total, "total")

		// Fetch by ID and verify the stored breakdown sums to the total.
		getURL := ordersURL + "/" + created.ID.String()
		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, getURL, nil, token)
		require.Equal(t, http.StatusOK, gw.Code, gw.Body.String())

		var fetched response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, gw.Body, &fetched))
		require.Equal(t, created.ID, fetched.ID)
		requireMoney(t, "680.00", fetched.Totals.Subtotal, "subtotal")
		requireMoney(t, "136.00", fetched.Totals.Discount, "discount")
		requireMoney(t, "27.20", fetched.Totals.GSTAmount, "gstAmount")
		requireMoney(t, "50.00", fetched.Totals.DeliveryCharges, "deliveryCharges")
		requireMoney(t, "20.00", fetched.Totals.ServiceCharges, "serviceCharges")

		recomputed := fetched.Totals.Subtotal.
			Sub(fetched.Totals.Discount).
			Add(fetched.Totals.GSTAmount).
			Add(fetched.Totals.DeliveryCharges).
			Add(fetched.Totals.ServiceCharges)
		require.True(t, recomputed.Equal(fetched.Totals.Total),
			"breakdown should sum to total: %s != %s", recomputed.String(), fetched.Totals.Total.String())
	})

	s.Run("Error case: Expired coupon rejects placement", func() {
		t := s.T()

		now := time.Now()
		dbtest.CreateTestOffer(t, s.DB, "OLD10", "percentage", "10",
			now.Add(-48*time.Hour), now.Add(-24*time.Hour), true)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", string(user.RoleCustomer))

		code := "OLD10"
		reqBody := standardCart().BuildPlaceOrderRequestDTO("delivery", &code)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("Error case: Empty cart fails validation", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", string(user.RoleCustomer))

		reqBody := map[string]any{
			"lines":       []any{},
			"fulfillment": "pickup",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		reqBody := standardCart().BuildPlaceOrderRequestDTO("pickup", nil)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, "Should reject unauthorized access")
	})
}

// =============================================================================
// TestGetOrder - Order retrieval access tests
// =============================================================================

func (s *CheckoutSuite) TestGetOrder() {
	s.Run("Error case: Another customer's order reads as not found", func() {
		t := s.T()

		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleCustomer))

		reqBody := standardCart().BuildPlaceOrderRequestDTO("pickup", nil)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, ownerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleCustomer))

		getURL := ordersURL + "/" + created.ID.String()
		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, getURL, nil, otherToken)
		require.Equal(t, http.StatusNotFound, gw.Code, "Foreign orders should not be distinguishable from missing ones")
	})

	s.Run("Normal case: Staff can read any order", func() {
		t := s.T()

		ownerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "owner@example.com", string(user.RoleCustomer))

		reqBody := standardCart().BuildPlaceOrderRequestDTO("pickup", nil)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, ownerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, "staff@example.com", string(user.RoleStaff))

		getURL := ordersURL + "/" + created.ID.String()
		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, getURL, nil, staffToken)
		require.Equal(t, http.StatusOK, gw.Code, gw.Body.String())
	})
}

// =============================================================================
// TestListOrders - Order history API tests
// =============================================================================

func (s *CheckoutSuite) TestListOrders() {
	s.Run("Normal case: History lists only the caller's orders, newest first", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", string(user.RoleCustomer))
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleCustomer))

		first := standardCart().BuildPlaceOrderRequestDTO("pickup", nil)
		second := standardCart().BuildPlaceOrderRequestDTO("delivery", nil)
		foreign := standardCart().BuildPlaceOrderRequestDTO("pickup", nil)

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, first, token)
		require.Equal(t, http.StatusCreated, w1.Code)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, second, token)
		require.Equal(t, http.StatusCreated, w2.Code)
		w3 := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, foreign, otherToken)
		require.Equal(t, http.StatusCreated, w3.Code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actualRes []*response.OrderListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actualRes))
		require.Len(t, actualRes, 2, "Should only list the caller's orders")
		require.Equal(t, "delivery", actualRes[0].Fulfillment, "Most recent order comes first")
	})

	s.Run("Normal case: Limit caps the history length", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "customer@example.com", string(user.RoleCustomer))

		for range 3 {
			reqBody := standardCart().BuildPlaceOrderRequestDTO("pickup", nil)
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody, token)
			require.Equal(t, http.StatusCreated, w.Code)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL+"?limit=2", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var actualRes []*response.OrderListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actualRes))
		require.Len(t, actualRes, 2)
	})
}
