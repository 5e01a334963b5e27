//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"restro-api/internal/domain/offer"
	"restro-api/internal/domain/user"
	"restro-api/internal/handler/api"
	resdto "restro-api/internal/handler/dto/response"
	"restro-api/internal/usecase/commands"
	"restro-api/internal/usecase/queries"
	"restro-api/tests/common/builder"
	"restro-api/tests/common/httptest"
	"restro-api/tests/common/testutil"
	commandsmock "restro-api/tests/mock/commands"
	queriesmock "restro-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OfferHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOfferCommands
	mockQueries  *queriesmock.MockOfferQueries
	handler      *api.OfferHandler
}

func (s *OfferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOfferCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOfferQueries(s.mockCtrl)
	s.handler = api.NewOfferHandler(s.mockCommands, s.mockQueries)

	// Mock admin authentication middleware for testing
	adminMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	admin := s.router.Group("/admin", adminMiddleware)
	admin.GET("/offers", s.handler.ListOffers)
	admin.POST("/offers", s.handler.CreateOffer)
	admin.POST("/offers/validate", s.handler.ValidateOffer)
	admin.GET("/offers/:id", s.handler.GetOffer)
	admin.PUT("/offers/:id", s.handler.UpdateOffer)
	admin.DELETE("/offers/:id", s.handler.DeleteOffer)
}

func (s *OfferHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOfferHandlerSuite(t *testing.T) {
	suite.Run(t, new(OfferHandlerTestSuite))
}

func (s *OfferHandlerTestSuite) TestCreateOffer() {
	url := "/admin/offers"

	reqBody := builder.NewOfferBuilder().BuildCreateRequestDTO()
	returnView := builder.NewOfferBuilder().BuildView()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.OfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Code, response.Code)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: code", mutate: testutil.Field("code", nil)},
			{name: "missing field: discount_type", mutate: testutil.Field("discount_type", nil)},
			{name: "invalid discount_type", mutate: testutil.Field("discount_type", "bogof")},
			{name: "missing field: valid_from", mutate: testutil.Field("valid_from", nil)},
			{name: "missing field: valid_to", mutate: testutil.Field("valid_to", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "duplicate code",
				commandsError:  commands.ErrDuplicateOfferCode,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already exists",
			},
			{
				name:           "domain validation failed",
				commandsError:  commands.ErrOfferValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *OfferHandlerTestSuite) TestUpdateOffer() {
	offerID := uuid.New()
	url := "/admin/offers/" + offerID.String()

	reqBody := map[string]any{"is_active": false}
	returnView := builder.NewOfferBuilder().WithActive(false).BuildView()
	returnView.ID = offerID

	s.Run("success: returns 200 OK with updated offer", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), offerID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var response resdto.OfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(offerID, response.ID)
		s.False(response.IsActive)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/offers/invalid-uuid", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid offer ID")
	})

	s.Run("error: 404 Not Found for missing offer", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), offerID, gomock.Any()).
			Return(nil, commands.ErrOfferNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Offer not found")
	})
}

func (s *OfferHandlerTestSuite) TestDeleteOffer() {
	offerID := uuid.New()
	url := "/admin/offers/" + offerID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), offerID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for missing offer", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), offerID).
			Return(commands.ErrOfferNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Offer not found")
	})
}

func (s *OfferHandlerTestSuite) TestListOffers() {
	url := "/admin/offers"

	views := []*queries.OfferView{
		builder.NewOfferBuilder().BuildView(),
		builder.NewOfferBuilder().WithCode("FLAT50").WithFixedDiscount("50").BuildView(),
	}

	s.Run("success: returns all offers", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.OfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("FLAT50", response[1].Code)
	})
}

func (s *OfferHandlerTestSuite) TestGetOffer() {
	offerID := uuid.New()
	url := "/admin/offers/" + offerID.String()

	returnView := builder.NewOfferBuilder().BuildView()
	returnView.ID = offerID

	s.Run("success: returns 200 OK with OfferResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), offerID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.OfferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(offerID, response.ID)
	})

	s.Run("error: 404 Not Found for missing offer", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), offerID).
			Return(nil, queries.ErrOfferNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Offer not found")
	})
}

func (s *OfferHandlerTestSuite) TestValidateOffer() {
	url := "/admin/offers/validate"

	reqBody := map[string]any{"code": "WELCOME10", "reference_amount": "500.00"}

	s.Run("success: valid code returns discount", func() {
		offerID := uuid.New()
		result := &offer.Result{
			IsValid:        true,
			OfferID:        &offerID,
			Code:           "WELCOME10",
			DiscountAmount: decimal.RequireFromString("50.00"),
			Message:        "WELCOME10 applied: 10% off",
		}

		s.mockCommands.EXPECT().Validate(gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CouponResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.IsValid)
		s.True(response.DiscountAmount.Equal(decimal.RequireFromString("50.00")))
	})

	s.Run("success: unknown code reports invalid with 200", func() {
		result := &offer.Result{
			IsValid: false,
			Message: "Invalid offer code",
		}

		s.mockCommands.EXPECT().Validate(gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CouponResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.IsValid)
		s.Equal("Invalid offer code", response.Message)
	})

	s.Run("error: 400 Bad Request for missing code", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"reference_amount": "500.00"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
