package api

import (
	"errors"
	"net/http"

	reqdto "restro-api/internal/handler/dto/request"
	resdto "restro-api/internal/handler/dto/response"
	"restro-api/internal/usecase/commands"
	"restro-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OfferHandler struct {
	offerCommands commands.OfferCommands
	offerQueries  queries.OfferQueries
}

func NewOfferHandler(offerCommands commands.OfferCommands, offerQueries queries.OfferQueries) *OfferHandler {
	return &OfferHandler{
		offerCommands: offerCommands,
		offerQueries:  offerQueries,
	}
}

// @Summary Create offer
// @Description Create a new offer code
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOfferRequest true "Offer request"
// @Success 201 {object} resdto.OfferResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/offers [post]
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var req reqdto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.offerCommands.Create(c.Request.Context(), req)
	if err != nil {
		h.writeOfferError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromOfferView(view))
}

// @Summary Update offer
// @Description Update an offer. The code itself is immutable.
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body reqdto.UpdateOfferRequest true "Fields to update"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/offers/{id} [put]
func (h *OfferHandler) UpdateOffer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid offer ID format",
		})
		return
	}

	var req reqdto.UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.offerCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeOfferError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOfferView(view))
}

// @Summary Delete offer
// @Description Delete an offer
// @Tags offers
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/offers/{id} [delete]
func (h *OfferHandler) DeleteOffer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid offer ID format",
		})
		return
	}

	if err := h.offerCommands.Delete(c.Request.Context(), id); err != nil {
		h.writeOfferError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List offers
// @Description List all offers
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OfferResponse
// @Router /admin/offers [get]
func (h *OfferHandler) ListOffers(c *gin.Context) {
	views, err := h.offerQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.OfferResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromOfferView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get offer
// @Description Get offer by ID
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/offers/{id} [get]
func (h *OfferHandler) GetOffer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid offer ID format",
		})
		return
	}

	view, err := h.offerQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeOfferError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOfferView(view))
}

// @Summary Validate offer code
// @Description Check a code against the current offer list and a reference amount. The outcome, valid or not, comes back with a 200.
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidateOfferRequest true "Validation request"
// @Success 200 {object} resdto.CouponResultResponse
// @Failure 400 {object} map[string]string
// @Router /admin/offers/validate [post]
func (h *OfferHandler) ValidateOffer(c *gin.Context) {
	var req reqdto.ValidateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.offerCommands.Validate(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCouponResult(result))
}

func (h *OfferHandler) writeOfferError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrOfferNotFound), errors.Is(err, queries.ErrOfferNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Offer not found",
		})
	case errors.Is(err, commands.ErrDuplicateOfferCode):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Offer code already exists",
		})
	case errors.Is(err, commands.ErrOfferValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Offer validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
