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

type MenuHandler struct {
	menuCommands commands.MenuCommands
	menuQueries  queries.MenuQueries
}

func NewMenuHandler(menuCommands commands.MenuCommands, menuQueries queries.MenuQueries) *MenuHandler {
	return &MenuHandler{
		menuCommands: menuCommands,
		menuQueries:  menuQueries,
	}
}

// @Summary List menu
// @Description Storefront menu listing with any promotional prices
// @Tags menu
// @Produce json
// @Success 200 {array} resdto.MenuItemResponse
// @Router /menu [get]
func (h *MenuHandler) ListMenu(c *gin.Context) {
	views, err := h.menuQueries.ListMenu(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.MenuItemResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromMenuItemView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get menu item
// @Description Get menu item by ID
// @Tags menu
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} resdto.MenuItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /menu/{id} [get]
func (h *MenuHandler) GetItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid menu item ID format",
		})
		return
	}

	view, err := h.menuQueries.GetItem(c.Request.Context(), id)
	if err != nil {
		h.writeMenuError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMenuItemView(view))
}

// @Summary Create menu item
// @Description Create a new menu item
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMenuItemRequest true "Menu item request"
// @Success 201 {object} resdto.MenuItemResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/menu [post]
func (h *MenuHandler) CreateItem(c *gin.Context) {
	var req reqdto.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.menuCommands.CreateItem(c.Request.Context(), req)
	if err != nil {
		h.writeMenuError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromMenuItemView(view))
}

// @Summary Update menu item
// @Description Update a menu item. Setting offer_code stores the resolved promotional price; an empty offer_code clears it.
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Param request body reqdto.UpdateMenuItemRequest true "Fields to update"
// @Success 200 {object} resdto.MenuItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/menu/{id} [put]
func (h *MenuHandler) UpdateItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid menu item ID format",
		})
		return
	}

	var req reqdto.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.menuCommands.UpdateItem(c.Request.Context(), id, req)
	if err != nil {
		h.writeMenuError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMenuItemView(view))
}

// @Summary Preview item offer
// @Description Resolve the discounted price a code would give a base price, without saving anything. The editor calls this as the admin types.
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ItemOfferPreviewRequest true "Preview request"
// @Success 200 {object} resdto.ItemOfferPreviewResponse
// @Failure 400 {object} map[string]string
// @Router /admin/menu/offer-preview [post]
func (h *MenuHandler) PreviewItemOffer(c *gin.Context) {
	var req reqdto.ItemOfferPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	resolution, err := h.menuCommands.PreviewItemOffer(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemOfferResolution(resolution))
}

func (h *MenuHandler) writeMenuError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrMenuItemNotFound), errors.Is(err, queries.ErrMenuItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Menu item not found",
		})
	case errors.Is(err, commands.ErrMenuItemValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Menu item validation failed",
		})
	case errors.Is(err, commands.ErrOfferNotApplicable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Offer code is not applicable to this item",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
