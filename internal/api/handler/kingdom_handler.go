package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ancientrealms/kingdom-system/internal/core/ports"
)

// KingdomHandler handles HTTP requests for kingdom operations.
type KingdomHandler struct {
	service ports.KingdomService
}

func NewKingdomHandler(service ports.KingdomService) *KingdomHandler {
	return &KingdomHandler{service: service}
}

// List handles GET /api/kingdoms.
//
// @Summary      List all kingdoms with their clan counts
// @Tags         kingdoms
// @Produce      json
// @Success      200  {array}   domain.KingdomSummary
// @Failure      500  {object}  errorResponse
// @Router       /api/kingdoms [get]
func (h *KingdomHandler) List(c echo.Context) error {
	kingdoms, err := h.service.ListKingdoms(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, kingdoms)
}

// Create handles POST /api/kingdoms.
//
// @Summary      Create a new kingdom
// @Tags         kingdoms
// @Accept       json
// @Produce      json
// @Param        body  body      newKingdomRequest  true  "Kingdom name"
// @Success      201   {object}  newKingdomResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/kingdoms [post]
func (h *KingdomHandler) Create(c echo.Context) error {
	var req newKingdomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	kingdom, err := h.service.CreateKingdom(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newKingdomResponse{ID: kingdom.ID, Name: kingdom.Name})
}

// Get handles GET /api/kingdoms/:id.
//
// @Summary      Get a kingdom with its embedded clans
// @Tags         kingdoms
// @Produce      json
// @Param        id   path      string  true  "Kingdom ID"
// @Success      200  {object}  domain.KingdomDetail
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/kingdoms/{id} [get]
func (h *KingdomHandler) Get(c echo.Context) error {
	kingdom, err := h.service.GetKingdom(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, kingdom)
}

// Delete handles DELETE /api/kingdoms/:id. The body is a bare boolean
// reporting whether a document was removed; a miss is not an error.
//
// @Summary      Delete a kingdom (clans are left orphaned)
// @Tags         kingdoms
// @Produce      json
// @Param        id   path      string  true  "Kingdom ID"
// @Success      200  {boolean}  bool
// @Failure      400  {object}   errorResponse
// @Router       /api/kingdoms/{id} [delete]
func (h *KingdomHandler) Delete(c echo.Context) error {
	deleted, err := h.service.DeleteKingdom(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleted)
}
