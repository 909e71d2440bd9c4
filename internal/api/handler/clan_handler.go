package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ancientrealms/kingdom-system/internal/core/ports"
)

// ClanHandler handles HTTP requests for clans and their embedded army
// members, including the kingdom-scoped clan routes.
type ClanHandler struct {
	service ports.ClanService
}

func NewClanHandler(service ports.ClanService) *ClanHandler {
	return &ClanHandler{service: service}
}

// CreateInKingdom handles POST /api/kingdoms/:id/clans.
//
// @Summary      Create a clan under a kingdom
// @Tags         clans
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Kingdom ID"
// @Param        body  body      newClanRequest  true  "Clan details"
// @Success      201   {object}  domain.Clan
// @Failure      400   {object}  errorResponse
// @Router       /api/kingdoms/{id}/clans [post]
func (h *ClanHandler) CreateInKingdom(c echo.Context) error {
	var req newClanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	clan, err := h.service.CreateClan(c.Request().Context(), c.Param("id"), req.ClanName, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, clan)
}

// ListByKingdom handles GET /api/kingdoms/:id/clans.
//
// @Summary      List all clans of a kingdom
// @Tags         clans
// @Produce      json
// @Param        id   path      string  true  "Kingdom ID"
// @Success      200  {array}   domain.Clan
// @Failure      400  {object}  errorResponse
// @Router       /api/kingdoms/{id}/clans [get]
func (h *ClanHandler) ListByKingdom(c echo.Context) error {
	clans, err := h.service.ListClans(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clans)
}

// Get handles GET /api/clans/:id.
//
// @Summary      Get a clan by identifier
// @Tags         clans
// @Produce      json
// @Param        id   path      string  true  "Clan ID"
// @Success      200  {object}  domain.Clan
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/clans/{id} [get]
func (h *ClanHandler) Get(c echo.Context) error {
	clan, err := h.service.GetClan(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clan)
}

// Update handles PATCH /api/clans/:id. Only supplied fields are applied;
// see updateClanRequest for the name/description asymmetry.
//
// @Summary      Partially update a clan
// @Tags         clans
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Clan ID"
// @Param        body  body      updateClanRequest  true  "Fields to update"
// @Success      200   {object}  domain.Clan
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/clans/{id} [patch]
func (h *ClanHandler) Update(c echo.Context) error {
	var req updateClanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	clan, err := h.service.UpdateClan(c.Request().Context(), c.Param("id"), ports.UpdateClanInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clan)
}

// Delete handles DELETE /api/clans/:id.
//
// @Summary      Delete a clan
// @Tags         clans
// @Produce      json
// @Param        id   path      string  true  "Clan ID"
// @Success      200  {boolean}  bool
// @Failure      400  {object}   errorResponse
// @Router       /api/clans/{id} [delete]
func (h *ClanHandler) Delete(c echo.Context) error {
	deleted, err := h.service.DeleteClan(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleted)
}

// AddMember handles POST /api/clans/:id/members.
//
// @Summary      Add an army member to a clan
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Clan ID"
// @Param        body  body      newMemberRequest  true  "Member details"
// @Success      201   {object}  domain.ArmyMember
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/clans/{id}/members [post]
func (h *ClanHandler) AddMember(c echo.Context) error {
	var req newMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.service.AddMember(c.Request().Context(), c.Param("id"), ports.NewMemberInput{
		Nickname: req.Nickname,
		Email:    req.Email,
		Password: req.Password,
		Rank:     req.Rank,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, member)
}

// GetMember handles GET /api/clans/:id/members/:mid.
//
// @Summary      Get one army member of a clan
// @Tags         members
// @Produce      json
// @Param        id   path      string  true  "Clan ID"
// @Param        mid  path      string  true  "Member ID"
// @Success      200  {object}  domain.ArmyMember
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/clans/{id}/members/{mid} [get]
func (h *ClanHandler) GetMember(c echo.Context) error {
	member, err := h.service.GetMember(c.Request().Context(), c.Param("id"), c.Param("mid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, member)
}

// RemoveMember handles DELETE /api/clans/:id/members/:mid. The boolean body
// reports whether the array was modified; pulling an absent member yields
// 200 false, not an error.
//
// @Summary      Remove an army member from a clan
// @Tags         members
// @Produce      json
// @Param        id   path      string  true  "Clan ID"
// @Param        mid  path      string  true  "Member ID"
// @Success      200  {boolean}  bool
// @Failure      400  {object}   errorResponse
// @Router       /api/clans/{id}/members/{mid} [delete]
func (h *ClanHandler) RemoveMember(c echo.Context) error {
	removed, err := h.service.RemoveMember(c.Request().Context(), c.Param("id"), c.Param("mid"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, removed)
}

// UpdateMember handles PATCH /api/clans/:id/members/:mid. Despite the PATCH
// verb, the body carries every mutable field and all of them are replaced.
//
// @Summary      Replace all fields of an army member
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Clan ID"
// @Param        mid   path      string               true  "Member ID"
// @Param        body  body      updateMemberRequest  true  "Full member fields"
// @Success      200   {object}  domain.ArmyMember
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/clans/{id}/members/{mid} [patch]
func (h *ClanHandler) UpdateMember(c echo.Context) error {
	var req updateMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.service.UpdateMember(c.Request().Context(), c.Param("id"), c.Param("mid"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, member)
}
