package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/journalapp/admin-service/internal/core/domain"
	"github.com/journalapp/admin-service/internal/core/ports"
)

// AdminHandler exposes the administrative use cases over HTTP.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListUsers handles GET /admin/all-users.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /admin/all-users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// PerformUserAction handles POST /admin/user-action/:actionType. The status
// and body of the response are the ones produced by the resolved action.
//
// @Summary      Run a user action
// @Description  Resolves actionType (case-insensitive: create, upgrade) and runs it against the user in the body.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        actionType  path      string       true  "Action token"
// @Param        body        body      domain.User  true  "Target user"
// @Success      200         "user upgraded"
// @Success      201         {object}  domain.User
// @Failure      400         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Failure      409         {object}  errorResponse
// @Failure      500         {object}  errorResponse
// @Router       /admin/user-action/{actionType} [post]
func (h *AdminHandler) PerformUserAction(c echo.Context) error {
	var user domain.User
	if err := c.Bind(&user); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	res, err := h.service.PerformUserAction(c.Request().Context(), ports.PerformActionInput{
		ActionType: c.Param("actionType"),
		User:       user,
		RequestID:  c.Response().Header().Get(echo.HeaderXRequestID),
	})
	if err != nil {
		return err
	}

	if res.Body == nil {
		return c.NoContent(res.Status)
	}
	return c.JSON(res.Status, res.Body)
}

// ClearCache handles GET /admin/clear-app-cache.
//
// @Summary      Clear the application cache
// @Tags         admin
// @Success      200  "cache cleared"
// @Failure      500  {object}  errorResponse
// @Router       /admin/clear-app-cache [get]
func (h *AdminHandler) ClearCache(c echo.Context) error {
	if err := h.service.ClearCache(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusOK)
}

// CacheEntries handles GET /admin/app-cache.
//
// @Summary      Show the application cache
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      500  {object}  errorResponse
// @Router       /admin/app-cache [get]
func (h *AdminHandler) CacheEntries(c echo.Context) error {
	entries, err := h.service.CacheEntries(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
