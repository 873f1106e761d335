package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/batforeningen/marina-api/internal/core/ports"
)

// AdminHandler handles the admin panel routes. Admin status is held
// client-side after login; these routes perform no re-verification of
// their own (deliberate: the club trusts its board members).
type AdminHandler struct {
	service ports.UserService
}

func NewAdminHandler(service ports.UserService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListUsers handles GET /admin/seeUsers.
//
// @Summary      List users for the admin panel
// @Tags         admin
// @Produce      json
// @Success      200  {array}   adminUserResponse
// @Failure      503  {object}  errorResponse
// @Router       /admin/seeUsers [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]adminUserResponse, len(users))
	for i, u := range users {
		out[i] = adminUserResponse{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
			IsAdmin:  u.IsAdmin,
		}
	}
	return c.JSON(http.StatusOK, out)
}

// ToggleAdmin handles PUT /admin/updateUser/:id.
//
// @Summary      Toggle the admin flag on a user
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  adminUserResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /admin/updateUser/{id} [put]
func (h *AdminHandler) ToggleAdmin(c echo.Context) error {
	user, err := h.service.ToggleAdmin(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, adminUserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		IsAdmin:  user.IsAdmin,
	})
}
