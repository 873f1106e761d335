package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/batforeningen/marina-api/internal/core/ports"
)

// UserHandler handles signup, bulk signup, login, and the member list.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /user/create.
//
// @Summary      Create one member account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "Signup details"
// @Success      201   {object}  createUserResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /user/create [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createUserResponse{
		Message:  "User created successfully",
		Username: user.Username,
	})
}

// CreateMany handles POST /user/multiple — partial success is allowed.
//
// @Summary      Create many member accounts
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      bulkUserRequest  true  "Signup candidates"
// @Success      200   {object}  ports.BulkCreateResult
// @Failure      400   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /user/multiple [post]
func (h *UserHandler) CreateMany(c echo.Context) error {
	var req bulkUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Users == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "users array is required")
	}

	inputs := make([]ports.CreateUserInput, len(req.Users))
	for i, u := range req.Users {
		inputs[i] = ports.CreateUserInput{Username: u.Username, Email: u.Email, Password: u.Password}
	}

	result, err := h.service.CreateMany(c.Request().Context(), inputs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Login handles POST /user/login. No token, no session: the response
// carries only the role flag the client keeps on its side.
//
// @Summary      Authenticate a member
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /user/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	isAdmin, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Message: "Login successful",
		IsAdmin: isAdmin,
	})
}

// Huddly handles GET /user/huddly — the member list, usernames only.
//
// @Summary      List member usernames
// @Tags         users
// @Produce      json
// @Success      200  {array}   usernameResponse
// @Failure      503  {object}  errorResponse
// @Router       /user/huddly [get]
func (h *UserHandler) Huddly(c echo.Context) error {
	names, err := h.service.ListUsernames(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]usernameResponse, len(names))
	for i, n := range names {
		out[i] = usernameResponse{Username: n}
	}
	return c.JSON(http.StatusOK, out)
}
