package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vishal1412/PropScan-sub000/internal/services"
	"github.com/vishal1412/PropScan-sub000/internal/util"
)

// AuthController handles admin login.
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController creates a new auth controller
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates the admin and returns a bearer token.
func (ac *AuthController) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	result, err := ac.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// Me returns the authenticated admin identity.
func (ac *AuthController) Me(c echo.Context) error {
	claims := c.Get("claims").(*util.Claims)
	return c.JSON(http.StatusOK, map[string]any{
		"username": claims.Username,
		"is_admin": claims.IsAdmin,
	})
}
