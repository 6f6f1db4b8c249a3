package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/famgift/exchange-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a participant against their group's roster and
// returns the session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		GroupID:  req.GroupID,
		Username: req.Username,
		Password: req.Password,
		Language: req.Language,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token: result.Token,
		Participant: participantView{
			Username: result.Participant.Username,
			Name:     result.Participant.Name,
		},
		Group: groupView{
			ID:       result.Group.ID,
			Name:     result.Group.Name,
			Budget:   result.Group.Budget,
			Currency: result.Group.Currency,
		},
	})
}
