package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "bonojuntos/internal/handler/dto/request"
	resdto "bonojuntos/internal/handler/dto/response"
	"bonojuntos/internal/handler/middleware"
	"bonojuntos/internal/pkg/config"
	"bonojuntos/internal/pkg/cookie"
	"bonojuntos/internal/usecase/commands"
	"bonojuntos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands        commands.AuthCommands
	collaboratorQueries queries.CollaboratorQueries
	cfg                 config.Config
}

func NewAuthHandler(authCommands commands.AuthCommands, collaboratorQueries queries.CollaboratorQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands:        authCommands,
		collaboratorQueries: collaboratorQueries,
		cfg:                 cfg,
	}
}

// @Summary Collaborator login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials),
			errors.Is(err, commands.ErrCollaboratorNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		case errors.Is(err, commands.ErrCollaboratorInactive):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Account is inactive",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	view, err := h.collaboratorQueries.GetCurrent(c.Request.Context(), result.CollaboratorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	cookie.SetAccessTokenCookie(c, h.cfg.Cookie, result.AccessToken, h.tokenDuration())

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken:  result.AccessToken,
		Collaborator: view,
	})
}

// @Summary Collaborator logout
// @Description Clear the access token cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessTokenCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current collaborator
// @Description Get the authenticated collaborator's profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.CollaboratorView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	collaboratorID, ok := middleware.GetCollaboratorID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	view, err := h.collaboratorQueries.GetCurrent(c.Request.Context(), collaboratorID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCollaboratorNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Collaborator not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *AuthHandler) tokenDuration() time.Duration {
	d, err := time.ParseDuration(h.cfg.JWT.Duration)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}
