package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"bonojuntos/internal/domain/collaborator"
	"bonojuntos/internal/pkg/cookie"
	"bonojuntos/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxCollaboratorIDKey = "collaborator_id"
	ctxRoleKey           = "collaborator_role"
)

var roleHierarchy = map[collaborator.Role]int{
	collaborator.RoleBranch: 1,
	collaborator.RoleOwner:  2,
	collaborator.RoleAdmin:  3,
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		collaboratorID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxCollaboratorIDKey, collaboratorID)
		c.Set(ctxRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"collaborator_id": collaboratorID.String(),
			"role":            string(role),
		})
		c.Next()
	}
}

func hasMinimumRole(role, minRole collaborator.Role) bool {
	level, ok := roleHierarchy[role]
	minLevel, minOk := roleHierarchy[minRole]
	return ok && minOk && level >= minLevel
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole collaborator.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !hasMinimumRole(role, minRole) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetCollaboratorID(c *gin.Context) (uuid.UUID, bool) {
	collaboratorID, exists := c.Get(ctxCollaboratorIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := collaboratorID.(uuid.UUID)
	return id, ok
}

func GetRole(c *gin.Context) (collaborator.Role, bool) {
	role, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}

	r, ok := role.(collaborator.Role)
	return r, ok
}
