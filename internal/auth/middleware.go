package auth

import (
	"net/http"
	"strings"

	"seating-planner-backend/internal/database/models"
	apperrors "seating-planner-backend/internal/errors"
	"seating-planner-backend/internal/logger"
	"seating-planner-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by RequireAuth
const (
	contextUserID = "user_id"
	contextRole   = "role"
	contextActor  = "actor"
	contextToken  = "auth_token"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the bearer token against its session, loads the
// profile and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		session, err := m.service.CurrentSession(ctx, tokenString)
		if err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		actor, err := m.service.Actor(ctx, session)
		if err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": "Failed to load profile", "details": err.Error()})
			c.Abort()
			return
		}

		SetActor(c, actor)
		c.Set(contextToken, tokenString)

		c.Next()
	}
}

// RequireRole lets the request through only for the given roles. It must run
// after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := GetRole(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrOrganizerRequired.Error()})
		c.Abort()
	}
}

// SetActor sets user context for the rest of the request. The email and
// owner travel in the actor and in the request context used for logging.
func SetActor(c *gin.Context, actor service.Actor) {
	c.Set(contextUserID, actor.UserID)
	c.Set(contextRole, actor.Role)
	c.Set(contextActor, actor)
	c.Request = c.Request.WithContext(logger.ContextWithUser(c.Request.Context(), actor.Email, actor.OwnerID.String()))
}

// GetActor returns the caller set by RequireAuth
func GetActor(c *gin.Context) (service.Actor, bool) {
	actor, exists := c.Get(contextActor)
	if !exists {
		return service.Actor{}, false
	}

	a, ok := actor.(service.Actor)
	return a, ok
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(contextUserID)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetRole is a helper function to extract the profile role from context
func GetRole(c *gin.Context) (models.Role, bool) {
	role, exists := c.Get(contextRole)
	if !exists {
		return "", false
	}

	r, ok := role.(models.Role)
	return r, ok
}

// GetToken returns the bearer token of the request
func GetToken(c *gin.Context) (string, bool) {
	token, exists := c.Get(contextToken)
	if !exists {
		return "", false
	}

	t, ok := token.(string)
	return t, ok
}
