package auth

import (
	"net/http"

	"seating-planner-backend/internal/database/models"
	apperrors "seating-planner-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// UpdateRoleRequest is the body of PUT /api/auth/profile/role
type UpdateRoleRequest struct {
	Role models.Role `json:"role" binding:"required" example:"super-user"`
}

// AddGuestAccountRequest is the body of POST /api/auth/organizer/guests
type AddGuestAccountRequest struct {
	Email string `json:"email" binding:"required" example:"guest@example.com"`
}

// SessionInfoResponse describes the session behind a bearer token
type SessionInfoResponse struct {
	Session *Session        `json:"session"`
	Profile *models.Profile `json:"profile"`
}

// AuthLogoutResponse represents the response from the logout endpoint
type AuthLogoutResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// Register handles POST /api/auth/register
// @Summary Register a new account
// @Description Create an account with email and password and sign it in
// @Tags authentication
// @Accept json
// @Produce json
// @Param credentials body Credentials true "Email and password (at least 6 characters)"
// @Success 201 {object} SessionResponse "Account created and signed in"
// @Failure 400 {object} map[string]interface{} "Invalid email or password"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Failure 503 {object} map[string]interface{} "Store unavailable"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	response, err := h.service.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Login handles POST /api/auth/login
// @Summary Sign in
// @Description Exchange email and password for a bearer token
// @Tags authentication
// @Accept json
// @Produce json
// @Param credentials body Credentials true "Email and password"
// @Success 200 {object} SessionResponse "Signed in"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid email or password"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	response, err := h.service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Logout handles POST /api/auth/logout
// @Summary Sign out
// @Description Revoke the session of the bearer token
// @Tags authentication
// @Produce json
// @Success 200 {object} AuthLogoutResponse "Logged out"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Security BearerAuth
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := GetToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := h.service.SignOut(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthLogoutResponse{Message: "Logged out successfully"})
}

// Session handles GET /api/auth/session
// @Summary Current session
// @Description Return the session and profile behind the bearer token
// @Tags authentication
// @Produce json
// @Success 200 {object} SessionInfoResponse "Current session"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Security BearerAuth
// @Router /api/auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	token, ok := GetToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	ctx := c.Request.Context()
	session, err := h.service.CurrentSession(ctx, token)
	if err != nil {
		respondError(c, err)
		return
	}
	profile, err := h.service.Profile(ctx, session.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SessionInfoResponse{Session: session, Profile: profile})
}

// Profile handles GET /api/auth/profile
// @Summary Current profile
// @Description Return the profile of the signed-in user, creating it with the default role on first access
// @Tags authentication
// @Produce json
// @Success 200 {object} models.Profile "Profile"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Security BearerAuth
// @Router /api/auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	profile, err := h.service.Profile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateRole handles PUT /api/auth/profile/role
// @Summary Switch role
// @Description Switch the signed-in user between organizer (super-user) and guest. Only available while role self-service is enabled.
// @Tags authentication
// @Accept json
// @Produce json
// @Param body body UpdateRoleRequest true "New role"
// @Success 200 {object} models.Profile "Updated profile"
// @Failure 400 {object} map[string]interface{} "Unknown role"
// @Failure 403 {object} map[string]interface{} "Role self-service disabled"
// @Security BearerAuth
// @Router /api/auth/profile/role [put]
func (h *AuthHandler) UpdateRole(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	profile, err := h.service.UpdateRole(c.Request.Context(), userID, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// AddGuestAccount handles POST /api/auth/organizer/guests
// @Summary Add a guest account
// @Description Give a registered guest account read access to the caller's guest list and tables. Organizers only.
// @Tags authentication
// @Accept json
// @Produce json
// @Param body body AddGuestAccountRequest true "Guest account email"
// @Success 200 {object} models.Profile "Linked profile"
// @Failure 400 {object} map[string]interface{} "Invalid request or account not eligible"
// @Failure 403 {object} map[string]interface{} "Caller is not an organizer"
// @Failure 404 {object} map[string]interface{} "Account not found"
// @Security BearerAuth
// @Router /api/auth/organizer/guests [post]
func (h *AuthHandler) AddGuestAccount(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req AddGuestAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	profile, err := h.service.AddGuestAccount(c.Request.Context(), userID, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
}
