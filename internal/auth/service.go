package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"seating-planner-backend/internal/database/models"
	apperrors "seating-planner-backend/internal/errors"
	"seating-planner-backend/internal/logger"
	"seating-planner-backend/internal/repository"
	"seating-planner-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService registers users, signs them in and out, and manages profiles
type AuthService struct {
	config    *AuthConfig
	users     repository.UserRepositoryInterface
	sessions  SessionStore
	events    *broadcaster
	validator *validator.Validate
	now       func() time.Time
}

// AuthClaims represents JWT token claims. RegisteredClaims.ID carries the
// session id, Subject the user id.
type AuthClaims struct {
	Email                string `json:"email" example:"anna.lee@example.com"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// Credentials is the body of register and login requests
type Credentials struct {
	Email    string `json:"email" binding:"required" example:"anna.lee@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// UserInfo is the public part of a user
type UserInfo struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// SessionResponse is returned by register and login
type SessionResponse struct {
	AccessToken string          `json:"accessToken"`
	TokenType   string          `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64           `json:"expiresIn" example:"86400"`
	User        UserInfo        `json:"user"`
	Profile     *models.Profile `json:"profile"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, users repository.UserRepositoryInterface, sessions SessionStore) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	return &AuthService{
		config:    config,
		users:     users,
		sessions:  sessions,
		events:    newBroadcaster(),
		validator: validator.New(),
		now:       time.Now,
	}, nil
}

// Subscribe streams sign-up, sign-in and sign-out events until the returned
// function is called.
func (s *AuthService) Subscribe() (<-chan SessionEvent, func()) {
	return s.events.Subscribe()
}

// Register creates an account with a profile carrying the default role and
// signs it in.
func (s *AuthService) Register(ctx context.Context, email, password string) (*SessionResponse, error) {
	email = normalizeEmail(email)
	if err := s.validator.Var(email, "required,email,max=255"); err != nil {
		return nil, apperrors.NewValidationError("email", "must be a valid email address")
	}
	if len(password) < minPasswordLength {
		return nil, apperrors.NewValidationError("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, s.storeFailure(ctx, "get user", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{Email: email, PasswordHash: string(hash)}
	profile := &models.Profile{Role: s.config.DefaultRole}
	if err := s.users.Create(ctx, user, profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, s.storeFailure(ctx, "create user", err)
	}

	response, err := s.startSession(ctx, user, profile)
	if err != nil {
		return nil, err
	}
	s.publish(EventSignedUp, user.ID, user.Email)
	return response, nil
}

// Authenticate checks email and password and starts a session
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*SessionResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, s.storeFailure(ctx, "get user", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	profile, err := s.Profile(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	response, err := s.startSession(ctx, user, profile)
	if err != nil {
		return nil, err
	}
	s.publish(EventSignedIn, user.ID, user.Email)
	return response, nil
}

// CurrentSession resolves a bearer token to its live session
func (s *AuthService) CurrentSession(ctx context.Context, token string) (*Session, error) {
	claims, err := s.ValidateJWT(token)
	if err != nil {
		return nil, apperrors.NewAuthenticationError(err.Error())
	}

	session, ok, err := s.sessions.Get(ctx, claims.ID)
	if err != nil {
		return nil, s.storeFailure(ctx, "get session", err)
	}
	if !ok || session.Expired(s.now()) {
		return nil, apperrors.ErrSessionExpired
	}
	return session, nil
}

// SignOut revokes the session of token
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	session, err := s.CurrentSession(ctx, token)
	if err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, session.ID); err != nil {
		return s.storeFailure(ctx, "delete session", err)
	}
	s.publish(EventSignedOut, session.UserID, session.Email)
	return nil
}

// Profile returns the profile of a user, creating one with the default role
// on first access.
func (s *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	profile, err := s.users.GetProfile(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, s.storeFailure(ctx, "get profile", err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, s.storeFailure(ctx, "get user", err)
	}

	profile = &models.Profile{UserID: user.ID, Email: user.Email, Role: s.config.DefaultRole}
	if err := s.users.CreateProfile(ctx, profile); err != nil {
		return nil, s.storeFailure(ctx, "create profile", err)
	}
	logger.WithContext(ctx).Infof("provisioned %s profile for %s", profile.Role, profile.Email)
	return profile, nil
}

// UpdateRole switches the role of a user's own profile. It is only available
// while role self-service is enabled. Becoming an organizer drops any link to
// another organizer.
func (s *AuthService) UpdateRole(ctx context.Context, userID uuid.UUID, role models.Role) (*models.Profile, error) {
	if !s.config.AllowRoleSelfService {
		return nil, apperrors.ErrRoleChangeDisabled
	}
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "must be one of: super-user guest")
	}

	profile, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.Role = role
	if role == models.RoleSuperUser {
		profile.OrganizerID = nil
	}
	if err := s.users.UpdateProfile(ctx, profile); err != nil {
		return nil, s.storeFailure(ctx, "update profile", err)
	}
	logger.WithContext(ctx).Infof("role of %s changed to %s", profile.Email, role)
	return profile, nil
}

// AddGuestAccount links the guest-role account registered under guestEmail to
// the calling organizer, giving it read access to the organizer's guests and
// tables. Only organizers can call it, so an account never links itself.
func (s *AuthService) AddGuestAccount(ctx context.Context, organizerID uuid.UUID, guestEmail string) (*models.Profile, error) {
	caller, err := s.Profile(ctx, organizerID)
	if err != nil {
		return nil, err
	}
	if caller.Role != models.RoleSuperUser {
		return nil, apperrors.ErrOrganizerRequired
	}

	user, err := s.users.GetByEmail(ctx, normalizeEmail(guestEmail))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, s.storeFailure(ctx, "get user", err)
	}
	profile, err := s.Profile(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if profile.Role == models.RoleSuperUser {
		return nil, apperrors.NewValidationError("email", "organizer accounts cannot be added as guests")
	}
	if profile.OrganizerID != nil {
		if *profile.OrganizerID == organizerID {
			return profile, nil
		}
		return nil, apperrors.NewValidationError("email", "account is already linked to another organizer")
	}

	profile.OrganizerID = &organizerID
	if err := s.users.UpdateProfile(ctx, profile); err != nil {
		return nil, s.storeFailure(ctx, "update profile", err)
	}
	logger.WithContext(ctx).Infof("%s added as guest account of %s", profile.Email, caller.Email)
	return profile, nil
}

// Actor builds the service-level caller of a session
func (s *AuthService) Actor(ctx context.Context, session *Session) (service.Actor, error) {
	profile, err := s.Profile(ctx, session.UserID)
	if err != nil {
		return service.Actor{}, err
	}
	return service.Actor{
		UserID:  session.UserID,
		OwnerID: profile.OwnerScope(),
		Role:    profile.Role,
		Email:   session.Email,
	}, nil
}

// GenerateJWT signs an access token for a session
func (s *AuthService) GenerateJWT(session *Session) (string, error) {
	now := s.now()
	expires := now.Add(s.config.TokenTTL)
	if session.ExpiresAt.Before(expires) {
		expires = session.ExpiresAt
	}
	claims := &AuthClaims{
		Email: session.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Subject:   session.UserID.String(),
			Issuer:    s.config.Issuer,
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(s.config.Issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid && claims.ID != "" {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

func (s *AuthService) startSession(ctx context.Context, user *models.User, profile *models.Profile) (*SessionResponse, error) {
	now := s.now()
	session := &Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.config.SessionTTL),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, s.storeFailure(ctx, "save session", err)
	}

	token, err := s.GenerateJWT(session)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	return &SessionResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.config.TokenTTL.Seconds()),
		User:        UserInfo{ID: user.ID, Email: user.Email},
		Profile:     profile,
	}, nil
}

func (s *AuthService) publish(eventType EventType, userID uuid.UUID, email string) {
	s.events.publish(SessionEvent{Type: eventType, UserID: userID, Email: email, At: s.now()})
}

func (s *AuthService) storeFailure(ctx context.Context, op string, err error) error {
	logger.WithContext(ctx).WithError(err).Errorf("store: %s failed", op)
	return apperrors.NewStoreError(op, err)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
