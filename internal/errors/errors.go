package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// DuplicateNameError is returned when a guest or table name collides with an
// existing record of the same owner. Name holds the conflicting value as the
// user typed it.
type DuplicateNameError struct {
	Entity string
	Name   string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("a %s named %q already exists", e.Entity, e.Name)
}

// Is matches any DuplicateNameError for the same entity
func (e *DuplicateNameError) Is(target error) bool {
	t, ok := target.(*DuplicateNameError)
	if !ok {
		return false
	}
	return t.Entity == "" || e.Entity == t.Entity
}

// CapacityExceededError is returned when seating a guest at a full table
type CapacityExceededError struct {
	Table    string
	Capacity int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("table %q is full (%d seats maximum)", e.Table, e.Capacity)
}

// ConflictError reports a write against a stale version of a record
type ConflictError struct {
	Entity string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s was modified by another session, reload and retry", e.Entity)
}

// StoreError wraps a failure of the record store (transport or server rejection)
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("store: %s failed", e.Op)
	}
	return fmt.Sprintf("store: %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// NotAuthorizedError is returned when the caller's role does not allow the operation
type NotAuthorizedError struct {
	Message string
}

func (e *NotAuthorizedError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrGuestNotFound   = &NotFoundError{Entity: "guest"}
	ErrTableNotFound   = &NotFoundError{Entity: "table"}
	ErrUserNotFound    = &NotFoundError{Entity: "user"}
	ErrProfileNotFound = &NotFoundError{Entity: "profile"}
)

// Conflict Errors
var (
	ErrGuestModified = &ConflictError{Entity: "guest"}
	ErrTableModified = &ConflictError{Entity: "table"}
	ErrEmailTaken    = errors.New("an account with this email already exists")
)

// Authentication and authorization errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrSessionExpired     = &AuthenticationError{Message: "session expired or signed out"}
	ErrOrganizerRequired  = &NotAuthorizedError{Message: "only the organizer can modify guests and tables"}
	ErrRoleChangeDisabled = &NotAuthorizedError{Message: "role self-service is disabled"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsDuplicateName checks if an error is a DuplicateNameError
func IsDuplicateName(err error) bool {
	var dupErr *DuplicateNameError
	return errors.As(err, &dupErr)
}

// IsCapacityExceeded checks if an error is a CapacityExceededError
func IsCapacityExceeded(err error) bool {
	var capErr *CapacityExceededError
	return errors.As(err, &capErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsStore checks if an error is a StoreError
func IsStore(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsNotAuthorized checks if an error is a NotAuthorizedError
func IsNotAuthorized(err error) bool {
	var authzErr *NotAuthorizedError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewDuplicateNameError creates a DuplicateNameError for the given entity and name
func NewDuplicateNameError(entity, name string) error {
	return &DuplicateNameError{Entity: entity, Name: name}
}

// NewCapacityExceededError creates a CapacityExceededError for a table
func NewCapacityExceededError(table string, capacity int) error {
	return &CapacityExceededError{Table: table, Capacity: capacity}
}

// NewStoreError wraps err as a StoreError for the named operation
func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewNotAuthorizedError creates a new NotAuthorizedError
func NewNotAuthorizedError(message string) error {
	return &NotAuthorizedError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
