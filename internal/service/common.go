package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"seating-planner-backend/internal/database/models"
	apperrors "seating-planner-backend/internal/errors"
	"seating-planner-backend/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Actor is the signed-in user a call is made for. OwnerID is the organizer
// whose guests and tables the call reads or writes.
type Actor struct {
	UserID  uuid.UUID
	OwnerID uuid.UUID
	Role    models.Role
	Email   string
}

// CanModify reports whether the actor may create, update or delete records
func (a Actor) CanModify() bool {
	return a.Role.CanModify() && a.OwnerID != uuid.Nil
}

func requireOrganizer(actor Actor) error {
	if !actor.CanModify() {
		return apperrors.ErrOrganizerRequired
	}
	return nil
}

// Letters (including Latin-1 accented ones), digits and whitespace
var tableNamePattern = regexp.MustCompile(`^[a-zA-ZÀ-ÿ0-9\s]+$`)

// NewValidator returns a validator reporting JSON field names and knowing the
// "tablename" rule.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("tablename", func(fl validator.FieldLevel) bool {
		return tableNamePattern.MatchString(fl.Field().String())
	})
	return v
}

// validationError converts validator output into a ValidationError naming the first failing field
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.NewValidationError("", err.Error())
	}
	fe := verrs[0]
	return apperrors.NewValidationError(fe.Field(), describeRule(fe))
}

// fieldValidationError reports a failed validator.Var call against field
func fieldValidationError(field string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.NewValidationError(field, err.Error())
	}
	return apperrors.NewValidationError(field, describeRule(verrs[0]))
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return "must be one of: " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "tablename":
		return "may only contain letters, digits and spaces"
	default:
		return "is invalid"
	}
}

// storeFailure logs a failed store call and wraps it as a StoreError
func storeFailure(ctx context.Context, op string, err error) error {
	logger.WithContext(ctx).WithError(err).Errorf("store: %s failed", op)
	return apperrors.NewStoreError(op, err)
}

// isDomainError reports errors the repositories already typed for callers
func isDomainError(err error) bool {
	return apperrors.IsNotFound(err) ||
		apperrors.IsCapacityExceeded(err) ||
		apperrors.IsConflict(err) ||
		apperrors.IsDuplicateName(err)
}

// ownerCache keeps one list per organizer, newest first. A missing entry
// means "not loaded yet"; every method returns or stores copies.
//
// Each owner has a generation that every write bumps. A reader takes the
// generation before fetching from the store and stores the result only if it
// is unchanged, so a slow fetch never overwrites a newer write.
type ownerCache[T any] struct {
	mu    sync.RWMutex
	lists map[uuid.UUID][]T
	gens  map[uuid.UUID]uint64
}

func newOwnerCache[T any]() *ownerCache[T] {
	return &ownerCache[T]{
		lists: make(map[uuid.UUID][]T),
		gens:  make(map[uuid.UUID]uint64),
	}
}

func (c *ownerCache[T]) get(owner uuid.UUID) ([]T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	list, ok := c.lists[owner]
	if !ok {
		return nil, false
	}
	return append([]T(nil), list...), true
}

// generation is taken before a store fetch and handed back to storeIfCurrent
func (c *ownerCache[T]) generation(owner uuid.UUID) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gens[owner]
}

// storeIfCurrent caches items fetched at generation gen. It reports false and
// leaves the cache alone when a write happened since.
func (c *ownerCache[T]) storeIfCurrent(owner uuid.UUID, gen uint64, items []T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[owner] != gen {
		return false
	}
	c.lists[owner] = append(make([]T, 0, len(items)), items...)
	c.gens[owner]++
	return true
}

// prepend adds item at the front of a loaded list, dropping any entry that
// match finds since a fetch may already have picked the item up. Unloaded
// lists stay unloaded.
func (c *ownerCache[T]) prepend(owner uuid.UUID, match func(T) bool, item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[owner]++
	list, ok := c.lists[owner]
	if !ok {
		return
	}
	next := make([]T, 0, len(list)+1)
	next = append(next, item)
	for _, existing := range list {
		if !match(existing) {
			next = append(next, existing)
		}
	}
	c.lists[owner] = next
}

// replace swaps the first entry matching in place, keeping list order
func (c *ownerCache[T]) replace(owner uuid.UUID, match func(T) bool, item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[owner]++
	for i, existing := range c.lists[owner] {
		if match(existing) {
			c.lists[owner][i] = item
			return
		}
	}
}

func (c *ownerCache[T]) remove(owner uuid.UUID, match func(T) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[owner]++
	list, ok := c.lists[owner]
	if !ok {
		return
	}
	next := make([]T, 0, len(list))
	for _, existing := range list {
		if !match(existing) {
			next = append(next, existing)
		}
	}
	c.lists[owner] = next
}

func (c *ownerCache[T]) invalidate(owner uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[owner]++
	delete(c.lists, owner)
}
