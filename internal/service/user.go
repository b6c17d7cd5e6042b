package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/userhub/userhub/internal/cache"
	"github.com/userhub/userhub/internal/credential"
	"github.com/userhub/userhub/internal/metrics"
	"github.com/userhub/userhub/internal/model"
	"github.com/userhub/userhub/internal/repository"
)

// Pagination bounds.
const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// UserStore is the persistence collaborator consumed by the service.
// *repository.Repository satisfies it.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListUsers(ctx context.Context, page repository.PageRequest) ([]*model.User, int64, error)
	UpdateUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, id int64) error
}

// UserCache caches password-free user views. *cache.Cache satisfies it.
// A nil cache disables caching; every other behavior is unchanged.
type UserCache interface {
	GetUser(ctx context.Context, id int64) (*model.CachedUser, error)
	SetUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, id int64) error
}

// UserService handles the user lifecycle and credential management.
type UserService struct {
	store   UserStore
	cache   UserCache
	metrics metrics.Recorder
}

// NewUserService creates a new UserService.
func NewUserService(store UserStore, userCache UserCache, recorder metrics.Recorder) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserService{
		store:   store,
		cache:   userCache,
		metrics: recorder,
	}
}

// CreateUserInput defines input for registering a user.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateUserInput defines input for a partial update.
// Nil fields leave the stored values unchanged.
type UpdateUserInput struct {
	Name  *string
	Email *string
}

// ChangePasswordInput defines input for a password change.
type ChangePasswordInput struct {
	Password        string
	ConfirmPassword string
}

// ListUsersInput defines input for listing users.
type ListUsersInput struct {
	Page int
	Size int
	Sort string
	Desc bool
}

// ListUsersOutput is one page of users plus count metadata.
type ListUsersOutput struct {
	Users         []*model.User
	TotalElements int64
	Page          int
	Size          int
}

// CreateUser registers a new user.
// Order of checks: field validation, then email uniqueness, then hashing
// and persistence. The existence check is read-then-write; a concurrent
// create that slips through is caught by the store's unique index and
// surfaces as the same conflict.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*model.User, error) {
	if err := validateCreateUser(input); err != nil {
		return nil, err
	}

	exists, err := s.store.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, ErrEmailExists
	}

	hash, err := credential.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.IncUserCreated()

	return user, nil
}

// GetUsers retrieves one page of users.
// Element order is whatever the store returned; no additional sort is
// imposed here.
func (s *UserService) GetUsers(ctx context.Context, input ListUsersInput) (*ListUsersOutput, error) {
	if input.Page < 0 {
		input.Page = 0
	}
	if input.Size <= 0 || input.Size > maxPageSize {
		input.Size = defaultPageSize
	}

	page := repository.PageRequest{
		Page: input.Page,
		Size: input.Size,
		Sort: input.Sort,
		Desc: input.Desc,
	}

	users, total, err := s.store.ListUsers(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return &ListUsersOutput{
		Users:         users,
		TotalElements: total,
		Page:          input.Page,
		Size:          input.Size,
	}, nil
}

// GetUserByID retrieves a single user, cache-first.
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	if s.cache != nil {
		cached, err := s.cache.GetUser(ctx, id)
		if err == nil {
			s.metrics.IncUserCacheHit()
			return cached.ToUser(id), nil
		}
		if errors.Is(err, cache.ErrCacheMiss) {
			s.metrics.IncUserCacheMiss()
		}
		// Redis errors fall through to the store.
	}

	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if s.cache != nil {
		// Backfill; eventual consistency is acceptable.
		_ = s.cache.SetUser(ctx, user)
	}

	return user, nil
}

// UpdateUser applies a partial update to name and email.
// A field is applied only when present and different from the stored
// value. The save runs even when nothing changed, so the caller always
// gets the row as the store returned it.
func (s *UserService) UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*model.User, error) {
	if err := validateUpdateUser(input); err != nil {
		return nil, err
	}

	// Read from the store, not the cache: the row version and the
	// password hash are needed for the write-back.
	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if input.Email != nil && *input.Email != user.Email {
		user.Email = *input.Email
	}
	if input.Name != nil && *input.Name != user.Name {
		user.Name = *input.Name
	}

	if err := s.store.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.metrics.IncUserUpdated()

	if s.cache != nil {
		_ = s.cache.DeleteUser(ctx, id)
	}

	return user, nil
}

// ChangePassword replaces the stored password hash.
// Order of checks: field validation, existence, password/confirmation
// equality, then novelty against the current hash.
func (s *UserService) ChangePassword(ctx context.Context, id int64, input ChangePasswordInput) (string, error) {
	if err := validateChangePassword(input); err != nil {
		return "", err
	}

	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	if input.Password != input.ConfirmPassword {
		return "", ErrPasswordMismatch
	}

	if credential.Verify(user.PasswordHash, input.Password) {
		return "", ErrSamePassword
	}

	hash, err := credential.Hash(input.ConfirmPassword)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return "", fmt.Errorf("failed to update password: %w", err)
	}

	s.metrics.IncPasswordChanged()

	if s.cache != nil {
		_ = s.cache.DeleteUser(ctx, id)
	}

	return "Your password was changed successfully", nil
}

// DeleteUser removes a user by id, irreversibly.
func (s *UserService) DeleteUser(ctx context.Context, id int64) (string, error) {
	if _, err := s.store.GetUserByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.store.DeleteUser(ctx, id); err != nil {
		return "", fmt.Errorf("failed to delete user: %w", err)
	}

	s.metrics.IncUserDeleted()

	if s.cache != nil {
		_ = s.cache.DeleteUser(ctx, id)
	}

	return fmt.Sprintf("User with Id %d was deleted successfully", id), nil
}
