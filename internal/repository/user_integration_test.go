//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/userhub/userhub/internal/model"
	"github.com/userhub/userhub/internal/testutil"
)

func TestIntegrationUserRepository_CreateUser(t *testing.T) {
	ctx, repo := newUserTestEnv(t)

	user := &model.User{
		Name:         "John Doe",
		Email:        "john@x.com",
		PasswordHash: "$2a$12$notarealhashbutgoodenoughforthedb",
	}

	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if user.ID == 0 {
		t.Error("ID should be assigned by the store")
	}
	if user.CreatedAt.IsZero() {
		t.Error("CreatedAt should be assigned by the store")
	}

	retrieved, err := repo.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if retrieved.Email != "john@x.com" {
		t.Errorf("Email mismatch: got %q", retrieved.Email)
	}
	if retrieved.PasswordHash != user.PasswordHash {
		t.Error("PasswordHash should round-trip")
	}
}

func TestIntegrationUserRepository_CreateUser_DuplicateEmail(t *testing.T) {
	ctx, repo := newUserTestEnv(t)

	first := &model.User{Name: "John Doe", Email: "dup@x.com", PasswordHash: "h1"}
	if err := repo.CreateUser(ctx, first); err != nil {
		t.Fatalf("CreateUser (first) failed: %v", err)
	}

	second := &model.User{Name: "Other John", Email: "dup@x.com", PasswordHash: "h2"}
	if err := repo.CreateUser(ctx, second); !errors.Is(err, ErrEmailExists) {
		t.Errorf("expected ErrEmailExists, got: %v", err)
	}
}

func TestIntegrationUserRepository_ExistsByEmail(t *testing.T) {
	ctx, repo := newUserTestEnv(t)

	user := &model.User{Name: "John Doe", Email: "exists@x.com", PasswordHash: "h"}
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	exists, err := repo.ExistsByEmail(ctx, "exists@x.com")
	if err != nil {
		t.Fatalf("ExistsByEmail failed: %v", err)
	}
	if !exists {
		t.Error("expected email to exist")
	}

	// Exact-match semantics: a different case is a different email.
	exists, err = repo.ExistsByEmail(ctx, "EXISTS@x.com")
	if err != nil {
		t.Fatalf("ExistsByEmail failed: %v", err)
	}
	if exists {
		t.Error("email matching must be exact, not case-insensitive")
	}
}

func TestIntegrationUserRepository_GetUserByID_NotFound(t *testing.T) {
	ctx, repo := newUserTestEnv(t)

	_, err := repo.GetUserByID(ctx, 404)
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got: %v", err)
	}
}

func TestIntegrationUserRepository_ListUsers(t *testing.T) {
	ctx, repo := newUserTestEnv(t)

	emails := []string{"a@x.com", "b@x.com", "c@x.com"}
	for i, email := range emails {
		user := &model.User{Name: "User", Email: email, PasswordHash: "h"}
		if err := repo.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser %d failed: %v", i, err)
		}
	}

	users, total, err := repo.ListUsers(ctx, PageRequest{Page: 0, Size: 2})
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if total != 3 {
		t.Errorf("expected total 3, got %d", total)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 users on page, got %d", len(users))
	}

	// Second page holds the remainder.
	users, _, err = repo.ListUsers(ctx, PageRequest{Page: 1, Size: 2})
	if err != nil {
		t.Fatalf("ListUsers (page 1) failed: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("expected 1 user on page 1, got %d", len(users))
	}

	// Sort by email descending.
	users, _, err = repo.ListUsers(ctx, PageRequest{Page: 0, Size: 3, Sort: "email", Desc: true})
	if err != nil {
		t.Fatalf("ListUsers (sorted) failed: %v", err)
	}
	if users[0].Email != "c@x.com" {
		t.Errorf("expected c@x.com first, got %s", users[0].Email)
	}
}

func TestIntegrationUserRepository_UpdateUser(t *testing.T) {
	ctx, repo := newUserTestEnv(t)

	user := &model.User{Name: "John Doe", Email: "update@x.com", PasswordHash: "h"}
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	user.Name = "Johnny Doe"
	if err := repo.UpdateUser(ctx, user); err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}

	retrieved, err := repo.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if retrieved.Name != "Johnny Doe" {
		t.Errorf("expected updated name, got %q", retrieved.Name)
	}
	if !retrieved.CreatedAt.Equal(user.CreatedAt) {
		t.Error("CreatedAt must be immutable across updates")
	}
}

func TestIntegrationUserRepository_UpdateUser_NotFound(t *testing.T) {
	ctx, repo := newUserTestEnv(t)

	ghost := &model.User{ID: 404, Name: "Ghost", Email: "ghost@x.com", PasswordHash: "h"}
	if err := repo.UpdateUser(ctx, ghost); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got: %v", err)
	}
}

func TestIntegrationUserRepository_DeleteUser(t *testing.T) {
	ctx, repo := newUserTestEnv(t)

	user := &model.User{Name: "John Doe", Email: "delete@x.com", PasswordHash: "h"}
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if err := repo.DeleteUser(ctx, user.ID); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	if _, err := repo.GetUserByID(ctx, user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound after delete, got: %v", err)
	}

	if err := repo.DeleteUser(ctx, user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound on second delete, got: %v", err)
	}
}

// ============================================================================
// Test Environment Setup
// ============================================================================

func newUserTestEnv(t *testing.T) (context.Context, *Repository) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()
	dbURL := testutil.RequireEnv(t, "DATABASE_URL")

	repo, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(repo.Close)

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire db lock: %v", err)
	}
	t.Cleanup(func() {
		_ = unlock()
	})

	if err := testutil.ResetUsersSchema(ctx, repo.Pool()); err != nil {
		t.Fatalf("reset users schema: %v", err)
	}

	return ctx, repo
}
