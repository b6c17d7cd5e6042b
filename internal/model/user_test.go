package model

import (
	"testing"
	"time"
)

func TestUser_ToCachedUser(t *testing.T) {
	t.Parallel()

	user := &User{
		ID:           42,
		Name:         "John Doe",
		Email:        "john@example.com",
		PasswordHash: "$2a$12$hash",
		CreatedAt:    time.Unix(1700000000, 0).UTC(),
	}

	cached := user.ToCachedUser()

	if cached.Name != "John Doe" {
		t.Errorf("Name = %s, want John Doe", cached.Name)
	}
	if cached.Email != "john@example.com" {
		t.Errorf("Email = %s, want john@example.com", cached.Email)
	}
	if cached.CreatedAt != "1700000000" {
		t.Errorf("CreatedAt = %s, want 1700000000", cached.CreatedAt)
	}
}

func TestCachedUser_ToUser(t *testing.T) {
	t.Parallel()

	cached := &CachedUser{
		Name:      "John Doe",
		Email:     "john@example.com",
		CreatedAt: "1700000000",
	}

	user := cached.ToUser(42)

	if user.ID != 42 {
		t.Errorf("ID = %d, want 42", user.ID)
	}
	if user.PasswordHash != "" {
		t.Error("cached users must not carry a password hash")
	}
	if !user.CreatedAt.Equal(time.Unix(1700000000, 0).UTC()) {
		t.Errorf("CreatedAt = %v, want 2023-11-14T22:13:20Z", user.CreatedAt)
	}
}

func TestCachedUser_ToUser_EmptyCreatedAt(t *testing.T) {
	t.Parallel()

	cached := &CachedUser{Name: "John Doe", Email: "john@example.com"}

	user := cached.ToUser(1)

	if !user.CreatedAt.IsZero() {
		t.Errorf("CreatedAt should be zero, got %v", user.CreatedAt)
	}
}
