// Package model defines domain entities for the application.
package model

import (
	"strconv"
	"time"
)

// User represents a registered account.
// PasswordHash holds the bcrypt hash of the password and must never be
// serialized to API responses.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// CachedUser represents the password-free user view stored in Redis.
// Uses string types for Redis hash compatibility.
type CachedUser struct {
	Name      string `redis:"name"`
	Email     string `redis:"email"`
	CreatedAt string `redis:"created_at"` // Unix timestamp
}

// ToUser converts CachedUser to the User domain model.
// The returned user carries no password hash; callers that need the
// hash must go to the store.
func (c *CachedUser) ToUser(id int64) *User {
	user := &User{
		ID:    id,
		Name:  c.Name,
		Email: c.Email,
	}

	if c.CreatedAt != "" {
		if ts, err := strconv.ParseInt(c.CreatedAt, 10, 64); err == nil {
			user.CreatedAt = time.Unix(ts, 0).UTC()
		}
	}

	return user
}

// ToCachedUser converts a User to its cache representation.
func (u *User) ToCachedUser() *CachedUser {
	return &CachedUser{
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: strconv.FormatInt(u.CreatedAt.Unix(), 10),
	}
}
