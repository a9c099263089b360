package repository

import (
	"context"

	"notekeep/internal/domain/entity"
)

// UserRepository provides durable storage for user accounts.
type UserRepository interface {
	// GetByEmail returns the user with the given email, or nil when no
	// such account exists.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetByID returns the user with the given ID, or nil when no such
	// account exists.
	GetByID(ctx context.Context, id string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
}
