// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"clubhub/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindAll retrieves every user document.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindByID retrieves a single user by their store id.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity, letting the store assign the id.
	// The assigned id is written back to the entity.
	Create(ctx context.Context, user *entity.User) error

	// CreateWithID persists a new user entity under an externally issued id,
	// typically the uid minted by the identity provider.
	CreateWithID(ctx context.Context, id string, user *entity.User) error

	// Update replaces an existing user document.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user document.
	Delete(ctx context.Context, id string) error
}
