// Package service defines interfaces for domain services whose concrete
// implementations live in the infra layer.
package service

import (
	"context"
	"errors"
)

// ErrSignInUnsupported is returned by providers that delegate password
// sign-in to a client SDK instead of handling it server side.
var ErrSignInUnsupported = errors.New("sign-in is handled by the client sdk for this provider")

// AuthUser is the provider-independent view of an authenticated identity.
type AuthUser struct {
	UID   string // Stable id issued by the identity provider.
	Email string // Email the identity was registered with.
}

// IdentityProvider abstracts the managed identity subsystem (Firebase
// Authentication in production, a local JWT issuer in development).
// User documents created for registered accounts use the provider-issued UID
// as their store id so the two systems share one key space.
type IdentityProvider interface {
	// SignUp creates a credential for the given email/password pair and
	// returns the provider-issued uid.
	SignUp(ctx context.Context, email, password string) (string, error)

	// SignIn verifies an email/password pair and returns a bearer token the
	// client presents on subsequent requests. Providers that delegate sign-in
	// entirely to a client SDK may return ErrSignInUnsupported.
	SignIn(ctx context.Context, email, password string) (string, error)

	// VerifyToken validates a bearer token and returns the identity it
	// belongs to.
	VerifyToken(ctx context.Context, token string) (*AuthUser, error)

	// DeleteAccount removes the credential for the given uid.
	DeleteAccount(ctx context.Context, uid string) error
}

// PasswordHasher abstracts password hashing for identity providers that store
// credentials themselves.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}
