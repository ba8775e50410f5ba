// Package auth handles account credentials and session tokens.
package auth

import (
	"context"

	"github.com/mmynk/splitledger/internal/models"
)

// Authenticator is what the account service needs from a credential scheme.
// PasswordAuthenticator is the only implementation.
type Authenticator interface {
	// Register creates an account. Returns ErrEmailExists, ErrInvalidEmail
	// or a scheme-specific validation error such as ErrWeakPassword.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate returns the account matching email and credential,
	// or ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks a credential before it is stored.
	ValidateCredential(credential string) error

	// Lookup returns the account behind an already authenticated user ID.
	Lookup(ctx context.Context, userID string) (*models.User, error)
}
