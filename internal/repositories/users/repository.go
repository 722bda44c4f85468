package users

import (
	"context"

	"github.com/passvault-app/passvault/internal/models"
)

// Repository describes persistence operations for user accounts.
// Implementations are backed by the local SQLite database.
type Repository interface {
	// Create inserts a new user and returns it with the assigned ID.
	// A taken username yields common.ErrDuplicateUsername.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByUsername returns the user with the given username, or
	// common.ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// GetByID returns the user with the given id, or common.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// Authenticate returns the user matching both username and password
	// exactly. A credential mismatch returns (nil, nil); only storage
	// faults produce an error.
	Authenticate(ctx context.Context, username, password string) (*models.User, error)

	// UpdateProfile replaces the user's password hint and password.
	// An unknown id yields common.ErrNotFound.
	UpdateProfile(ctx context.Context, id int64, hint, password string) error

	// Delete removes the user. Owned credentials are removed in the same
	// statement through the ON DELETE CASCADE foreign key.
	Delete(ctx context.Context, id int64) error
}
