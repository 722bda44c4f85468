package credentials

import (
	"context"

	"github.com/passvault-app/passvault/internal/models"
)

// Repository describes persistence operations for stored site credentials.
type Repository interface {
	// Create inserts a credential and returns it with the assigned ID.
	Create(ctx context.Context, cred *models.Credential) (*models.Credential, error)

	// Update replaces site, username, and password of an existing credential.
	// An unknown id yields common.ErrNotFound.
	Update(ctx context.Context, cred *models.Credential) error

	// Delete removes a credential by id; common.ErrNotFound if unknown.
	Delete(ctx context.Context, id int64) error

	// GetByID returns one credential, or common.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Credential, error)

	// ListByUser returns the user's credentials in insertion order.
	ListByUser(ctx context.Context, userID int64) ([]models.Credential, error)

	// Search returns the user's credentials whose selected field(s) contain
	// query (case-insensitive substring), keeping insertion order.
	Search(ctx context.Context, userID int64, query string, scope models.SearchScope) ([]models.Credential, error)
}
