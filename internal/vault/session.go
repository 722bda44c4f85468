package vault

import (
	"time"

	"github.com/google/uuid"

	"github.com/passvault-app/passvault/internal/models"
)

// Session is the explicit state a caller holds after a successful login and
// passes back into every authenticated operation. There is no process-wide
// "current user"; multiple independent sessions can coexist, which keeps the
// service testable and safe for a multi-window UI.
type Session struct {
	ID       uuid.UUID
	User     *models.User
	LastUsed time.Time
}
