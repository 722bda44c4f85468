// Package vault contains the application service composing the strength
// scorer, the password generator, and the credential repositories. The UI
// layer calls these methods and renders the plain data they return.
package vault

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/passvault-app/passvault/internal/common"
	"github.com/passvault-app/passvault/internal/dbx"
	"github.com/passvault-app/passvault/internal/generator"
	"github.com/passvault-app/passvault/internal/logging"
	"github.com/passvault-app/passvault/internal/models"
	"github.com/passvault-app/passvault/internal/repositories/users"
	"github.com/passvault-app/passvault/internal/storage"
	"github.com/passvault-app/passvault/internal/strength"
)

// Service provides registration/authentication flows and credential CRUD
// with validation. All authenticated operations take the Session returned
// by Login.
type Service struct {
	repos       *storage.Repositories
	log         logging.Logger
	idleTimeout time.Duration

	// test seam for session-expiry checks
	now func() time.Time
}

// NewService constructs a Service. idleTimeout of zero disables session
// auto-lock.
func NewService(repos *storage.Repositories, log logging.Logger, idleTimeout time.Duration) *Service {
	return &Service{
		repos:       repos,
		log:         log,
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

// Register validates the username and password against the strength
// requirements and creates the account. Storage is not touched when
// validation fails.
func (s *Service) Register(ctx context.Context, username, password, hint string) (*models.User, error) {
	var failed []string
	if username == "" {
		failed = append(failed, "a username")
	}
	failed = append(failed, strength.Evaluate(password).Checks.Failed()...)
	if len(failed) > 0 {
		return nil, &ValidationError{Failed: failed}
	}

	var user *models.User
	err := dbx.WithTx(ctx, s.repos.DB, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := users.NewSQLiteRepository(tx)
		u, err := repo.Create(ctx, &models.User{Username: username, Password: password, PasswordHint: hint})
		if err != nil {
			return err
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

// Login authenticates and returns a fresh Session. A credential mismatch
// yields common.ErrAuthFailed with no detail about which field was wrong.
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := s.repos.Users.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.ErrAuthFailed
	}

	session := &Session{ID: uuid.New(), User: user, LastUsed: s.now()}
	s.log.Info(ctx, "user logged in", "user_id", user.ID, "session_id", session.ID)
	return session, nil
}

// PasswordHint returns the stored hint for a username, for the login screen.
func (s *Service) PasswordHint(ctx context.Context, username string) (string, error) {
	user, err := s.repos.Users.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	return user.PasswordHint, nil
}

// ChangeProfile updates the password hint and password of the session's
// user. The new password must evaluate as Strong.
func (s *Service) ChangeProfile(ctx context.Context, session *Session, newHint, newPassword string) error {
	if err := s.touch(session); err != nil {
		return err
	}
	if strength.Evaluate(newPassword).Category != strength.CategoryStrong {
		return common.ErrWeakPassword
	}
	if err := s.repos.Users.UpdateProfile(ctx, session.User.ID, newHint, newPassword); err != nil {
		return err
	}
	session.User.PasswordHint = newHint
	session.User.Password = newPassword
	s.log.Info(ctx, "profile updated", "user_id", session.User.ID)
	return nil
}

// DeleteAccount removes the session's user and, through the cascading
// foreign key, every credential the user owns. The session is unusable
// afterwards.
func (s *Service) DeleteAccount(ctx context.Context, session *Session) error {
	if err := s.touch(session); err != nil {
		return err
	}
	if err := s.repos.Users.Delete(ctx, session.User.ID); err != nil {
		return err
	}
	s.log.Info(ctx, "account deleted", "user_id", session.User.ID)
	return nil
}

// AddCredential stores a new site credential for the session's user.
func (s *Service) AddCredential(ctx context.Context, session *Session, site, username, password string) (*models.Credential, error) {
	if err := s.touch(session); err != nil {
		return nil, err
	}
	if site == "" {
		return nil, &ValidationError{Failed: []string{"a site"}}
	}
	return s.repos.Credentials.Create(ctx, &models.Credential{
		OwnerUserID: session.User.ID,
		Site:        site,
		Username:    username,
		Password:    password,
	})
}

// UpdateCredential edits an existing credential. Credentials owned by other
// users are reported as not found.
func (s *Service) UpdateCredential(ctx context.Context, session *Session, id int64, site, username, password string) error {
	if err := s.touch(session); err != nil {
		return err
	}
	if site == "" {
		return &ValidationError{Failed: []string{"a site"}}
	}
	if err := s.checkOwnership(ctx, session, id); err != nil {
		return err
	}
	return s.repos.Credentials.Update(ctx, &models.Credential{
		ID:       id,
		Site:     site,
		Username: username,
		Password: password,
	})
}

// DeleteCredential removes one credential of the session's user.
func (s *Service) DeleteCredential(ctx context.Context, session *Session, id int64) error {
	if err := s.touch(session); err != nil {
		return err
	}
	if err := s.checkOwnership(ctx, session, id); err != nil {
		return err
	}
	return s.repos.Credentials.Delete(ctx, id)
}

// ListCredentials returns the user's credentials in insertion order.
func (s *Service) ListCredentials(ctx context.Context, session *Session) ([]models.Credential, error) {
	if err := s.touch(session); err != nil {
		return nil, err
	}
	return s.repos.Credentials.ListByUser(ctx, session.User.ID)
}

// SearchCredentials filters the user's credentials by a case-insensitive
// substring over the scoped field(s), preserving insertion order.
func (s *Service) SearchCredentials(ctx context.Context, session *Session, query string, scope models.SearchScope) ([]models.Credential, error) {
	if err := s.touch(session); err != nil {
		return nil, err
	}
	return s.repos.Credentials.Search(ctx, session.User.ID, query, scope)
}

// GeneratePassword proxies the generator for the UI boundary.
func (s *Service) GeneratePassword(length int) (string, error) {
	return generator.Generate(length)
}

// CheckStrength proxies the strength scorer for the UI boundary.
func (s *Service) CheckStrength(candidate string) strength.Result {
	return strength.Evaluate(candidate)
}

// checkOwnership verifies the credential belongs to the session's user.
// Foreign credentials look identical to missing ones.
func (s *Service) checkOwnership(ctx context.Context, session *Session, credentialID int64) error {
	cred, err := s.repos.Credentials.GetByID(ctx, credentialID)
	if err != nil {
		return err
	}
	if cred.OwnerUserID != session.User.ID {
		return common.ErrNotFound
	}
	return nil
}

// touch validates the session and refreshes its idle timer.
func (s *Service) touch(session *Session) error {
	if session == nil || session.User == nil {
		return common.ErrAuthFailed
	}
	now := s.now()
	if s.idleTimeout > 0 && now.Sub(session.LastUsed) > s.idleTimeout {
		return common.ErrSessionExpired
	}
	session.LastUsed = now
	return nil
}
