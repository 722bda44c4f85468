package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/passvault-app/passvault/internal/common"
	"github.com/passvault-app/passvault/internal/dbx"
	"github.com/passvault-app/passvault/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, cred *models.Credential) (*models.Credential, error) {
	query := `INSERT INTO credentials (owner_user_id, site, username, password) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, cred.OwnerUserID, cred.Site, cred.Username, cred.Password)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	cred.ID = id
	return cred, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, cred *models.Credential) error {
	query := `UPDATE credentials SET site = ?, username = ?, password = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, cred.Site, cred.Username, cred.Password, cred.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM credentials WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Credential, error) {
	query := `SELECT id, owner_user_id, site, username, password FROM credentials WHERE id = ?`

	cred := &models.Credential{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&cred.ID, &cred.OwnerUserID, &cred.Site, &cred.Username, &cred.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return cred, nil
}

// ListByUser returns credentials ordered by id, which is insertion order.
func (r *SQLiteRepository) ListByUser(ctx context.Context, userID int64) ([]models.Credential, error) {
	query := `SELECT id, owner_user_id, site, username, password FROM credentials
	          WHERE owner_user_id = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanCredentials(rows)
}

// Search filters by case-insensitive substring over the scoped field(s).
// Results keep the same id ordering as ListByUser: a stable filter, not a
// re-sort.
func (r *SQLiteRepository) Search(ctx context.Context, userID int64, query string, scope models.SearchScope) ([]models.Credential, error) {
	var match string
	switch scope {
	case models.ScopeSite:
		match = `instr(lower(site), lower(?)) > 0`
	case models.ScopeUsername:
		match = `instr(lower(username), lower(?)) > 0`
	case models.ScopeAll:
		match = `(instr(lower(site), lower(?)) > 0 OR instr(lower(username), lower(?)) > 0)`
	default:
		return nil, fmt.Errorf("unknown search scope %q", scope)
	}

	args := []any{userID, query}
	if scope == models.ScopeAll {
		args = append(args, query)
	}

	q := `SELECT id, owner_user_id, site, username, password FROM credentials
	      WHERE owner_user_id = ? AND ` + match + ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanCredentials(rows)
}

func scanCredentials(rows *sql.Rows) ([]models.Credential, error) {
	var result []models.Credential
	for rows.Next() {
		var c models.Credential
		if err := rows.Scan(&c.ID, &c.OwnerUserID, &c.Site, &c.Username, &c.Password); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
