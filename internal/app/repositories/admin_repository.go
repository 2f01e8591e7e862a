package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/db"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
)

// IAdminRepository is the admin lookup surface used by the services
type IAdminRepository interface {
	GetCredential(ctx context.Context, username string) (*models.Credential, error)
}

// AdminRepository handles database operations for administrators
type AdminRepository struct {
	db db.DBTX
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(conn db.DBTX) *AdminRepository {
	return &AdminRepository{db: conn}
}

// GetCredential loads what is needed to verify an admin login
func (r *AdminRepository) GetCredential(ctx context.Context, username string) (*models.Credential, error) {
	cred := &models.Credential{UserType: models.UserTypeAdmin}
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password FROM admins WHERE username = $1`,
		username,
	).Scan(&cred.ID, &cred.Identifier, &cred.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error getting admin credential: %w", err)
	}
	return cred, nil
}

// CreateIfMissing inserts an admin unless the username exists already.
// It reports whether a row was written.
func (r *AdminRepository) CreateIfMissing(ctx context.Context, admin *models.Admin) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO admins (username, password)
		VALUES ($1, $2)
		ON CONFLICT ON CONSTRAINT admins_username_key DO NOTHING
	`, admin.Username, admin.Password)
	if err != nil {
		return false, fmt.Errorf("error creating admin: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
