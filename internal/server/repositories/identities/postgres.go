package identities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/dbx"
	"github.com/dmitrijs2005/userdir/internal/server/models"
)

const uniqueViolation = "23505"

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, identity *models.Identity) (*models.Identity, error) {
	query := `
		INSERT INTO identities (id, email, salt, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, last_sign_in_at
	`
	err := r.db.QueryRowContext(ctx, query, identity.ID, identity.Email, identity.Salt, identity.PasswordHash).
		Scan(&identity.CreatedAt, &identity.LastSignInAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, common.ErrEmailInUse
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return identity, nil
}

func (r *PostgresRepository) get(ctx context.Context, query string, arg any) (*models.Identity, error) {
	i := &models.Identity{}
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&i.ID, &i.Email, &i.Salt, &i.PasswordHash, &i.CreatedAt, &i.LastSignInAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return i, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Identity, error) {
	return r.get(ctx, `
		SELECT id, email, salt, password_hash, created_at, last_sign_in_at
		FROM identities
		WHERE email = $1
	`, email)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Identity, error) {
	return r.get(ctx, `
		SELECT id, email, salt, password_hash, created_at, last_sign_in_at
		FROM identities
		WHERE id = $1
	`, id)
}

func (r *PostgresRepository) TouchLastSignIn(ctx context.Context, id string) (*models.Identity, error) {
	return r.get(ctx, `
		UPDATE identities SET last_sign_in_at = now()
		WHERE id = $1
		RETURNING id, email, salt, password_hash, created_at, last_sign_in_at
	`, id)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM identities
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
