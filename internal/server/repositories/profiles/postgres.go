package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/dbx"
	"github.com/dmitrijs2005/userdir/internal/server/models"
)

const profileColumns = `uid, user_name, user_email, registration_time, last_sign_in_time, status, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(s scanner) (*models.Profile, error) {
	p := &models.Profile{}
	err := s.Scan(&p.UID, &p.UserName, &p.UserEmail, &p.RegistrationTime, &p.LastSignInTime, &p.Status, &p.UpdatedAt)
	return p, err
}

func (r *PostgresRepository) list(ctx context.Context, query string) ([]models.Profile, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Profile, error) {
	return r.list(ctx, `SELECT `+profileColumns+` FROM profiles ORDER BY uid`)
}

func (r *PostgresRepository) ListOrphans(ctx context.Context) ([]models.Profile, error) {
	return r.list(ctx, `
		SELECT p.uid, p.user_name, p.user_email, p.registration_time, p.last_sign_in_time, p.status, p.updated_at
		FROM profiles p
		LEFT JOIN identities i ON i.id::text = p.uid
		WHERE i.id IS NULL
		ORDER BY p.uid
	`)
}

func (r *PostgresRepository) get(ctx context.Context, query, uid string) (*models.Profile, error) {
	p, err := scanProfile(r.db.QueryRowContext(ctx, query, uid))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Get(ctx context.Context, uid string) (*models.Profile, error) {
	return r.get(ctx, `SELECT `+profileColumns+` FROM profiles WHERE uid = $1`, uid)
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, uid string) (*models.Profile, error) {
	return r.get(ctx, `SELECT `+profileColumns+` FROM profiles WHERE uid = $1 FOR UPDATE`, uid)
}

func (r *PostgresRepository) Upsert(ctx context.Context, p *models.Profile) error {
	query := `
		INSERT INTO profiles (uid, user_name, user_email, registration_time, last_sign_in_time, status, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (uid) DO UPDATE SET
			user_name = EXCLUDED.user_name,
			user_email = EXCLUDED.user_email,
			registration_time = EXCLUDED.registration_time,
			last_sign_in_time = EXCLUDED.last_sign_in_time,
			status = EXCLUDED.status,
			updated_at = now()
	`
	_, err := r.db.ExecContext(ctx, query, p.UID, p.UserName, p.UserEmail, p.RegistrationTime, p.LastSignInTime, p.Status)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, uid string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE uid = $1`, uid)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}
