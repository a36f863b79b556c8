package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/dbx"
	"github.com/dmitrijs2005/userdir/internal/logging"
	"github.com/dmitrijs2005/userdir/internal/server/broker"
	"github.com/dmitrijs2005/userdir/internal/server/models"
	"github.com/dmitrijs2005/userdir/internal/server/repositories/repomanager"
)

const (
	StatusActive  = "active"
	StatusBlocked = "blocked"
)

// Merge-writable profile fields.
const (
	FieldUserName         = "userName"
	FieldUserEmail        = "userEmail"
	FieldRegistrationTime = "registrationTime"
	FieldLastSignInTime   = "lastSignInTime"
	FieldStatus           = "status"
)

func validateStatus(s string) error {
	if s != StatusActive && s != StatusBlocked {
		return fmt.Errorf("%w: %q", common.ErrInvalidStatus, s)
	}
	return nil
}

// DirectoryService is the document store behind the user directory. Every
// mutation that changes stored data is announced on the publisher.
type DirectoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	publisher   broker.Publisher
	logger      logging.Logger
}

func NewDirectoryService(db *sql.DB, m repomanager.RepositoryManager, p broker.Publisher, logger logging.Logger) *DirectoryService {
	return &DirectoryService{
		db:          db,
		repomanager: m,
		publisher:   p,
		logger:      logger.With("module", "directory"),
	}
}

// Snapshot returns the whole collection.
func (s *DirectoryService) Snapshot(ctx context.Context) ([]models.Profile, error) {
	return s.repomanager.Profiles(s.db).List(ctx)
}

// Get returns common.ErrorNotFound for an unknown uid.
func (s *DirectoryService) Get(ctx context.Context, uid string) (*models.Profile, error) {
	return s.repomanager.Profiles(s.db).Get(ctx, uid)
}

// Set replaces (or creates) the profile at p.UID. An empty status means active.
func (s *DirectoryService) Set(ctx context.Context, p *models.Profile) error {
	if p.Status == "" {
		p.Status = StatusActive
	}
	if err := validateStatus(p.Status); err != nil {
		return err
	}
	if err := s.repomanager.Profiles(s.db).Upsert(ctx, p); err != nil {
		return err
	}
	s.publish(ctx, "set", p.UID)
	return nil
}

// Merge updates only the given fields of an existing profile and reports
// whether anything changed. A merge that changes nothing publishes nothing.
func (s *DirectoryService) Merge(ctx context.Context, uid string, fields map[string]string) (bool, error) {
	if err := validateFields(fields); err != nil {
		return false, err
	}

	changed := false
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Profiles(tx)
		p, err := repo.GetForUpdate(ctx, uid)
		if err != nil {
			return err
		}
		if !applyFields(p, fields) {
			return nil
		}
		changed = true
		return repo.Upsert(ctx, p)
	})
	if err != nil {
		return false, err
	}
	if changed {
		s.publish(ctx, "merge", uid)
	}
	return changed, nil
}

// Delete removes the profile at uid. Deleting an absent profile is not an error.
func (s *DirectoryService) Delete(ctx context.Context, uid string) error {
	removed, err := s.repomanager.Profiles(s.db).Delete(ctx, uid)
	if err != nil {
		return err
	}
	if removed {
		s.publish(ctx, "delete", uid)
	}
	return nil
}

func (s *DirectoryService) publish(ctx context.Context, op, uid string) {
	if err := s.publisher.Publish(ctx); err != nil {
		s.logger.Warn(ctx, "change notification failed", "op", op, "uid", uid, "error", err)
	}
}

func validateFields(fields map[string]string) error {
	for k, v := range fields {
		switch k {
		case FieldUserName, FieldUserEmail, FieldRegistrationTime, FieldLastSignInTime:
		case FieldStatus:
			if err := validateStatus(v); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %q", common.ErrInvalidField, k)
		}
	}
	return nil
}

func applyFields(p *models.Profile, fields map[string]string) bool {
	changed := false
	set := func(dst *string, v string) {
		if *dst != v {
			*dst = v
			changed = true
		}
	}
	for k, v := range fields {
		switch k {
		case FieldUserName:
			set(&p.UserName, v)
		case FieldUserEmail:
			set(&p.UserEmail, v)
		case FieldRegistrationTime:
			set(&p.RegistrationTime, v)
		case FieldLastSignInTime:
			set(&p.LastSignInTime, v)
		case FieldStatus:
			set(&p.Status, v)
		}
	}
	return changed
}
