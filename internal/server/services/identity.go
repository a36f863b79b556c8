// Package services contains server-side business logic. This file implements
// IdentityService, which registers and authenticates accounts and issues
// JWT access tokens plus server-stored refresh tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/cryptox"
	"github.com/dmitrijs2005/userdir/internal/dbx"
	"github.com/dmitrijs2005/userdir/internal/server/auth"
	"github.com/dmitrijs2005/userdir/internal/server/config"
	"github.com/dmitrijs2005/userdir/internal/server/models"
	"github.com/dmitrijs2005/userdir/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthResult is a successful authentication: the identity and its tokens.
type AuthResult struct {
	Identity *models.Identity
	Tokens   *TokenPair
}

// IdentityService provides the account operations:
//   - SignUp / SignIn: create or verify credentials and mint tokens
//   - RefreshToken: rotate refresh tokens and mint new access tokens
//   - SignOut: revoke a refresh token
//   - DeleteAccount: revoke all tokens and remove the identity
//
// Profiles are never touched here.
type IdentityService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

func NewIdentityService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *IdentityService {
	return &IdentityService{
		db:                           db,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", common.ErrInvalidEmail
	}
	return email, nil
}

// SignUp creates an identity for email and signs it in.
func (s *IdentityService) SignUp(ctx context.Context, email, password string) (*AuthResult, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if len(password) < common.MinPasswordLength {
		return nil, common.ErrWeakPassword
	}

	salt := cryptox.NewSalt()
	identity := &models.Identity{
		ID:           uuid.NewString(),
		Email:        email,
		Salt:         salt,
		PasswordHash: cryptox.DeriveKey([]byte(password), salt),
	}

	var res *AuthResult
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		created, err := s.repomanager.Identities(tx).Create(ctx, identity)
		if err != nil {
			return err
		}
		pair, err := s.generateTokenPair(ctx, created.ID, tx)
		if err != nil {
			return err
		}
		res = &AuthResult{Identity: created, Tokens: pair}
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrEmailInUse) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating identity: %w", err)
	}
	return res, nil
}

// SignIn verifies the password and records the sign-in time. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *IdentityService) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}

	identity, err := s.repomanager.Identities(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// spend the same work as a real check
			cryptox.VerifyPassword([]byte(password), cryptox.NewSalt(), nil)
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrorInternal
	}
	if !cryptox.VerifyPassword([]byte(password), identity.Salt, identity.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	var res *AuthResult
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		touched, err := s.repomanager.Identities(tx).TouchLastSignIn(ctx, identity.ID)
		if err != nil {
			return err
		}
		pair, err := s.generateTokenPair(ctx, identity.ID, tx)
		if err != nil {
			return err
		}
		res = &AuthResult{Identity: touched, Tokens: pair}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error signing in: %w", err)
	}
	return res, nil
}

// RefreshToken validates a refresh token, rotates it transactionally, and
// returns a fresh token pair with the identity. Expired tokens yield
// ErrRefreshTokenExpired; unknown ones and tokens consumed by a concurrent
// rotation yield ErrInvalidToken.
func (s *IdentityService) RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error) {
	repo := s.repomanager.RefreshTokens(s.db)

	token, err := repo.Lookup(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, fmt.Errorf("error searching refresh token: %w", err)
	}
	if token.Expires.Before(time.Now()) {
		_, _ = repo.Revoke(ctx, refreshToken)
		return nil, common.ErrRefreshTokenExpired
	}

	var res *AuthResult
	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		revoked, err := s.repomanager.RefreshTokens(tx).Revoke(ctx, refreshToken)
		if err != nil {
			return fmt.Errorf("error revoking refresh token: %w", err)
		}
		if !revoked {
			return common.ErrInvalidToken
		}
		identity, err := s.repomanager.Identities(tx).GetByID(ctx, token.IdentityID)
		if err != nil {
			return err
		}
		pair, err := s.generateTokenPair(ctx, identity.ID, tx)
		if err != nil {
			return err
		}
		res = &AuthResult{Identity: identity, Tokens: pair}
		return nil
	}); err != nil {
		return nil, err
	}
	return res, nil
}

// SignOut revokes refreshToken. Unknown tokens are ignored.
func (s *IdentityService) SignOut(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	_, err := s.repomanager.RefreshTokens(s.db).Revoke(ctx, refreshToken)
	return err
}

// DeleteAccount revokes every session of uid and removes the identity.
func (s *IdentityService) DeleteAccount(ctx context.Context, uid string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.RefreshTokens(tx).RevokeAll(ctx, uid); err != nil {
			return err
		}
		return s.repomanager.Identities(tx).Delete(ctx, uid)
	})
}

// --- helpers below ---

func (s *IdentityService) generateAccessToken(userID string) (string, error) {
	return auth.GenerateToken(userID, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *IdentityService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *IdentityService) generateTokenPair(ctx context.Context, userID string, tx dbx.DBTX) (*TokenPair, error) {
	access, err := s.generateAccessToken(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.repomanager.RefreshTokens(tx).Issue(ctx, userID, refresh, time.Now().Add(s.refreshTokenValidityDuration)); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
