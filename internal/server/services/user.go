// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login and the token-gated profile
// read.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/auth"
	"github.com/dmitrijs2005/gatekeeper/internal/server/config"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/dmitrijs2005/gatekeeper/internal/server/repositories/repomanager"
)

// dummyPasswordHash is verified against when the email is unknown, so the
// miss path costs one KDF evaluation just like the hit path.
const dummyPasswordHash = "$argon2id$v=19$m=65536,t=1,p=4$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// UserService provides authentication-related operations:
// - Register: create users
// - Login: verify credentials and mint an access token
// - Profile: return the account behind a verified principal
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      auth.PasswordHasher
	jwtSecret   []byte
}

// NewUserService constructs a UserService using repositories, a password
// hasher and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, h auth.PasswordHasher, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      h,
		jwtSecret:   []byte(cfg.SecretKey),
	}
}

// Register hashes the raw password and creates the user. A taken email
// surfaces common.ErrorEmailAlreadyExists and leaves the stored first
// registration unaffected.
func (s *UserService) Register(ctx context.Context, email string, password string, name string) (*models.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, &models.User{Email: email, Name: name, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorEmailAlreadyExists) {
			return nil, common.ErrorEmailAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %v", err)
	}

	return u, nil
}

// Login verifies the email/password pair and, on success, returns a signed
// access token carrying the email and account ID. An unknown email and a
// wrong password are indistinguishable: both yield common.ErrorUnauthorized,
// and the unknown-email path still runs one hash verification. Signing
// failures propagate as-is, never downgraded to an authorization error.
func (s *UserService) Login(ctx context.Context, email string, password string) (string, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_, _ = s.hasher.Verify(password, dummyPasswordHash)
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return "", common.ErrorInternal
	}
	if !ok {
		return "", common.ErrorUnauthorized
	}

	return auth.GenerateToken(user.Email, user.ID, s.jwtSecret)
}

// Profile returns the account behind a verified principal's email. An
// account that has vanished since the token was issued yields
// common.ErrorUnauthorized, indistinguishable from failed credentials.
func (s *UserService) Profile(ctx context.Context, email string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}
