// Package services contains application services for the GateKeeper client.
// This file defines the authentication service: register, login, the
// token-gated profile read, liveness probe, and housekeeping of the locally
// cached session.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gatekeeper/internal/client/client"
	"github.com/dmitrijs2005/gatekeeper/internal/client/models"
	"github.com/dmitrijs2005/gatekeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gatekeeper/internal/dbx"
)

// Metadata keys of the cached session.
const (
	metaKeyAccessToken = "access_token"
	metaKeyEmail       = "email"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create a new account on the server.
//   - Login: authenticate against the server and cache the session locally.
//   - RestoreSession: load a previously cached session, returning its email.
//   - Whoami: fetch the account behind the current session from the server.
//   - Logout: wipe the cached session.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, email string, name string, password []byte) error
	Login(ctx context.Context, email string, password []byte) error
	RestoreSession(ctx context.Context) (string, error)
	Whoami(ctx context.Context) (*models.Account, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote Client
// and a local SQL database for the cached session.
type authService struct {
	client client.Client
	db     *sql.DB
}

// NewAuthService constructs an AuthService bound to the given API client and DB.
func NewAuthService(client client.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db}
}

func (a *authService) getMetadataRepo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// Register creates a new account on the server.
func (a *authService) Register(ctx context.Context, email string, name string, password []byte) error {
	return a.client.Register(ctx, email, name, password)
}

// Login authenticates against the server and caches the session
// (access token, email) so it survives process restarts.
func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	if err := a.saveSession(ctx, email, token); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

// saveSession persists the session atomically: either both the access token
// and the email land in the store, or neither does.
func (a *authService) saveSession(ctx context.Context, email string, token string) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.getMetadataRepo(tx)
		if err := repo.Set(ctx, metaKeyAccessToken, []byte(token)); err != nil {
			return err
		}
		if err := repo.Set(ctx, metaKeyEmail, []byte(email)); err != nil {
			return err
		}
		return nil
	})
}

// RestoreSession loads the cached session into the API client and returns
// the session's email. When no complete session is cached it returns
// client.ErrLocalDataNotAvailable.
func (a *authService) RestoreSession(ctx context.Context) (string, error) {
	repo := a.getMetadataRepo(a.db)

	cache, err := repo.List(ctx)
	if err != nil {
		return "", err
	}

	token, email := cache[metaKeyAccessToken], cache[metaKeyEmail]
	if len(token) == 0 || len(email) == 0 {
		return "", client.ErrLocalDataNotAvailable
	}

	a.client.SetAccessToken(string(token))
	return string(email), nil
}

// Whoami returns the account behind the current session, as the server sees it.
func (a *authService) Whoami(ctx context.Context) (*models.Account, error) {
	return a.client.Info(ctx)
}

// Logout wipes the cached session and drops the in-memory access token.
func (a *authService) Logout(ctx context.Context) error {
	repo := a.getMetadataRepo(a.db)
	if err := repo.Clear(ctx); err != nil {
		return err
	}
	a.client.SetAccessToken("")
	return nil
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
