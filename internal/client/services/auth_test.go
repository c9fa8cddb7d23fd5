package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/dmitrijs2005/gatekeeper/internal/client/client"
	"github.com/dmitrijs2005/gatekeeper/internal/client/models"
	"github.com/dmitrijs2005/gatekeeper/internal/client/repositories/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)
	return db
}

type fakeClient struct {
	registerEmail string
	registerName  string
	registerPass  []byte
	registerErr   error

	loginEmail string
	loginPass  []byte
	loginToken string
	loginErr   error

	infoAcc *models.Account
	infoErr error

	pingErr error

	token       string
	closeCalled bool
}

func (f *fakeClient) Close() error {
	f.closeCalled = true
	return nil
}

func (f *fakeClient) Register(_ context.Context, email string, name string, password []byte) error {
	f.registerEmail, f.registerName = email, name
	f.registerPass = append([]byte(nil), password...)
	return f.registerErr
}

func (f *fakeClient) Login(_ context.Context, email string, password []byte) (string, error) {
	f.loginEmail = email
	f.loginPass = append([]byte(nil), password...)
	if f.loginErr != nil {
		return "", f.loginErr
	}
	f.token = f.loginToken
	return f.loginToken, nil
}

func (f *fakeClient) Info(_ context.Context) (*models.Account, error) {
	return f.infoAcc, f.infoErr
}

func (f *fakeClient) Ping(_ context.Context) error { return f.pingErr }

func (f *fakeClient) SetAccessToken(token string) { f.token = token }

func TestLogin_CachesSession(t *testing.T) {
	db := setupDB(t)
	fc := &fakeClient{loginToken: "tok1"}
	s := NewAuthService(fc, db)
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, "alice@example.org", []byte("secret")))

	assert.Equal(t, "alice@example.org", fc.loginEmail)
	assert.Equal(t, []byte("secret"), fc.loginPass)

	repo := metadata.NewSQLiteRepository(db)

	token, err := repo.Get(ctx, "access_token")
	require.NoError(t, err)
	assert.Equal(t, []byte("tok1"), token)

	email, err := repo.Get(ctx, "email")
	require.NoError(t, err)
	assert.Equal(t, []byte("alice@example.org"), email)
}

func TestLogin_FailureLeavesNoSession(t *testing.T) {
	db := setupDB(t)
	fc := &fakeClient{loginErr: client.ErrUnauthorized}
	s := NewAuthService(fc, db)
	ctx := context.Background()

	err := s.Login(ctx, "alice@example.org", []byte("wrong"))
	require.ErrorIs(t, err, client.ErrUnauthorized)

	repo := metadata.NewSQLiteRepository(db)
	token, err := repo.Get(ctx, "access_token")
	require.NoError(t, err)
	assert.Nil(t, token)
}

func TestRestoreSession(t *testing.T) {
	db := setupDB(t)
	fc := &fakeClient{}
	s := NewAuthService(fc, db)
	ctx := context.Background()

	repo := metadata.NewSQLiteRepository(db)
	require.NoError(t, repo.Set(ctx, "access_token", []byte("tok2")))
	require.NoError(t, repo.Set(ctx, "email", []byte("bob@example.org")))

	email, err := s.RestoreSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.org", email)
	assert.Equal(t, "tok2", fc.token)
}

func TestRestoreSession_NoCachedData(t *testing.T) {
	db := setupDB(t)
	s := NewAuthService(&fakeClient{}, db)

	_, err := s.RestoreSession(context.Background())
	require.ErrorIs(t, err, client.ErrLocalDataNotAvailable)
}

func TestRestoreSession_PartialDataIsNotASession(t *testing.T) {
	db := setupDB(t)
	s := NewAuthService(&fakeClient{}, db)
	ctx := context.Background()

	repo := metadata.NewSQLiteRepository(db)
	require.NoError(t, repo.Set(ctx, "access_token", []byte("tok")))

	_, err := s.RestoreSession(ctx)
	require.ErrorIs(t, err, client.ErrLocalDataNotAvailable)
}

func TestLogout_WipesSessionAndToken(t *testing.T) {
	db := setupDB(t)
	fc := &fakeClient{}
	s := NewAuthService(fc, db)
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, "alice@example.org", []byte("secret")))
	require.NoError(t, s.Logout(ctx))

	repo := metadata.NewSQLiteRepository(db)
	token, err := repo.Get(ctx, "access_token")
	require.NoError(t, err)
	assert.Nil(t, token)

	assert.Equal(t, "", fc.token)
}

func TestRegister_Passthrough(t *testing.T) {
	db := setupDB(t)
	fc := &fakeClient{}
	s := NewAuthService(fc, db)

	require.NoError(t, s.Register(context.Background(), "carol@example.org", "Carol", []byte("pw")))
	assert.Equal(t, "carol@example.org", fc.registerEmail)
	assert.Equal(t, "Carol", fc.registerName)
	assert.Equal(t, []byte("pw"), fc.registerPass)
}

func TestWhoami_Passthrough(t *testing.T) {
	db := setupDB(t)
	want := &models.Account{ID: "u-1", Email: "carol@example.org", Name: "Carol"}
	fc := &fakeClient{infoAcc: want}
	s := NewAuthService(fc, db)

	got, err := s.Whoami(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWhoami_ErrorPropagates(t *testing.T) {
	db := setupDB(t)
	fc := &fakeClient{infoErr: client.ErrUnauthorized}
	s := NewAuthService(fc, db)

	_, err := s.Whoami(context.Background())
	require.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestPing_Passthrough(t *testing.T) {
	db := setupDB(t)
	fc := &fakeClient{pingErr: errors.New("down")}
	s := NewAuthService(fc, db)

	require.Error(t, s.Ping(context.Background()))

	fc.pingErr = nil
	require.NoError(t, s.Ping(context.Background()))
}

func TestClose_Passthrough(t *testing.T) {
	db := setupDB(t)
	fc := &fakeClient{}
	s := NewAuthService(fc, db)

	require.NoError(t, s.Close(context.Background()))
	assert.True(t, fc.closeCalled)
}
