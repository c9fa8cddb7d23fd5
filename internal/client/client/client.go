package client

import (
	"context"

	"github.com/dmitrijs2005/gatekeeper/internal/client/models"
)

type Client interface {
	Close() error
	Register(ctx context.Context, email string, name string, password []byte) error
	Login(ctx context.Context, email string, password []byte) (string, error)
	Info(ctx context.Context) (*models.Account, error)
	Ping(ctx context.Context) error
	SetAccessToken(token string)
}
