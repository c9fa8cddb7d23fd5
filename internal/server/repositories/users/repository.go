package users

import (
	"context"

	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
)

// Repository is the credential store contract. Create yields
// common.ErrorEmailAlreadyExists when the email is taken; GetUserByEmail
// yields common.ErrorNotFound for an unknown email.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
