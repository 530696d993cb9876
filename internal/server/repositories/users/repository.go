package users

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// Repository is the account store.
//
// Create fails with common.ErrDuplicateUsername when the username is taken
// and with common.ErrStorageFailure for anything else. GetUserByLogin
// returns common.ErrorNotFound for an unknown username.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, userName string) (*models.User, error)
	Delete(ctx context.Context, id string) error
}
