package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/cryptox"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
)

// TokenManager issues and verifies access tokens. *auth.TokenManager
// implements it.
type TokenManager interface {
	Issue(username string) (string, error)
	Verify(token string) (*auth.Claims, error)
}

// UserService authenticates accounts and resolves request identities.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      TokenManager
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, tokens TokenManager) *UserService {
	return &UserService{db: db, repomanager: m, tokens: tokens}
}

// SignUp stores a new account under a fresh random salt. Store errors
// (common.ErrDuplicateUsername, common.ErrStorageFailure) are returned as is.
func (s *UserService) SignUp(ctx context.Context, username, password string) (*models.User, error) {
	salt := cryptox.NewSalt()
	user := &models.User{
		UserName: username,
		Password: cryptox.HashPassword([]byte(password), salt),
		Salt:     salt,
	}

	return s.repomanager.Users(s.db).Create(ctx, user)
}

// ValidateCredentials reports whether password is right for username and, if
// so, returns the stored username. An unknown username returns early without
// hashing, so it answers faster than a wrong password does.
func (s *UserService) ValidateCredentials(ctx context.Context, username, password string) (string, bool, error) {
	user, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", false, nil
		}
		return "", false, err
	}

	if !cryptox.VerifyPassword([]byte(password), user.Salt, user.Password) {
		return "", false, nil
	}
	return user.UserName, true, nil
}

// SignIn validates the credentials and returns a fresh access token.
// Unknown user and wrong password both yield common.ErrorUnauthorized.
func (s *UserService) SignIn(ctx context.Context, username, password string) (string, error) {
	name, ok, err := s.ValidateCredentials(ctx, username, password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", common.ErrorUnauthorized
	}

	token, err := s.tokens.Issue(name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	return token, nil
}

// ResolveIdentity loads the live account named by a verified token. Tokens
// are not revoked, so an account deleted after issuance yields
// common.ErrorUnauthorized here.
func (s *UserService) ResolveIdentity(ctx context.Context, claims *auth.Claims) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, err
	}
	return user, nil
}

// Authenticate verifies token and resolves its account. It fails with
// common.ErrInvalidToken or common.ErrorUnauthorized; only a nil error lets
// the request proceed.
func (s *UserService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	return s.ResolveIdentity(ctx, claims)
}
