package service

import (
	"context"
	"errors"
	"strings"

	"github.com/quollsec/scanhub/internal/api/domain"
	"github.com/quollsec/scanhub/internal/api/store"
	"github.com/quollsec/scanhub/pkg/cryptox"
	"github.com/quollsec/scanhub/pkg/slogx"
)

type LoginService struct {
	Store  store.Store
	Tokens *TokenService
}

type LoginInput struct {
	Email    string
	Password string
}

// LoginResult carries the authenticated user and a signed access token.
type LoginResult struct {
	User  domain.User
	Token string
}

// Login authenticates by email and password. Unknown email, wrong password
// and an unverified account all yield ErrInvalidCredentials so the response
// does not reveal which check failed.
func (s *LoginService) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	log := slogx.FromContext(ctx)

	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return LoginResult{}, ErrInvalidCredentials
	} else if err != nil {
		return LoginResult{}, err
	}

	if err := cryptox.VerifyPassword(in.Password, user.PasswordHash); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		log.Info("login rejected for unverified account", "user_id", user.ID)
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.Tokens.IssueAccessToken(ctx, user, []string{"pwd"})
	if err != nil {
		return LoginResult{}, err
	}

	log.Info("user logged in", "user_id", user.ID)
	return LoginResult{User: user, Token: token}, nil
}
