package usecases

import (
	"context"
	"errors"

	"github.com/just-nibble/folio-service/internal/auth"
	"github.com/just-nibble/folio-service/internal/domain"
	"github.com/just-nibble/folio-service/internal/http/dtos"
	"github.com/just-nibble/folio-service/internal/repository"
	"github.com/just-nibble/folio-service/pkg/errcodes"
	"github.com/just-nibble/folio-service/pkg/log"
	"github.com/just-nibble/folio-service/pkg/validator"
)

type AuthUsecase interface {
	SignIn(ctx context.Context, input dtos.SignInInput) (string, domain.AuthSession, error)
	Authenticate(ctx context.Context, token string) (domain.AuthSession, error)
	SeedAdmin(ctx context.Context, email, password string) (*domain.User, error)
}

type authUsecase struct {
	users    repository.UserStore
	sessions *auth.Sessions
	log      log.Log
}

func NewAuthUsecase(users repository.UserStore, sessions *auth.Sessions, logger log.Log) AuthUsecase {
	return &authUsecase{users: users, sessions: sessions, log: logger.Component("auth")}
}

// SignIn checks the credentials and issues a session token. Unknown email
// and wrong password are reported identically.
func (uc *authUsecase) SignIn(ctx context.Context, input dtos.SignInInput) (string, domain.AuthSession, error) {
	if err := validator.Struct(input); err != nil {
		return "", domain.AuthSession{}, err
	}

	user, err := uc.users.UserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, errcodes.ErrNoRecordFound) {
			uc.log.Info().Str("email", input.Email).Msg("sign-in for unknown account")
			return "", domain.AuthSession{}, errcodes.ErrInvalidCredentials
		}
		return "", domain.AuthSession{}, err
	}
	if !auth.CheckPassword(user.PasswordHash, input.Password) {
		uc.log.Info().Str("email", input.Email).Msg("sign-in with wrong password")
		return "", domain.AuthSession{}, errcodes.ErrInvalidCredentials
	}

	token, session, err := uc.sessions.Issue(*user)
	if err != nil {
		return "", domain.AuthSession{}, err
	}
	uc.log.Info().Str("user", user.ID).Msg("signed in")
	return token, session, nil
}

// Authenticate resolves a token to a session whose account still exists.
func (uc *authUsecase) Authenticate(ctx context.Context, token string) (domain.AuthSession, error) {
	session, err := uc.sessions.Parse(token)
	if err != nil {
		return domain.AuthSession{}, err
	}
	if _, err := uc.users.UserByID(ctx, session.UserID); err != nil {
		if errors.Is(err, errcodes.ErrNoRecordFound) {
			return domain.AuthSession{}, errcodes.ErrUnauthorized
		}
		return domain.AuthSession{}, err
	}
	return session, nil
}

// SeedAdmin creates the dashboard owner, or resets the password when the
// account already exists.
func (uc *authUsecase) SeedAdmin(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, &validator.ValidationError{Fields: map[string]string{
			"admin": "admin email and password are required",
		}}
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return uc.users.SaveUser(ctx, domain.User{Email: email, PasswordHash: hash})
}
