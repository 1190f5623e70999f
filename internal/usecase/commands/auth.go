package commands

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"event-registration/internal/pkg/errs"
	"event-registration/internal/pkg/jwt"
	"event-registration/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	Username  string
	Token     string
	ExpiresIn time.Duration
}

type AdminCredentials struct {
	Username     string
	PasswordHash string
}

type AuthCommands interface {
	Login(ctx context.Context, username, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	credentials AdminCredentials
	jwtService  *jwt.Service
}

func NewAuthCommands(credentials AdminCredentials, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		credentials: credentials,
		jwtService:  jwtService,
	}
}

func (a *authCommandsImpl) Login(_ context.Context, username, plainPassword string) (*LoginResult, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.credentials.Username)) == 1

	// Always run bcrypt so a wrong username costs the same as a wrong password.
	err := password.ComparePassword(a.credentials.PasswordHash, plainPassword)
	if err != nil && !errors.Is(err, password.ErrMismatch) && !errors.Is(err, password.ErrInvalidPassword) {
		return nil, errs.Wrap(err, "compare admin password")
	}
	if !userOK || err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(a.credentials.Username, jwt.RoleAdmin)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Username:  a.credentials.Username,
		Token:     token,
		ExpiresIn: a.jwtService.TokenDuration(),
	}, nil
}
