package usecase

import (
	"event-registration/internal/pkg/errs"
	"event-registration/internal/pkg/jwt"
)

var ErrNotAdmin = errs.New("token does not carry the admin role")

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	// ValidateToken returns the operator name carried by an admin token.
	ValidateToken(tokenString string) (string, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (string, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	if claims.Role != jwt.RoleAdmin {
		return "", ErrNotAdmin
	}

	return claims.Subject, nil
}
