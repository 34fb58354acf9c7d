package usecase

import (
	"restaurant-booking/internal/domain/user"
	"restaurant-booking/internal/pkg/jwt"
)

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator.go -package=usecasemock

// TokenValidator turns a bearer or cookie token into the session principal.
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

// ValidateToken only accepts access tokens. Refresh tokens are for /api/auth/refresh.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return user.Principal{}, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return user.Principal{}, jwt.ErrInvalidToken
	}
	return claims.Principal()
}
