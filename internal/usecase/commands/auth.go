package commands

import (
	"context"
	"log/slog"
	"strings"

	"restaurant-booking/internal/domain/user"
	reqdto "restaurant-booking/internal/handler/dto/request"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/pkg/jwt"
	"restaurant-booking/internal/pkg/metrics"
	"restaurant-booking/internal/pkg/password"
	"restaurant-booking/internal/usecase/queries"
	"restaurant-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

var (
	ErrUserNotFound         = queries.ErrUserNotFound
	ErrInvalidCredentials   = errs.ErrInvalidCredentials
	ErrUserInactive         = queries.ErrUserInactive
	ErrTooManyAttempts      = errs.ErrTooManyAttempts
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type LoginResult struct {
	Principal user.Principal
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.UserReadStore
	tokens    TokenService
	throttle  LoginThrottle
	metrics   *metrics.Metrics
	cfg       config.AuthConfig
}

// NewAuthCommands wires login. throttle may be nil, which disables attempt counting.
func NewAuthCommands(
	uow shared.UnitOfWork,
	readStore queries.UserReadStore,
	tokens TokenService,
	throttle LoginThrottle,
	m *metrics.Metrics,
	cfg config.AuthConfig,
) AuthCommands {
	return &authCommandsImpl{
		uow:       uow,
		readStore: readStore,
		tokens:    tokens,
		throttle:  throttle,
		metrics:   m,
		cfg:       cfg,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}
	email := credentials.Email().Value()

	if err := a.checkThrottle(ctx, email); err != nil {
		return nil, err
	}

	principal, err := a.authenticate(ctx, credentials)
	if err != nil {
		a.recordFailure(ctx, email)
		return nil, err
	}

	pair, err := a.issue(principal)
	if err != nil {
		return nil, err
	}

	if a.throttle != nil {
		if err := a.throttle.Reset(ctx, email); err != nil {
			slog.Warn("failed to reset login attempts", "email", email, "error", err.Error())
		}
	}

	if !principal.Recovery {
		err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Users().UpdateLastLogin(ctx, principal.ID)
		})
		if err != nil {
			// login already succeeded
			slog.Warn("failed to update last login", "user_id", principal.ID, "error", err.Error())
		}
	}

	return &LoginResult{Principal: principal, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*LoginResult, error) {
	claims, err := a.tokens.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	principal, err := claims.Principal()
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if principal.Recovery {
		if err := a.checkRecoveryStillValid(ctx, principal); err != nil {
			return nil, err
		}
	} else {
		view, err := a.readStore.FindByID(ctx, principal.ID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !view.IsActive {
			return nil, ErrUserInactive
		}
		role, err := user.NewRole(view.Role)
		if err != nil {
			return nil, errs.Mark(err, ErrAuthenticationFailed)
		}
		// pick up role changes made since the last login
		principal.Role = role
	}

	pair, err := a.issue(principal)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Principal: principal, TokenPair: pair}, nil
}

func (a *authCommandsImpl) authenticate(ctx context.Context, credentials user.Credentials) (user.Principal, error) {
	view, hash, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same answer as a wrong password so accounts cannot be enumerated
			return user.Principal{}, ErrInvalidCredentials
		}
		if a.cfg.RecoveryEnabled() {
			slog.Warn("account store unavailable, trying recovery credential", "error", err.Error())
			return a.authenticateRecovery(credentials)
		}
		return user.Principal{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !view.IsActive {
		return user.Principal{}, ErrUserInactive
	}

	if err := password.ComparePassword(hash, credentials.Password().Value()); err != nil {
		return user.Principal{}, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return user.Principal{}, errs.Mark(err, ErrAuthenticationFailed)
	}

	return user.Principal{ID: view.ID, Email: view.Email, Role: role}, nil
}

func (a *authCommandsImpl) authenticateRecovery(credentials user.Credentials) (user.Principal, error) {
	email := credentials.Email().Value()
	if !strings.EqualFold(email, strings.TrimSpace(a.cfg.RecoveryEmail)) {
		return user.Principal{}, ErrInvalidCredentials
	}
	if err := password.ComparePassword(a.cfg.RecoveryPasswordHash, credentials.Password().Value()); err != nil {
		return user.Principal{}, ErrInvalidCredentials
	}

	slog.Warn("recovery credential used", "email", email)
	return user.Principal{
		ID:       RecoveryPrincipalID(email),
		Email:    email,
		Role:     user.RoleAdmin,
		Recovery: true,
	}, nil
}

// checkRecoveryStillValid ends a recovery session once the credential is removed or
// changed, or once the account store answers again.
func (a *authCommandsImpl) checkRecoveryStillValid(ctx context.Context, p user.Principal) error {
	if !a.cfg.RecoveryEnabled() || !strings.EqualFold(p.Email, strings.TrimSpace(a.cfg.RecoveryEmail)) {
		return ErrTokenValidation
	}
	_, _, err := a.readStore.FindByEmail(ctx, p.Email)
	if err == nil || infra.IsKind(err, infra.KindNotFound) {
		slog.Info("account store reachable again, recovery session ended", "email", p.Email)
		return ErrTokenValidation
	}
	return nil
}

// RecoveryPrincipalID is stable per recovery email so logs stay correlatable.
func RecoveryPrincipalID(email string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("recovery:"+strings.ToLower(email)))
}

func (a *authCommandsImpl) checkThrottle(ctx context.Context, email string) error {
	if a.throttle == nil || a.cfg.LoginMaxAttempts <= 0 {
		return nil
	}
	failures, err := a.throttle.Failures(ctx, email)
	if err != nil {
		// the throttle is advisory; an unreachable counter does not block logins
		slog.Warn("failed to read login attempts", "email", email, "error", err.Error())
		return nil
	}
	if failures >= a.cfg.LoginMaxAttempts {
		return ErrTooManyAttempts
	}
	return nil
}

func (a *authCommandsImpl) recordFailure(ctx context.Context, email string) {
	a.metrics.LoginFailed()
	if a.throttle == nil {
		return
	}
	if _, err := a.throttle.RegisterFailure(ctx, email); err != nil {
		slog.Warn("failed to register login failure", "email", email, "error", err.Error())
	}
}

func (a *authCommandsImpl) issue(p user.Principal) (*TokenPair, error) {
	accessToken, err := a.tokens.GenerateAccessToken(p)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.tokens.GenerateRefreshToken(p)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
