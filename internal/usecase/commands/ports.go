package commands

import (
	"context"

	"restaurant-booking/internal/domain/reservation"
	"restaurant-booking/internal/domain/user"
	"restaurant-booking/internal/pkg/jwt"
	"restaurant-booking/internal/usecase/queries"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

// LoginThrottle counts failed logins per email.
type LoginThrottle interface {
	Failures(ctx context.Context, email string) (int, error)
	RegisterFailure(ctx context.Context, email string) (int, error)
	Reset(ctx context.Context, email string) error
}

type TokenService interface {
	GenerateAccessToken(p user.Principal) (string, error)
	GenerateRefreshToken(p user.Principal) (string, error)
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

// toView renders a stored reservation the way the read side does.
func toView(res *reservation.Reservation) *queries.ReservationView {
	contact := res.Contact()
	return &queries.ReservationView{
		ID:        res.ID(),
		Date:      res.Date().String(),
		Time:      res.Slot().String(),
		PartySize: res.PartySize().Int(),
		Name:      contact.Name(),
		Email:     contact.Email(),
		Phone:     contact.Phone(),
		Status:    res.Status().String(),
		CreatedAt: res.CreatedAt(),
	}
}
