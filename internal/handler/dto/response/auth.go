package response

import (
	"restaurant-booking/internal/domain/user"
	"restaurant-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Recovery bool      `json:"recovery,omitempty"`
}

type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	ExpiresIn    int           `json:"expires_in"`
	User         *UserResponse `json:"user"`
}

func FromPrincipal(p user.Principal) *UserResponse {
	return &UserResponse{
		ID:       p.ID,
		Email:    p.Email,
		Role:     p.Role.String(),
		Recovery: p.Recovery,
	}
}

func FromAuthorizedUserView(v *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:    v.ID,
		Email: v.Email,
		Role:  v.Role,
	}
}
