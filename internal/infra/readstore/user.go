package readstore

import (
	"context"

	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/infra/db"
	"restaurant-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	selectUserByIDSQL = `SELECT id, email, role, is_active FROM admin_users WHERE id = $1`

	selectUserByEmailSQL = `SELECT id, email, role, is_active, password_hash FROM admin_users WHERE email = $1`
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, selectUserByIDSQL, id).Scan(&view.ID, &view.Email, &view.Role, &view.IsActive)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &view, nil
}

// FindByEmail also returns the password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var view queries.AuthorizedUserView
	var hash string
	err := r.db.QueryRow(ctx, selectUserByEmailSQL, email).Scan(&view.ID, &view.Email, &view.Role, &view.IsActive, &hash)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, hash, nil
}
