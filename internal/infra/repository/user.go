package repository

import (
	"context"

	"restaurant-booking/internal/domain/user"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/infra/db"

	"github.com/google/uuid"
)

const (
	insertUserSQL = `
INSERT INTO admin_users (id, email, password_hash, role, is_active)
VALUES ($1, $2, $3, $4, $5)`

	updateUserLastLoginSQL = `
UPDATE admin_users
SET last_login = now(), updated_at = now()
WHERE id = $1`
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, insertUserSQL,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Role().String(), u.IsActive(),
	)
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return infra.WrapRepoErr("user already exists", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.db.Exec(ctx, updateUserLastLoginSQL, userID); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
