package repository

import (
	"context"
	"time"

	"phantom-mask/internal/domain/user"
	"phantom-mask/internal/infra"
	"phantom-mask/internal/infra/db"
	"phantom-mask/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const userColumns = `id, email, username, password_hash, last_login, created_at, updated_at`

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(s rowScanner) (*user.User, error) {
	var (
		id                    uuid.UUID
		emailStr, usernameStr string
		passwordHash          string
		lastLogin             *time.Time
		createdAt, updatedAt  time.Time
	)
	if err := s.Scan(&id, &emailStr, &usernameStr, &passwordHash, &lastLogin, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	email, err := user.NewEmail(emailStr)
	if err != nil {
		return nil, err
	}
	username, err := user.NewUsername(usernameStr)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(id, email, username, passwordHash, lastLogin, createdAt, updatedAt), nil
}

// Create fails with KindDuplicateKey when the email is taken.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID(), u.Email().Value(), u.Username().Value(), u.PasswordHash(), u.LastLogin(), u.CreatedAt(), u.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email.Value()))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return u, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login = $2, updated_at = $2 WHERE id = $1`, userID, at)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
