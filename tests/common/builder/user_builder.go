//go:build unit || e2e

package builder

import (
	"time"

	"phantom-mask/internal/domain/user"
	"phantom-mask/internal/pkg/password"
)

type UserBuilder struct {
	Email    string
	Username string
	Password string
	Now      time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Email:    "test@example.com",
		Username: "tester",
		Password: "password123",
		Now:      time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// BuildDomain hashes Password with bcrypt, so keep it out of tight loops.
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(u.Password)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, username, hash, u.Now), nil
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPassword(pw string) *UserBuilder {
	u.Password = pw
	return u
}
