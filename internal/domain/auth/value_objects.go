package auth

import (
	"phantom-mask/internal/domain/user"
)

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() user.Password {
	return c.password
}

// Registration is what a new account needs before the password is hashed.
type Registration struct {
	Credentials
	username user.Username
}

func NewRegistration(emailStr, usernameStr, passwordStr string) (Registration, error) {
	creds, err := NewCredentials(emailStr, passwordStr)
	if err != nil {
		return Registration{}, err
	}

	username, err := user.NewUsername(usernameStr)
	if err != nil {
		return Registration{}, err
	}

	return Registration{Credentials: creds, username: username}, nil
}

func (r Registration) Username() user.Username {
	return r.username
}
