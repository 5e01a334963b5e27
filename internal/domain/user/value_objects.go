package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrInvalidRole   = errors.New("invalid role")
	ErrEmptyPassword = errors.New("password cannot be empty")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if !emailRegex.MatchString(value) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: value}, nil
}

func (e Email) Value() string {
	return e.value
}

type Role string

const (
	// RoleCustomer places orders from the storefront.
	RoleCustomer Role = "customer"
	// RoleStaff works the orders screen but cannot change menu or offers.
	RoleStaff Role = "staff"
	// RoleAdmin manages menu, offers and merchant settings.
	RoleAdmin Role = "admin"
)

func NewRole(value string) (Role, error) {
	switch Role(value) {
	case RoleCustomer, RoleStaff, RoleAdmin:
		return Role(value), nil
	default:
		return "", ErrInvalidRole
	}
}

type Credentials struct {
	email    Email
	password string
}

func NewCredentials(email, rawPassword string) (Credentials, error) {
	e, err := NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}
	if rawPassword == "" {
		return Credentials{}, ErrEmptyPassword
	}
	return Credentials{email: e, password: rawPassword}, nil
}

func (c Credentials) Email() Email     { return c.email }
func (c Credentials) Password() string { return c.password }
