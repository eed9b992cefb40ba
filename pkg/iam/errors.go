package iam

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound is returned when a user id or username does not resolve to a user
	ErrUserNotFound = errors.New("user not found")
)

// ErrInvalidUser is returned when user fields fail validation
type ErrInvalidUser struct {
	Reason string
}

func (e ErrInvalidUser) Error() string {
	return fmt.Sprintf("invalid user: %s", e.Reason)
}

// ErrUsernameAlreadyExists is returned when creating or updating a user with a taken username
type ErrUsernameAlreadyExists struct {
	Username string
}

func (e ErrUsernameAlreadyExists) Error() string {
	return fmt.Sprintf("username already exists: %s", e.Username)
}

// ErrEmailAlreadyExists is returned when creating or updating a user with a taken email
type ErrEmailAlreadyExists struct {
	Email string
}

func (e ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already exists: %s", e.Email)
}
