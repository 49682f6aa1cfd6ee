package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")

	ErrPasswordTooLong = fmt.Errorf("%w: password exceeds 72 bytes", ErrValidation)

	// ErrUnauthorized is the parent of every authentication failure.
	ErrUnauthorized    = errors.New("unauthorized")
	ErrUserNotFound    = fmt.Errorf("%w: user not found", ErrUnauthorized)
	ErrInvalidPassword = fmt.Errorf("%w: invalid password", ErrUnauthorized)
	ErrInvalidToken    = fmt.Errorf("%w: invalid token", ErrUnauthorized)
	ErrTokenExpired    = fmt.Errorf("%w: token expired", ErrInvalidToken)
)
