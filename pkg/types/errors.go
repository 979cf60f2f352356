package types

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrApplicationNotFound = errors.New("loan application not found")
)
