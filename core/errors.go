package core

import "errors"

var (
	ErrInvalidArgs  = errors.New("invalid arguments")
	ErrNotFound     = errors.New("not found")
	ErrEmailTaken   = errors.New("user already exists")
	ErrUnauthorized = errors.New("invalid credentials")
	ErrUnavailable  = errors.New("dependency unavailable")
)
