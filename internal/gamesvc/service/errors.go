package service

import "errors"

var (
	ErrNotFound           = errors.New("game not found")
	ErrInvalidChallenge   = errors.New("cannot challenge same user")
	ErrUnknownOpponent    = errors.New("invalid user")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("wrong username or password")
	ErrInvalidInput       = errors.New("invalid input")
)
