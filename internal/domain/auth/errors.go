package auth

import "errors"

var (
	ErrInvalidToken = errors.New("invalid or missing access token")
	ErrMissingUser  = errors.New("user_id claim is missing or invalid")
)
