package account

import "errors"

var (
	ErrAccountNotFound        = errors.New("account not found")
	ErrProjectBalanceNotFound = errors.New("project balance not found")
	ErrInsufficientBalance    = errors.New("insufficient account balance")
)
