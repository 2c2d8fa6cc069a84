package income

import "errors"

var (
	ErrIncomeNotFound  = errors.New("income not found")
	ErrProjectMismatch = errors.New("income does not belong to project")
)
