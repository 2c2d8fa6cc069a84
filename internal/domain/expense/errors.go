package expense

import "errors"

var (
	ErrExpenseNotFound        = errors.New("expense not found")
	ErrExpensePaymentNotFound = errors.New("expense payment not found")
	ErrExpenseAlreadyPaid     = errors.New("expense already fully paid")
	ErrProjectMismatch        = errors.New("expense does not belong to project")
)
