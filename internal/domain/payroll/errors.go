package payroll

import "errors"

var (
	ErrPayrollNotFound         = errors.New("payroll record not found")
	ErrPayrollAlreadyAccepted  = errors.New("payroll record already accepted")
	ErrEmployeeAccountNotFound = errors.New("employee account not found")
)
