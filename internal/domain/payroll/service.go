package payroll

import "context"

type PayrollService interface {
	Accept(ctx context.Context, payrollID, approvedBy string) (PayrollResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]PayrollResponse, error)
}
