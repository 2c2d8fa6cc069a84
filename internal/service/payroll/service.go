package payroll

import (
	"context"
	"time"

	"github.com/emaar-erp/erp-backend-go/internal/domain/account"
	"github.com/emaar-erp/erp-backend-go/internal/domain/payroll"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/database"
	"github.com/emaar-erp/erp-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type PayrollServiceImpl struct {
	db             *database.DB
	payrollRepo    payroll.PayrollRepository
	empAccountRepo payroll.EmployeeAccountRepository
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	empAccountRepo payroll.EmployeeAccountRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:             db,
		payrollRepo:    payrollRepo,
		empAccountRepo: empAccountRepo,
	}
}

// Accept approves a pending payroll record and deducts the salary from the
// employee's cash or bank balance, whichever the payment method settles
// against. Payroll never touches the company percentage. Re-accepting an
// accepted record is a conflict, never a second deduction.
func (s *PayrollServiceImpl) Accept(ctx context.Context, payrollID, approvedBy string) (payroll.PayrollResponse, error) {
	var accepted payroll.Payroll
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		p, err := s.payrollRepo.GetByID(txCtx, payrollID)
		if err != nil {
			return err
		}
		if p.Status != payroll.StatusPending {
			return payroll.ErrPayrollAlreadyAccepted
		}

		ea, err := s.empAccountRepo.GetByEmployee(txCtx, p.EmployeeID)
		if err != nil {
			return err
		}

		now := time.Now()
		if err := s.payrollRepo.Accept(txCtx, p.ID, approvedBy, now); err != nil {
			return err
		}

		accType := account.TypeForMethod(p.PaymentMethod)
		if err := s.empAccountRepo.Deduct(txCtx, ea.ID, accType, p.TotalSalary); err != nil {
			return err
		}

		accepted = p
		accepted.Status = payroll.StatusAccepted
		accepted.ApprovedBy = &approvedBy
		accepted.ApprovedAt = &now
		return nil
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return payroll.ToResponse(accepted), nil
}

func (s *PayrollServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PayrollResponse, error) {
	records, err := s.payrollRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PayrollResponse, 0, len(records))
	for _, p := range records {
		result = append(result, payroll.ToResponse(p))
	}
	return result, nil
}
