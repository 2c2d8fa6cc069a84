package payroll

import "github.com/shopspring/decimal"

type PayrollResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	TotalSalary   decimal.Decimal `json:"total_salary"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	ApprovedBy    *string         `json:"approved_by,omitempty"`
	ApprovedAt    *string         `json:"approved_at,omitempty"`
}

func ToResponse(p Payroll) PayrollResponse {
	var approvedAt *string
	if p.ApprovedAt != nil {
		str := p.ApprovedAt.Format("2006-01-02 15:04:05")
		approvedAt = &str
	}

	return PayrollResponse{
		ID:            p.ID,
		EmployeeID:    p.EmployeeID,
		TotalSalary:   p.TotalSalary,
		PaymentMethod: string(p.PaymentMethod),
		Status:        string(p.Status),
		ApprovedBy:    p.ApprovedBy,
		ApprovedAt:    approvedAt,
	}
}
