package contract

import "context"

type ContractService interface {
	AcceptPayment(ctx context.Context, req AcceptPaymentRequest, approvedBy string) (ContractPaymentResponse, error)
}
