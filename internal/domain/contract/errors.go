package contract

import "errors"

var (
	ErrContractNotFound        = errors.New("contract not found")
	ErrContractPaymentNotFound = errors.New("contract payment not found")
	ErrPaymentAlreadyApproved  = errors.New("contract payment already approved")
)
