package percentage

import "errors"

var (
	// ErrNoActiveFeeRate is reported distinctly from other missing rows so the
	// caller knows fee-rate provisioning, not the payment itself, is the problem.
	ErrNoActiveFeeRate = errors.New("no active fee rate for project")
	ErrAmbiguousRate   = errors.New("more than one active fee rate for project")
	ErrFeeLogNotFound  = errors.New("fee log not found")
)
