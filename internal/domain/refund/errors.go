package refund

import "errors"

var (
	ErrRefundNotFound  = errors.New("refund not found")
	ErrProjectMismatch = errors.New("refund does not belong to project")
	// ErrLedgerIncomplete means the refund row exists but an aggregate it must
	// reverse against (account, project balance, fee rate) is gone. That is an
	// inconsistent ledger, not a simple missing row, and needs reconciliation.
	ErrLedgerIncomplete = errors.New("ledger rows for refund reversal are incomplete")
)
