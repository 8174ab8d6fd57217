package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a monetary effect on a user wallet.
type TransactionType string

const (
	TransactionTypePrize  TransactionType = "prize"
	TransactionTypeRefund TransactionType = "refund"
)

// Transaction is an audit row written after a ledger credit. It is not
// atomic with the ledger entry itself; the fn_change_balance RPC owns the
// money, this row exists for back-office reporting.
type Transaction struct {
	ID         string          `db:"id" json:"id"`
	UserID     string          `db:"user_id" json:"userId"`
	PlatformID *string         `db:"platform_id" json:"platformId,omitempty"`
	Type       TransactionType `db:"tipo" json:"type"`
	Amount     decimal.Decimal `db:"amount" json:"amount"`
	Status     string          `db:"status" json:"status"`
	ExternalID string          `db:"external_id" json:"externalId"`
	Metadata   map[string]any  `db:"-" json:"metadata,omitempty"`
	CreatedAt  time.Time       `db:"created_at" json:"createdAt"`
}

// BalanceChange is the result of the atomic fn_change_balance RPC.
type BalanceChange struct {
	BalanceAfter decimal.Decimal `json:"balance_after"`
	Error        string          `json:"error,omitempty"`
}
