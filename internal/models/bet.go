package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BetStatus is the lifecycle state of a bet. Transitions out of pending are
// terminal; the settlement engine never moves a bet twice.
type BetStatus string

const (
	BetStatusPending  BetStatus = "pendente"
	BetStatusWon      BetStatus = "premiada"
	BetStatusLost     BetStatus = "perdeu"
	BetStatusRefunded BetStatus = "reembolsado"
)

// Bet is a wager as stored in the apostas table. Guesses holds the digits or
// group numbers the bettor chose; LotteryTokens the identifiers that resolve
// to concrete drawings via the lotteries package.
type Bet struct {
	ID            string          `db:"id" json:"id"`
	UserID        string          `db:"user_id" json:"userId"`
	PlatformID    *string         `db:"platform_id" json:"platformId,omitempty"`
	DateOfPlay    string          `db:"data_jogo" json:"dateOfPlay"` // YYYY-MM-DD
	Modality      string          `db:"modalidade" json:"modality"`
	Placement     string          `db:"colocacao" json:"placement"`
	Guesses       []string        `db:"palpites" json:"guesses"`
	LotteryTokens []string        `db:"loterias" json:"lotteryTokens"`
	UnitValue     decimal.Decimal `db:"valor_unitario" json:"unitValue"`
	TotalValue    decimal.Decimal `db:"valor_total" json:"totalValue"`
	Multiplier    decimal.Decimal `db:"multiplicador" json:"multiplier"`
	Status        BetStatus       `db:"status" json:"status"`
	PrizeValue    decimal.Decimal `db:"premio_valor" json:"prizeValue"`
	CreatedAt     time.Time       `db:"created_at" json:"createdAt"`
}
