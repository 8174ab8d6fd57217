package models

import "github.com/shopspring/decimal"

// OddsTable maps a lowercased modality code to its payout multiplier.
type OddsTable map[string]decimal.Decimal

// Multiplier returns the multiplier for a modality code, or zero when the
// code is not configured.
func (t OddsTable) Multiplier(code string) decimal.Decimal {
	if t == nil {
		return decimal.Zero
	}
	return t[code]
}
