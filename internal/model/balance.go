package model

import "github.com/shopspring/decimal"

// AccountBalance holds token amounts of an account scaled by the chain decimals.
// Reserved funds are what the dashboard reports as stake.
type AccountBalance struct {
	Account  AccountID
	Free     decimal.Decimal
	Reserved decimal.Decimal
	Frozen   decimal.Decimal
}
