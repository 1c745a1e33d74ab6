package usecasees

import (
	"recifi/models"
)

//go:generate mockery --case=snake --name=SwapExec
//go:generate mockery --case=snake --name=BalanceReader

type SwapExec interface {
	SellBaseForQuote(privateKey string, quantity, targetPrice, currentPrice float64) models.SwapResult
	BuyBaseWithQuote(privateKey string, quantity, targetPrice, currentPrice float64) models.SwapResult
}

// TickHandler consumes one close price observation.
type TickHandler interface {
	OnPriceTick(closePrice float64) error
}

// BalanceReader is the funding check used before an order is accepted.
type BalanceReader interface {
	BalancesEthUsdt(address string) (float64, float64, error)
}
