package models

import "time"

const (
	TradeTypeBuy  = "buy"
	TradeTypeSell = "sell"
)

const (
	TradeStatusOpen      = "open"
	TradeStatusInProcess = "in_process"
	TradeStatusClosed    = "closed"
	TradeStatusFailed    = "failed"
	TradeStatusCancelled = "cancelled"
)

// Trade is a user intent to buy or sell a fixed quantity of the base asset
// once the target price condition is met. PrivateKey is stored encrypted and
// is only decrypted for the duration of one execution attempt.
type Trade struct {
	ID             string    `db:"id" json:"id"`
	TelegramUserID int64     `db:"telegram_user_id" json:"telegram_user_id"`
	WalletAddress  string    `db:"wallet_address" json:"wallet_address"`
	PrivateKey     string    `db:"private_key" json:"-"`
	TradeType      string    `db:"trade_type" json:"trade_type"`
	Quantity       float64   `db:"quantity" json:"quantity"`
	TargetPrice    float64   `db:"target_price" json:"target_price"`
	Status         string    `db:"status" json:"status"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

func (t *Trade) IsTerminal() bool {
	switch t.Status {
	case TradeStatusClosed, TradeStatusFailed, TradeStatusCancelled:
		return true
	}

	return false
}
