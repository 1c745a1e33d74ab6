package postgres

import (
	"recifi/models"
)

//go:generate mockery --case=snake --name=TradeRepo

type TradeRepo interface {
	ClaimOpenOrders() ([]models.Trade, error)
	Resolve(id string, status string) error
	UpsertOpenOrder(m *models.Trade) (*models.Trade, error)
	Cancel(id string) error
	GetByID(id string) (*models.Trade, error)
	GetByUserAndStatus(telegramUserID int64, status string) ([]models.Trade, error)
	Stat() (map[string]int, error)
}
