package usecasees

import (
	"recifi/internal/repository/postgres"
	"recifi/models"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var ErrInsufficientWalletBalance = errors.New("wallet balance does not cover the order quantity")

// SubmitTradeRequest is the validated order-submission payload. PrivateKey
// arrives already encrypted, the wallet store is an external collaborator.
type SubmitTradeRequest struct {
	TelegramUserID int64   `json:"telegram_user_id" validate:"required"`
	WalletAddress  string  `json:"wallet_address" validate:"required,eth_addr"`
	PrivateKey     string  `json:"private_key" validate:"required"`
	TradeType      string  `json:"trade_type" validate:"required,oneof=buy sell"`
	Quantity       float64 `json:"quantity" validate:"required,gt=0"`
	TargetPrice    float64 `json:"target_price" validate:"required,gt=0"`
}

// tradeUseCase owns order submission, cancellation and listing. Malformed
// orders are rejected here synchronously and never reach the scheduler.
type tradeUseCase struct {
	tradeRepo postgres.TradeRepo
	balances  BalanceReader

	validate *validator.Validate

	logger *logrus.Logger
}

func NewTradeUseCase(
	tradeRepo postgres.TradeRepo,
	balances BalanceReader,
	logger *logrus.Logger,
) *tradeUseCase {
	return &tradeUseCase{
		tradeRepo: tradeRepo,
		balances:  balances,
		validate:  validator.New(),
		logger:    logger,
	}
}

// Submit validates the request, checks the funding wallet and upserts the
// open order: a user keeps at most one open buy and one open sell at a time,
// re-submitting replaces quantity and target price in place.
func (u *tradeUseCase) Submit(req *SubmitTradeRequest) (*models.Trade, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, err
	}

	ethBalance, usdtBalance, err := u.balances.BalancesEthUsdt(req.WalletAddress)
	if err != nil {
		return nil, err
	}

	switch req.TradeType {
	case models.TradeTypeBuy:
		if usdtBalance < req.Quantity {
			return nil, errors.Wrapf(ErrInsufficientWalletBalance, "your wallet has %f USDT only", usdtBalance)
		}
	case models.TradeTypeSell:
		if ethBalance < req.Quantity {
			return nil, errors.Wrapf(ErrInsufficientWalletBalance, "your wallet has %f ETH only", ethBalance)
		}
	}

	trade, err := u.tradeRepo.UpsertOpenOrder(&models.Trade{
		TelegramUserID: req.TelegramUserID,
		WalletAddress:  req.WalletAddress,
		PrivateKey:     req.PrivateKey,
		TradeType:      req.TradeType,
		Quantity:       req.Quantity,
		TargetPrice:    req.TargetPrice,
	})
	if err != nil {
		return nil, err
	}

	u.logger.
		WithField("trade", trade.ID).
		WithField("type", trade.TradeType).
		Info("order placed")

	return trade, nil
}

// Cancel transitions an open order to cancelled. A cancel racing a claim may
// lose: the order is already in_process and the store reports ErrInvalidState.
func (u *tradeUseCase) Cancel(id string) error {
	if err := u.tradeRepo.Cancel(id); err != nil {
		return err
	}

	u.logger.
		WithField("trade", id).
		Info("order cancelled")

	return nil
}

func (u *tradeUseCase) List(telegramUserID int64, status string) ([]models.Trade, error) {
	switch status {
	case models.TradeStatusOpen,
		models.TradeStatusInProcess,
		models.TradeStatusClosed,
		models.TradeStatusFailed,
		models.TradeStatusCancelled:
	default:
		return nil, errors.Errorf("invalid status %q", status)
	}

	return u.tradeRepo.GetByUserAndStatus(telegramUserID, status)
}
