package usecasees

import (
	"fmt"
	"runtime/debug"

	"recifi/internal/controllers"
	"recifi/internal/repository/postgres"
	"recifi/internal/usecasees/structs"
	"recifi/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Metrics is the counter set the scheduler reports into. Missing counters
// are skipped, tests run with an empty map.
type Metrics map[structs.MetricConst]prometheus.Counter

func (m Metrics) Inc(name structs.MetricConst) {
	if counter, ok := m[name]; ok {
		counter.Inc()
	}
}

// schedulerUseCase reacts to price ticks: it claims every open trade,
// decides fill/no-fill per trade and resolves each one to open, closed or
// failed. The claim is the only mutual exclusion point, concurrent ticks
// partition the open set at the store and never see each other's trades.
type schedulerUseCase struct {
	swapUseCase      SwapExec
	cryptoController controllers.CryptoCtrl
	tgmController    controllers.TgmCtrl

	tradeRepo postgres.TradeRepo

	metrics Metrics

	txHashURL string

	logger *logrus.Logger
}

func NewSchedulerUseCase(
	swapUseCase SwapExec,
	cryptoController controllers.CryptoCtrl,
	tgmController controllers.TgmCtrl,
	tradeRepo postgres.TradeRepo,
	metrics Metrics,
	txHashURL string,
	logger *logrus.Logger,
) *schedulerUseCase {
	return &schedulerUseCase{
		swapUseCase:      swapUseCase,
		cryptoController: cryptoController,
		tgmController:    tgmController,
		tradeRepo:        tradeRepo,
		metrics:          metrics,
		txHashURL:        txHashURL,
		logger:           logger,
	}
}

// OnPriceTick runs one scheduling pass. Every claimed trade is processed in
// this pass, a failure on one trade never aborts the others.
func (u *schedulerUseCase) OnPriceTick(closePrice float64) error {
	u.metrics.Inc(structs.MetricPriceTicks)

	trades, err := u.tradeRepo.ClaimOpenOrders()
	if err != nil {
		return err
	}

	if len(trades) == 0 {
		return nil
	}

	for i := range trades {
		u.processClaimed(&trades[i], closePrice)
	}

	return nil
}

func (u *schedulerUseCase) processClaimed(trade *models.Trade, closePrice float64) {
	logger := u.logger.
		WithField("trade", trade.ID).
		WithField("type", trade.TradeType).
		WithField("closePrice", closePrice)

	var result models.SwapResult

	switch {
	case trade.TradeType == models.TradeTypeBuy && trade.TargetPrice >= closePrice:
		logger.Info("buying ETH with USDT")
		result = u.execute(trade, closePrice, u.swapUseCase.BuyBaseWithQuote)
	case trade.TradeType == models.TradeTypeSell && trade.TargetPrice <= closePrice:
		logger.Info("selling ETH for USDT")
		result = u.execute(trade, closePrice, u.swapUseCase.SellBaseForQuote)
	default:
		// condition not met, back to open with quantity and target untouched
		if err := u.tradeRepo.Resolve(trade.ID, models.TradeStatusOpen); err != nil {
			logger.
				WithError(err).
				Error(string(debug.Stack()))
		}

		u.metrics.Inc(structs.MetricTradeReopened)

		return
	}

	if result.Success {
		u.resolveClosed(trade, result, closePrice, logger)
	} else {
		u.resolveFailed(trade, result, logger)
	}
}

type swapFunc func(privateKey string, quantity, targetPrice, currentPrice float64) models.SwapResult

// execute decrypts the funding wallet credential just-in-time and runs the
// swap. The decrypted key never leaves this frame.
func (u *schedulerUseCase) execute(trade *models.Trade, closePrice float64, swap swapFunc) models.SwapResult {
	privateKey, err := u.cryptoController.Decrypt(trade.PrivateKey)
	if err != nil {
		return models.SwapResult{
			Success:     false,
			ErrorDetail: fmt.Sprintf("wallet credential unavailable: %s", err),
		}
	}

	return swap(privateKey, trade.Quantity, trade.TargetPrice, closePrice)
}

func (u *schedulerUseCase) resolveClosed(trade *models.Trade, result models.SwapResult, closePrice float64, logger *logrus.Entry) {
	if err := u.tradeRepo.Resolve(trade.ID, models.TradeStatusClosed); err != nil {
		logger.
			WithError(err).
			Error("resolve closed")

		return
	}

	u.metrics.Inc(structs.MetricTradeClosed)

	var msg string
	switch trade.TradeType {
	case models.TradeTypeSell:
		msg = fmt.Sprintf(
			"Hey user 👋, your transaction has been executed ✅. You can track status "+
				"of the transaction here on Etherscan 🔗%s%s\n"+
				"%f ETH sold successfully at %f price.🕵️‍♂️",
			u.txHashURL, result.TxHash, trade.Quantity, closePrice,
		)
	case models.TradeTypeBuy:
		msg = fmt.Sprintf(
			"Hey user 👋, your transaction has been executed ✅. You can track status "+
				"of the transaction here on Etherscan 🔗%s%s\n"+
				"ETH bought successfully using %f USDT at %f price.",
			u.txHashURL, result.TxHash, trade.Quantity, closePrice,
		)
	}

	if err := u.tgmController.SendTo(trade.TelegramUserID, msg); err != nil {
		logger.
			WithError(err).
			Debug("send success notification")
	}

	logger.
		WithField("tx", result.TxHash).
		Info("trade executed successfully")
}

func (u *schedulerUseCase) resolveFailed(trade *models.Trade, result models.SwapResult, logger *logrus.Entry) {
	if err := u.tradeRepo.Resolve(trade.ID, models.TradeStatusFailed); err != nil {
		logger.
			WithError(err).
			Error("resolve failed")

		return
	}

	u.metrics.Inc(structs.MetricTradeFailed)

	msg := fmt.Sprintf(
		"Hey user, your trade could not be executed ❌.\nReason: %s",
		result.ErrorDetail,
	)

	if err := u.tgmController.SendTo(trade.TelegramUserID, msg); err != nil {
		logger.
			WithError(err).
			Debug("send failure notification")
	}

	logger.
		WithField("reason", result.ErrorDetail).
		Info("trade execution failed")
}
