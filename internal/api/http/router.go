package http

import (
	"recifi/internal/usecasees"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func RegisterHTTPEndpoints(
	f *fiber.App,
	trades TradeService,
	wallets WalletService,
	ticks usecasees.TickHandler,
	l *logrus.Logger,
) {
	h := NewHandler(f, trades, wallets, ticks, l)

	router := f.Group("api")
	router.Get("/healthcheck", h.HealthCheck)
	router.Post("/trade", h.SubmitTrade)
	router.Get("/trade", h.ListTrades)
	router.Patch("/trade/:id/cancel", h.CancelTrade)
	router.Post("/execute-trade", h.ExecuteTrades)
	router.Post("/wallet", h.CreateWallet)
	router.Post("/wallet/import", h.ImportWallet)
	router.Get("/wallet/:address/balance", h.WalletBalance)
	router.Get("/wallet/:address/pending", h.WalletPending)
	router.Post("/wallet/transfer", h.TransferEth)
	router.Post("/wallet/transfer-token", h.TransferToken)
	router.Post("/wallet/replace-pending", h.ReplacePending)
}
