package http

import (
	"database/sql"

	"recifi/internal/repository/postgres"
	"recifi/internal/usecasees"
	"recifi/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// TradeService is the order surface the HTTP handlers call into.
type TradeService interface {
	Submit(req *usecasees.SubmitTradeRequest) (*models.Trade, error)
	Cancel(id string) error
	List(telegramUserID int64, status string) ([]models.Trade, error)
}

// WalletService manages funding wallets: keys are returned and accepted in
// their encrypted form only.
type WalletService interface {
	CreateWallet() (string, string, error)
	ImportWallet(privateKey string) (string, string, error)
	BalancesEthUsdt(address string) (float64, float64, error)
	TransferEth(encryptedKey, receiver string, amount float64) (string, error)
	TransferToken(encryptedKey, receiver, token string, amount float64) (string, error)
	HasPendingTransactions(address string) (bool, error)
	ReplacePendingTransaction(encryptedKey string, gasPriceGwei int64) (string, error)
}

type Handler struct {
	fiber   *fiber.App
	trades  TradeService
	wallets WalletService
	ticks   usecasees.TickHandler
	logger  *logrus.Logger
}

func NewHandler(
	f *fiber.App,
	trades TradeService,
	wallets WalletService,
	ticks usecasees.TickHandler,
	l *logrus.Logger,
) *Handler {
	return &Handler{
		fiber:   f,
		trades:  trades,
		wallets: wallets,
		ticks:   ticks,
		logger:  l,
	}
}

func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	body := struct {
		Status bool `json:"status"`
	}{
		Status: true,
	}

	if err := c.JSON(body); err != nil {
		return err
	}

	return nil
}

func (h *Handler) SubmitTrade(c *fiber.Ctx) error {
	var req usecasees.SubmitTradeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	trade, err := h.trades.Submit(&req)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(trade)
}

func (h *Handler) ListTrades(c *fiber.Ctx) error {
	telegramUserID := c.QueryInt("telegram_user_id")
	if telegramUserID == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "telegram_user_id is required")
	}

	trades, err := h.trades.List(int64(telegramUserID), c.Query("status"))
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(trades)
}

func (h *Handler) CancelTrade(c *fiber.Ctx) error {
	if err := h.trades.Cancel(c.Params("id")); err != nil {
		return h.mapError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ExecuteTrades runs one scheduler pass against a supplied close price,
// same path the live feed drives.
func (h *Handler) ExecuteTrades(c *fiber.Ctx) error {
	var req struct {
		ClosePrice float64 `json:"close_price"`
	}

	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if req.ClosePrice <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "close_price must be positive")
	}

	if err := h.ticks.OnPriceTick(req.ClosePrice); err != nil {
		return h.mapError(c, err)
	}

	return c.SendStatus(fiber.StatusAccepted)
}

func (h *Handler) CreateWallet(c *fiber.Ctx) error {
	address, encryptedKey, err := h.wallets.CreateWallet()
	if err != nil {
		return h.mapError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"address":       address,
		"encrypted_key": encryptedKey,
	})
}

func (h *Handler) ImportWallet(c *fiber.Ctx) error {
	var req struct {
		PrivateKey string `json:"private_key"`
	}

	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	address, encryptedKey, err := h.wallets.ImportWallet(req.PrivateKey)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"address":       address,
		"encrypted_key": encryptedKey,
	})
}

func (h *Handler) WalletBalance(c *fiber.Ctx) error {
	eth, usdt, err := h.wallets.BalancesEthUsdt(c.Params("address"))
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(fiber.Map{
		"eth":  eth,
		"usdt": usdt,
	})
}

func (h *Handler) TransferEth(c *fiber.Ctx) error {
	var req struct {
		EncryptedKey string  `json:"encrypted_key"`
		Receiver     string  `json:"receiver"`
		Amount       float64 `json:"amount"`
	}

	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if req.Amount <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "amount must be positive")
	}

	txHash, err := h.wallets.TransferEth(req.EncryptedKey, req.Receiver, req.Amount)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(fiber.Map{"tx_hash": txHash})
}

func (h *Handler) TransferToken(c *fiber.Ctx) error {
	var req struct {
		EncryptedKey string  `json:"encrypted_key"`
		Receiver     string  `json:"receiver"`
		Token        string  `json:"token"`
		Amount       float64 `json:"amount"`
	}

	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if req.Amount <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "amount must be positive")
	}

	txHash, err := h.wallets.TransferToken(req.EncryptedKey, req.Receiver, req.Token, req.Amount)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(fiber.Map{"tx_hash": txHash})
}

func (h *Handler) WalletPending(c *fiber.Ctx) error {
	pending, err := h.wallets.HasPendingTransactions(c.Params("address"))
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(fiber.Map{"pending": pending})
}

func (h *Handler) ReplacePending(c *fiber.Ctx) error {
	var req struct {
		EncryptedKey string `json:"encrypted_key"`
		GasPriceGwei int64  `json:"gas_price_gwei"`
	}

	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if req.GasPriceGwei <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "gas_price_gwei must be positive")
	}

	txHash, err := h.wallets.ReplacePendingTransaction(req.EncryptedKey, req.GasPriceGwei)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(fiber.Map{"tx_hash": txHash})
}

func (h *Handler) mapError(c *fiber.Ctx, err error) error {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &validationErrs),
		errors.Is(err, usecasees.ErrInsufficientWalletBalance),
		errors.Is(err, usecasees.ErrInsufficientFunds),
		errors.Is(err, usecasees.ErrInsufficientTokenFunds):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, postgres.ErrInvalidState),
		errors.Is(err, postgres.ErrConflict):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, sql.ErrNoRows):
		return fiber.NewError(fiber.StatusNotFound, "trade not found")
	default:
		h.logger.
			WithError(err).
			Error("http handler")

		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
}
