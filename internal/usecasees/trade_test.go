package usecasees

import (
	"testing"

	pgMocks "recifi/internal/repository/postgres/mocks"
	ucMocks "recifi/internal/usecasees/mocks"
	"recifi/models"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockGenTrade struct {
	tradeRepo *pgMocks.TradeRepo
	balances  *ucMocks.BalanceReader

	logger *logrus.Logger
}

func newMockGenTrade() *mockGenTrade {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	return &mockGenTrade{
		tradeRepo: &pgMocks.TradeRepo{},
		balances:  &ucMocks.BalanceReader{},
		logger:    logger,
	}
}

func (mockGen *mockGenTrade) initTradeUseCase() *tradeUseCase {
	return NewTradeUseCase(mockGen.tradeRepo, mockGen.balances, mockGen.logger)
}

func submitRequest() *SubmitTradeRequest {
	return &SubmitTradeRequest{
		TelegramUserID: 100500,
		WalletAddress:  "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		PrivateKey:     "encrypted-key",
		TradeType:      models.TradeTypeBuy,
		Quantity:       1500,
		TargetPrice:    3000,
	}
}

func Test_TradeUseCase_Submit(t *testing.T) {
	t.Run("places a funded buy order", func(t *testing.T) {
		mockGen := newMockGenTrade()
		req := submitRequest()

		mockGen.balances.On("BalancesEthUsdt", req.WalletAddress).Return(0.1, 2000.0, nil)
		mockGen.tradeRepo.On("UpsertOpenOrder", mock.MatchedBy(func(m *models.Trade) bool {
			return m.TelegramUserID == req.TelegramUserID &&
				m.TradeType == models.TradeTypeBuy &&
				m.Quantity == 1500 &&
				m.TargetPrice == 3000
		})).Return(&models.Trade{ID: "new-id", TradeType: models.TradeTypeBuy}, nil)

		trade, err := mockGen.initTradeUseCase().Submit(req)
		assert.NoError(t, err)
		assert.Equal(t, "new-id", trade.ID)

		mockGen.tradeRepo.AssertExpectations(t)
	})

	t.Run("rejects underfunded buy order", func(t *testing.T) {
		mockGen := newMockGenTrade()
		req := submitRequest()

		mockGen.balances.On("BalancesEthUsdt", req.WalletAddress).Return(0.1, 100.0, nil)

		_, err := mockGen.initTradeUseCase().Submit(req)
		assert.ErrorIs(t, err, ErrInsufficientWalletBalance)
		assert.Contains(t, err.Error(), "USDT only")

		mockGen.tradeRepo.AssertNotCalled(t, "UpsertOpenOrder", mock.Anything)
	})

	t.Run("rejects underfunded sell order", func(t *testing.T) {
		mockGen := newMockGenTrade()
		req := submitRequest()
		req.TradeType = models.TradeTypeSell
		req.Quantity = 2

		mockGen.balances.On("BalancesEthUsdt", req.WalletAddress).Return(0.5, 5000.0, nil)

		_, err := mockGen.initTradeUseCase().Submit(req)
		assert.ErrorIs(t, err, ErrInsufficientWalletBalance)
		assert.Contains(t, err.Error(), "ETH only")
	})

	t.Run("rejects malformed requests before any lookup", func(t *testing.T) {
		for name, mutate := range map[string]func(*SubmitTradeRequest){
			"bad wallet address": func(r *SubmitTradeRequest) { r.WalletAddress = "not-an-address" },
			"bad trade type":     func(r *SubmitTradeRequest) { r.TradeType = "hold" },
			"zero quantity":      func(r *SubmitTradeRequest) { r.Quantity = 0 },
			"negative target":    func(r *SubmitTradeRequest) { r.TargetPrice = -1 },
			"missing user":       func(r *SubmitTradeRequest) { r.TelegramUserID = 0 },
		} {
			t.Run(name, func(t *testing.T) {
				mockGen := newMockGenTrade()
				req := submitRequest()
				mutate(req)

				_, err := mockGen.initTradeUseCase().Submit(req)
				assert.Error(t, err)

				mockGen.balances.AssertNotCalled(t, "BalancesEthUsdt", mock.Anything)
				mockGen.tradeRepo.AssertNotCalled(t, "UpsertOpenOrder", mock.Anything)
			})
		}
	})

	t.Run("balance lookup failure surfaces", func(t *testing.T) {
		mockGen := newMockGenTrade()
		req := submitRequest()

		mockGen.balances.On("BalancesEthUsdt", req.WalletAddress).
			Return(0.0, 0.0, errors.New("node unavailable"))

		_, err := mockGen.initTradeUseCase().Submit(req)
		assert.Error(t, err)
	})
}

func Test_TradeUseCase_List(t *testing.T) {
	t.Run("rejects unknown status", func(t *testing.T) {
		mockGen := newMockGenTrade()

		_, err := mockGen.initTradeUseCase().List(100500, "done")
		assert.Error(t, err)

		mockGen.tradeRepo.AssertNotCalled(t, "GetByUserAndStatus", mock.Anything, mock.Anything)
	})

	t.Run("lists by user and status", func(t *testing.T) {
		mockGen := newMockGenTrade()

		mockGen.tradeRepo.On("GetByUserAndStatus", int64(100500), models.TradeStatusOpen).
			Return([]models.Trade{{ID: "a"}, {ID: "b"}}, nil)

		trades, err := mockGen.initTradeUseCase().List(100500, models.TradeStatusOpen)
		assert.NoError(t, err)
		assert.Len(t, trades, 2)
	})
}
