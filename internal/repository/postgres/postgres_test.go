package postgres_test

import (
	"os"
	"sync"
	"testing"

	"recifi/internal/repository/postgres"
	"recifi/models"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	_ "github.com/lib/pq"
)

func initPGTest(t *testing.T) *sqlx.DB {
	dsn := os.Getenv("PG_TEST_DSN")
	if dsn == "" {
		t.Skip("PG_TEST_DSN is not set")
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		t.Fatal(err)
	}

	return db
}

func newTrade(tradeType string) *models.Trade {
	return &models.Trade{
		TelegramUserID: 100500,
		WalletAddress:  "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		PrivateKey:     "encrypted-key",
		TradeType:      tradeType,
		Quantity:       0.5,
		TargetPrice:    3000,
	}
}

func Test_TradeStore(t *testing.T) {
	conn := initPGTest(t)
	pgStore := postgres.NewTradeRepository(conn)

	defer func() {
		_, _ = conn.Exec("DELETE FROM trades WHERE telegram_user_id = 100500;")
	}()

	var tradeID string

	t.Run("Upsert creates an open order", func(t *testing.T) {
		trade, err := pgStore.UpsertOpenOrder(newTrade(models.TradeTypeBuy))
		assert.NoError(t, err)
		assert.NotEmpty(t, trade.ID)
		assert.Equal(t, models.TradeStatusOpen, trade.Status)

		tradeID = trade.ID
	})

	t.Run("Upsert replaces the open order in place", func(t *testing.T) {
		replacement := newTrade(models.TradeTypeBuy)
		replacement.Quantity = 1.5
		replacement.TargetPrice = 2500

		trade, err := pgStore.UpsertOpenOrder(replacement)
		assert.NoError(t, err)
		assert.Equal(t, tradeID, trade.ID)
		assert.Equal(t, 1.5, trade.Quantity)
		assert.Equal(t, 2500.0, trade.TargetPrice)
	})

	t.Run("Claim moves open orders to in_process", func(t *testing.T) {
		claimed, err := pgStore.ClaimOpenOrders()
		assert.NoError(t, err)
		assert.NotEmpty(t, claimed)

		trade, err := pgStore.GetByID(tradeID)
		assert.NoError(t, err)
		assert.Equal(t, models.TradeStatusInProcess, trade.Status)
	})

	t.Run("Second claim sees nothing", func(t *testing.T) {
		claimed, err := pgStore.ClaimOpenOrders()
		assert.NoError(t, err)
		assert.Empty(t, claimed)
	})

	t.Run("Cancel refuses a claimed order", func(t *testing.T) {
		assert.ErrorIs(t, pgStore.Cancel(tradeID), postgres.ErrInvalidState)
	})

	t.Run("Resolve reopens a claimed order", func(t *testing.T) {
		assert.NoError(t, pgStore.Resolve(tradeID, models.TradeStatusOpen))

		trade, err := pgStore.GetByID(tradeID)
		assert.NoError(t, err)
		assert.Equal(t, models.TradeStatusOpen, trade.Status)
		assert.Equal(t, 1.5, trade.Quantity)
	})

	t.Run("Resolve refuses an unclaimed order", func(t *testing.T) {
		assert.ErrorIs(t, pgStore.Resolve(tradeID, models.TradeStatusClosed), postgres.ErrConflict)
	})

	t.Run("Cancel closes an open order", func(t *testing.T) {
		assert.NoError(t, pgStore.Cancel(tradeID))

		trade, err := pgStore.GetByID(tradeID)
		assert.NoError(t, err)
		assert.Equal(t, models.TradeStatusCancelled, trade.Status)
	})

	t.Run("Stat counts every status", func(t *testing.T) {
		stat, err := pgStore.Stat()
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, stat[models.TradeStatusCancelled], 1)
	})
}

func Test_TradeStore_ConcurrentClaim(t *testing.T) {
	conn := initPGTest(t)
	pgStore := postgres.NewTradeRepository(conn)

	defer func() {
		_, _ = conn.Exec("DELETE FROM trades WHERE telegram_user_id BETWEEN 200500 AND 200505;")
	}()

	seeded := make(map[string]bool)

	for userID := int64(200500); userID <= 200505; userID++ {
		trade := newTrade(models.TradeTypeBuy)
		trade.TelegramUserID = userID

		stored, err := pgStore.UpsertOpenOrder(trade)
		assert.NoError(t, err)

		seeded[stored.ID] = true
	}

	const claimers = 4

	var (
		wg      sync.WaitGroup
		results = make([][]models.Trade, claimers)
	)

	for i := 0; i < claimers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			claimed, err := pgStore.ClaimOpenOrders()
			assert.NoError(t, err)
			results[i] = claimed
		}(i)
	}
	wg.Wait()

	claimedOnce := make(map[string]int)
	for _, claimed := range results {
		for _, trade := range claimed {
			claimedOnce[trade.ID]++
			assert.Equal(t, models.TradeStatusInProcess, trade.Status)
		}
	}

	for id := range seeded {
		assert.Equal(t, 1, claimedOnce[id], "trade %s must be claimed exactly once", id)
	}
	for id, n := range claimedOnce {
		assert.Equal(t, 1, n, "trade %s claimed by more than one caller", id)
	}
}

func Test_TradeStore_ConcurrentUpsert(t *testing.T) {
	conn := initPGTest(t)
	pgStore := postgres.NewTradeRepository(conn)

	defer func() {
		_, _ = conn.Exec("DELETE FROM trades WHERE telegram_user_id = 300500;")
	}()

	const writers = 4

	var wg sync.WaitGroup

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			trade := newTrade(models.TradeTypeBuy)
			trade.TelegramUserID = 300500

			if _, err := pgStore.UpsertOpenOrder(trade); err != nil {
				assert.ErrorIs(t, err, postgres.ErrConflict)
			}
		}()
	}
	wg.Wait()

	open, err := pgStore.GetByUserAndStatus(300500, models.TradeStatusOpen)
	assert.NoError(t, err)
	assert.Len(t, open, 1)
}
