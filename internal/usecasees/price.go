package usecasees

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"recifi/internal/usecasees/structs"
	"recifi/models"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	reconnectBaseDelay = time.Second
	reconnectMaxDelay  = time.Minute
)

// priceFeedUseCase holds one streaming kline connection per tracked symbol
// and feeds close prices into the scheduler. Each listener reconnects on its
// own, a dead stream never takes the scheduler or another symbol down.
type priceFeedUseCase struct {
	scheduler TickHandler

	streamURL string
	symbols   []string

	wg sync.WaitGroup

	logger *logrus.Logger
}

func NewPriceFeedUseCase(
	scheduler TickHandler,
	streamURL string,
	symbols []string,
	logger *logrus.Logger,
) *priceFeedUseCase {
	return &priceFeedUseCase{
		scheduler: scheduler,
		streamURL: streamURL,
		symbols:   symbols,
		logger:    logger,
	}
}

// Start launches one supervised listener per symbol. Listeners stop when ctx
// is cancelled; Wait joins them.
func (u *priceFeedUseCase) Start(ctx context.Context) {
	for _, symbol := range u.symbols {
		u.wg.Add(1)

		go func(symbol string) {
			defer u.wg.Done()
			u.listen(ctx, symbol)
		}(symbol)
	}
}

func (u *priceFeedUseCase) Wait() {
	u.wg.Wait()
}

func (u *priceFeedUseCase) listen(ctx context.Context, symbol string) {
	logger := u.logger.WithField("symbol", symbol)
	delay := reconnectBaseDelay

	for {
		if ctx.Err() != nil {
			return
		}

		start := time.Now()
		err := u.consume(ctx, symbol)
		if err == nil {
			return
		}

		logger.
			WithError(err).
			Error("price stream closed, reconnecting")

		// a connection that lived a while earns a fresh backoff
		if time.Since(start) > reconnectMaxDelay {
			delay = reconnectBaseDelay
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}

		delay *= 2
		if delay > reconnectMaxDelay {
			delay = reconnectMaxDelay
		}
	}
}

// consume reads one connection until it breaks or ctx is cancelled. A nil
// return means shutdown.
func (u *priceFeedUseCase) consume(ctx context.Context, symbol string) error {
	endpoint := fmt.Sprintf("%s/%s@kline_1m", u.streamURL, strings.ToLower(symbol))

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)

	// unblocks ReadMessage on shutdown
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
			_ = conn.Close()
		}
	}()

	logger := u.logger.WithField("symbol", symbol)
	logger.Info("price stream connected")

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return err
		}

		var event structs.KlineEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			logger.
				WithError(err).
				Debug("skipping malformed stream message")

			continue
		}

		closePrice, err := strconv.ParseFloat(event.Kline.Close, 64)
		if err != nil {
			logger.
				WithError(err).
				Debug("skipping message without close price")

			continue
		}

		tick := models.PriceTick{
			Symbol:     event.Symbol,
			Price:      closePrice,
			ObservedAt: time.UnixMilli(event.EventTime),
		}

		if err := u.scheduler.OnPriceTick(tick.Price); err != nil {
			logger.
				WithError(err).
				Error("tick processing failed")
		}
	}
}
