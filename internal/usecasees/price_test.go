package usecasees

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type tickRecorder struct {
	ticks chan float64
}

func (r *tickRecorder) OnPriceTick(closePrice float64) error {
	r.ticks <- closePrice
	return nil
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func waitTick(t *testing.T, ticks chan float64) float64 {
	select {
	case price := <-ticks:
		return price
	case <-time.After(5 * time.Second):
		t.Fatal("no tick arrived")
		return 0
	}
}

func Test_PriceFeedUseCase(t *testing.T) {
	upgrader := websocket.Upgrader{}

	t.Run("dispatches close prices and skips malformed messages", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/ethusdt@kline_1m", r.URL.Path)

			conn, err := upgrader.Upgrade(w, r, nil)
			assert.NoError(t, err)

			messages := []string{
				`{not json`,
				`{"e":"kline","E":1712000000000,"s":"ETHUSDT","k":{"c":"not-a-price"}}`,
				`{"e":"kline","E":1712000000000,"s":"ETHUSDT","k":{"c":"2900.10","x":true}}`,
			}
			for _, msg := range messages {
				assert.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(msg)))
			}

			// hold the connection until the client hangs up
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}))
		defer srv.Close()

		recorder := &tickRecorder{ticks: make(chan float64, 4)}
		useCase := NewPriceFeedUseCase(recorder, wsURL(srv), []string{"ETHUSDT"}, logrus.New())

		ctx, cancel := context.WithCancel(context.Background())
		useCase.Start(ctx)

		assert.Equal(t, 2900.10, waitTick(t, recorder.ticks))
		assert.Empty(t, recorder.ticks)

		cancel()
		useCase.Wait()
	})

	t.Run("reconnects after the stream drops", func(t *testing.T) {
		var connections int

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			conn, err := upgrader.Upgrade(w, r, nil)
			assert.NoError(t, err)

			connections++
			price := `"3100.00"`
			if connections == 1 {
				price = `"3000.00"`
			}

			assert.NoError(t, conn.WriteMessage(
				websocket.TextMessage,
				[]byte(`{"e":"kline","E":1712000000000,"s":"ETHUSDT","k":{"c":`+price+`}}`),
			))

			if connections == 1 {
				_ = conn.Close()
				return
			}

			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}))
		defer srv.Close()

		recorder := &tickRecorder{ticks: make(chan float64, 4)}
		useCase := NewPriceFeedUseCase(recorder, wsURL(srv), []string{"ETHUSDT"}, logrus.New())

		ctx, cancel := context.WithCancel(context.Background())
		useCase.Start(ctx)

		assert.Equal(t, 3000.00, waitTick(t, recorder.ticks))
		assert.Equal(t, 3100.00, waitTick(t, recorder.ticks))

		cancel()
		useCase.Wait()
	})

	t.Run("cancellation joins the listener", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			conn, err := upgrader.Upgrade(w, r, nil)
			assert.NoError(t, err)

			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}))
		defer srv.Close()

		recorder := &tickRecorder{ticks: make(chan float64, 4)}
		useCase := NewPriceFeedUseCase(recorder, wsURL(srv), []string{"ETHUSDT"}, logrus.New())

		ctx, cancel := context.WithCancel(context.Background())
		useCase.Start(ctx)

		// give the listener time to connect, then shut down
		time.Sleep(100 * time.Millisecond)
		cancel()

		done := make(chan struct{})
		go func() {
			useCase.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("listener did not stop on cancellation")
		}
	})
}
