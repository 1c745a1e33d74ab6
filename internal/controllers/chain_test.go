package controllers_test

import (
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"recifi/internal/controllers"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type rpcRequest struct {
	ID     json.RawMessage `json:"id"`
	Method string          `json:"method"`
}

func Test_ChainController_ChainID(t *testing.T) {
	t.Run("concurrent callers share one fetch", func(t *testing.T) {
		var fetches int64

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req rpcRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "eth_chainId", req.Method)

			atomic.AddInt64(&fetches, 1)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":` + string(req.ID) + `,"result":"0x1"}`))
		}))
		defer srv.Close()

		client, err := ethclient.Dial(srv.URL)
		assert.NoError(t, err)
		defer client.Close()

		c := controllers.NewChainController(client, logrus.New())

		var wg sync.WaitGroup
		ids := make([]*big.Int, 8)

		for i := range ids {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()

				id, err := c.ChainID()
				assert.NoError(t, err)
				ids[i] = id
			}(i)
		}
		wg.Wait()

		for _, id := range ids {
			assert.Equal(t, int64(1), id.Int64())
		}
		assert.Equal(t, int64(1), atomic.LoadInt64(&fetches))
	})
}
