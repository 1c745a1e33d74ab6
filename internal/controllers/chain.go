package controllers

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/sirupsen/logrus"
)

const defaultChainCallTimeout = 15 * time.Second

// ChainController wraps the Ethereum JSON-RPC client. Every call is bounded
// by a timeout so a stalled RPC endpoint surfaces as an error, not a hang.
type ChainController struct {
	client  *ethclient.Client
	timeout time.Duration
	logger  *logrus.Logger

	chainIDMu sync.Mutex
	chainID   *big.Int
}

func NewChainController(
	client *ethclient.Client,
	logger *logrus.Logger,
) *ChainController {
	return &ChainController{
		client:  client,
		timeout: defaultChainCallTimeout,
		logger:  logger,
	}
}

func (c *ChainController) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), c.timeout)
}

func (c *ChainController) BalanceAt(address common.Address) (*big.Int, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	return c.client.BalanceAt(ctx, address, nil)
}

func (c *ChainController) PendingNonceAt(address common.Address) (uint64, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	return c.client.PendingNonceAt(ctx, address)
}

func (c *ChainController) NonceAt(address common.Address) (uint64, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	return c.client.NonceAt(ctx, address, nil)
}

func (c *ChainController) SuggestGasPrice() (*big.Int, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	return c.client.SuggestGasPrice(ctx)
}

// ChainID caches the id after the first successful fetch. Swap signing and
// wallet transfers call this from concurrent listeners, so the cache is
// guarded; a failed fetch leaves it empty for the next caller to retry.
func (c *ChainController) ChainID() (*big.Int, error) {
	c.chainIDMu.Lock()
	defer c.chainIDMu.Unlock()

	if c.chainID != nil {
		return c.chainID, nil
	}

	ctx, cancel := c.ctx()
	defer cancel()

	id, err := c.client.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	c.chainID = id

	return id, nil
}

// LatestBlockTime returns the timestamp of the newest block, used for swap
// deadlines.
func (c *ChainController) LatestBlockTime() (uint64, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	header, err := c.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, err
	}

	return header.Time, nil
}

func (c *ChainController) CallContract(to common.Address, data []byte) ([]byte, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	return c.client.CallContract(ctx, ethereum.CallMsg{
		To:   &to,
		Data: data,
	}, nil)
}

func (c *ChainController) SendTransaction(tx *types.Transaction) error {
	ctx, cancel := c.ctx()
	defer cancel()

	if err := c.client.SendTransaction(ctx, tx); err != nil {
		return err
	}

	c.logger.
		WithField("tx", tx.Hash().Hex()).
		WithField("nonce", tx.Nonce()).
		Debug("transaction submitted")

	return nil
}
