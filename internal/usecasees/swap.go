package usecasees

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"recifi/internal/controllers"
	"recifi/models"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	swapGasLimit     = 250000
	approveGasLimit  = 100000
	transferGasLimit = 21000

	// seconds added to the latest block timestamp
	swapDeadlineSlack = 3600

	// percent of the traded amount skimmed to the fee wallet
	feeSkimPercent = 1

	weiDecimals = 18
)

const (
	msgInsufficientGasFunds   = "Insufficient funds. Please ensure you have enough ETH to cover the transaction amount and gas fees."
	msgReplacementUnderpriced = "Replacement transaction underpriced. Kindly try again after some time."
)

var (
	ErrInsufficientFunds      = errors.New("insufficient balance to cover the transaction amount")
	ErrInsufficientTokenFunds = errors.New("insufficient token balance to cover the transaction amount")
)

const routerABIJSON = `[
	{"name":"swapExactETHForTokens","type":"function","stateMutability":"payable","inputs":[{"name":"amountOutMin","type":"uint256"},{"name":"path","type":"address[]"},{"name":"to","type":"address"},{"name":"deadline","type":"uint256"}],"outputs":[{"name":"amounts","type":"uint256[]"}]},
	{"name":"swapExactTokensForETH","type":"function","stateMutability":"nonpayable","inputs":[{"name":"amountIn","type":"uint256"},{"name":"amountOutMin","type":"uint256"},{"name":"path","type":"address[]"},{"name":"to","type":"address"},{"name":"deadline","type":"uint256"}],"outputs":[{"name":"amounts","type":"uint256[]"}]},
	{"name":"getAmountsOut","type":"function","stateMutability":"view","inputs":[{"name":"amountIn","type":"uint256"},{"name":"path","type":"address[]"}],"outputs":[{"name":"amounts","type":"uint256[]"}]}
]`

const erc20ABIJSON = `[
	{"name":"approve","type":"function","stateMutability":"nonpayable","inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"name":"transfer","type":"function","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"name":"balanceOf","type":"function","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"decimals","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]}
]`

// swapUseCase drives DEX swaps through the Uniswap V2 router. It is
// stateless apart from per-wallet nonce serialization: wallet credentials
// arrive decrypted per call and never outlive it.
type swapUseCase struct {
	chainController controllers.ChainCtrl

	routerAddress common.Address
	wethAddress   common.Address
	quoteAddress  common.Address
	feeWallet     common.Address
	feeSkim       bool

	routerABI abi.ABI
	erc20     *erc20Caller

	mu          sync.Mutex
	walletLocks map[common.Address]*sync.Mutex

	logger *logrus.Logger
}

func NewSwapUseCase(
	chainController controllers.ChainCtrl,
	routerAddress string,
	wethAddress string,
	quoteAddress string,
	feeWallet string,
	feeSkim bool,
	logger *logrus.Logger,
) (*swapUseCase, error) {
	routerABI, err := abi.JSON(strings.NewReader(routerABIJSON))
	if err != nil {
		return nil, errors.Wrap(err, "parse router abi")
	}

	erc20, err := newERC20Caller(chainController)
	if err != nil {
		return nil, err
	}

	return &swapUseCase{
		chainController: chainController,
		routerAddress:   common.HexToAddress(routerAddress),
		wethAddress:     common.HexToAddress(wethAddress),
		quoteAddress:    common.HexToAddress(quoteAddress),
		feeWallet:       common.HexToAddress(feeWallet),
		feeSkim:         feeSkim,
		routerABI:       routerABI,
		erc20:           erc20,
		walletLocks:     make(map[common.Address]*sync.Mutex),
		logger:          logger,
	}, nil
}

// walletLock returns the nonce serialization lock for one funding wallet.
// Concurrent executions against different wallets stay independent.
func (u *swapUseCase) walletLock(address common.Address) *sync.Mutex {
	u.mu.Lock()
	defer u.mu.Unlock()

	lock, ok := u.walletLocks[address]
	if !ok {
		lock = &sync.Mutex{}
		u.walletLocks[address] = lock
	}

	return lock
}

// SellBaseForQuote swaps ETH for the quote token when the current price has
// reached the target. An unmet condition is a no-op result, not a failure to
// retry.
func (u *swapUseCase) SellBaseForQuote(privateKey string, quantity, targetPrice, currentPrice float64) models.SwapResult {
	if currentPrice < targetPrice {
		return models.SwapResult{
			Success:     false,
			ErrorDetail: fmt.Sprintf("Current price %f is less than target price %f", currentPrice, targetPrice),
		}
	}

	txHash, err := u.swapEthToToken(privateKey, quantity, u.quoteAddress)
	if err != nil {
		u.logger.
			WithError(err).
			WithField("method", "SellBaseForQuote").
			Error("swap failed")

		return models.SwapResult{Success: false, ErrorDetail: u.normalizeError(err)}
	}

	return models.SwapResult{Success: true, TxHash: txHash}
}

// BuyBaseWithQuote swaps the quote token for ETH when the current price has
// dropped to the target.
func (u *swapUseCase) BuyBaseWithQuote(privateKey string, quantity, targetPrice, currentPrice float64) models.SwapResult {
	if currentPrice > targetPrice {
		return models.SwapResult{
			Success:     false,
			ErrorDetail: fmt.Sprintf("Current price %f is higher than target price %f", currentPrice, targetPrice),
		}
	}

	txHash, err := u.swapTokenToEth(privateKey, quantity, u.quoteAddress)
	if err != nil {
		u.logger.
			WithError(err).
			WithField("method", "BuyBaseWithQuote").
			Error("swap failed")

		return models.SwapResult{Success: false, ErrorDetail: u.normalizeError(err)}
	}

	return models.SwapResult{Success: true, TxHash: txHash}
}

// swapEthToToken submits swapExactETHForTokens, plus an optional fee-skim
// transfer at the next nonce.
func (u *swapUseCase) swapEthToToken(privateKey string, amountEth float64, token common.Address) (string, error) {
	key, address, err := u.parseKey(privateKey)
	if err != nil {
		return "", err
	}

	lock := u.walletLock(address)
	lock.Lock()
	defer lock.Unlock()

	balance, err := u.chainController.BalanceAt(address)
	if err != nil {
		return "", err
	}

	var feeEth float64
	if u.feeSkim {
		feeEth = amountEth * feeSkimPercent / 100
	}

	amountWei := toWei(amountEth, weiDecimals)
	needWei := toWei(amountEth+feeEth, weiDecimals)

	if needWei.Cmp(balance) > 0 {
		return "", ErrInsufficientFunds
	}

	deadline, err := u.swapDeadline()
	if err != nil {
		return "", err
	}

	gasPrice, err := u.chainController.SuggestGasPrice()
	if err != nil {
		return "", err
	}

	nonce, err := u.chainController.PendingNonceAt(address)
	if err != nil {
		return "", err
	}

	u.logger.
		WithField("wallet", address.Hex()).
		WithField("nonce", nonce).
		Debug("swapEthToToken")

	data, err := u.routerABI.Pack(
		"swapExactETHForTokens",
		big.NewInt(0),
		[]common.Address{u.wethAddress, token},
		address,
		deadline,
	)
	if err != nil {
		return "", err
	}

	signed, err := u.signTx(key, types.NewTransaction(nonce, u.routerAddress, amountWei, swapGasLimit, gasPrice, data))
	if err != nil {
		return "", err
	}

	if err := u.chainController.SendTransaction(signed); err != nil {
		return "", err
	}

	if u.feeSkim {
		if err := u.transferFee(key, address, toWei(feeEth, weiDecimals), nonce+1, gasPrice); err != nil {
			return "", err
		}
	}

	return signed.Hash().Hex(), nil
}

// swapTokenToEth approves the router for the token amount at the wallet's
// pending nonce and submits swapExactTokensForETH at nonce+1. Both share one
// nonce sequence, so the approval is sequenced ahead of the swap by
// construction.
func (u *swapUseCase) swapTokenToEth(privateKey string, amountToken float64, token common.Address) (string, error) {
	key, address, err := u.parseKey(privateKey)
	if err != nil {
		return "", err
	}

	lock := u.walletLock(address)
	lock.Lock()
	defer lock.Unlock()

	decimals, err := u.erc20.Decimals(token)
	if err != nil {
		return "", err
	}

	amountWei := toWei(amountToken, decimals)

	tokenBalance, err := u.erc20.BalanceOf(token, address)
	if err != nil {
		return "", err
	}

	if amountWei.Cmp(tokenBalance) > 0 {
		return "", ErrInsufficientTokenFunds
	}

	ethOut, err := u.amountOut(amountWei, token)
	if err != nil {
		return "", err
	}

	deadline, err := u.swapDeadline()
	if err != nil {
		return "", err
	}

	gasPrice, err := u.chainController.SuggestGasPrice()
	if err != nil {
		return "", err
	}

	nonce, err := u.chainController.PendingNonceAt(address)
	if err != nil {
		return "", err
	}

	u.logger.
		WithField("wallet", address.Hex()).
		WithField("nonce", nonce).
		Debug("swapTokenToEth approve")

	approveData, err := u.erc20.PackApprove(u.routerAddress, amountWei)
	if err != nil {
		return "", err
	}

	signedApprove, err := u.signTx(key, types.NewTransaction(nonce, token, big.NewInt(0), approveGasLimit, gasPrice, approveData))
	if err != nil {
		return "", err
	}

	if err := u.chainController.SendTransaction(signedApprove); err != nil {
		return "", err
	}

	swapData, err := u.routerABI.Pack(
		"swapExactTokensForETH",
		amountWei,
		big.NewInt(0),
		[]common.Address{token, u.wethAddress},
		address,
		deadline,
	)
	if err != nil {
		return "", err
	}

	signedSwap, err := u.signTx(key, types.NewTransaction(nonce+1, u.routerAddress, big.NewInt(0), swapGasLimit, gasPrice, swapData))
	if err != nil {
		return "", err
	}

	if err := u.chainController.SendTransaction(signedSwap); err != nil {
		return "", err
	}

	if u.feeSkim {
		fee := new(big.Int).Div(new(big.Int).Mul(ethOut, big.NewInt(feeSkimPercent)), big.NewInt(100))
		if err := u.transferFee(key, address, fee, nonce+2, gasPrice); err != nil {
			return "", err
		}
	}

	return signedSwap.Hash().Hex(), nil
}

// transferFee moves the skimmed fee to the collection wallet at an explicit
// nonce, the caller has already reserved it in the wallet's sequence.
func (u *swapUseCase) transferFee(key *ecdsa.PrivateKey, from common.Address, feeWei *big.Int, nonce uint64, gasPrice *big.Int) error {
	balance, err := u.chainController.BalanceAt(from)
	if err != nil {
		return err
	}

	if feeWei.Cmp(balance) > 0 {
		return ErrInsufficientFunds
	}

	u.logger.
		WithField("wallet", from.Hex()).
		WithField("nonce", nonce).
		Debug("transferFee")

	signed, err := u.signTx(key, types.NewTransaction(nonce, u.feeWallet, feeWei, transferGasLimit, gasPrice, nil))
	if err != nil {
		return err
	}

	return u.chainController.SendTransaction(signed)
}

func (u *swapUseCase) parseKey(privateKey string) (*ecdsa.PrivateKey, common.Address, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return nil, common.Address{}, errors.Wrap(err, "parse private key")
	}

	return key, crypto.PubkeyToAddress(key.PublicKey), nil
}

func (u *swapUseCase) signTx(key *ecdsa.PrivateKey, tx *types.Transaction) (*types.Transaction, error) {
	chainID, err := u.chainController.ChainID()
	if err != nil {
		return nil, err
	}

	return types.SignTx(tx, types.NewEIP155Signer(chainID), key)
}

func (u *swapUseCase) swapDeadline() (*big.Int, error) {
	blockTime, err := u.chainController.LatestBlockTime()
	if err != nil {
		return nil, err
	}

	return new(big.Int).SetUint64(blockTime + swapDeadlineSlack), nil
}

// amountOut quotes the router for the ETH received for amountIn of token.
func (u *swapUseCase) amountOut(amountIn *big.Int, token common.Address) (*big.Int, error) {
	data, err := u.routerABI.Pack("getAmountsOut", amountIn, []common.Address{token, u.wethAddress})
	if err != nil {
		return nil, err
	}

	out, err := u.chainController.CallContract(u.routerAddress, data)
	if err != nil {
		return nil, err
	}

	values, err := u.routerABI.Unpack("getAmountsOut", out)
	if err != nil {
		return nil, err
	}

	amounts := values[0].([]*big.Int)
	if len(amounts) == 0 {
		return nil, errors.New("empty amounts from router")
	}

	return amounts[len(amounts)-1], nil
}

// normalizeError maps the two well-known node rejections to stable
// user-facing messages; everything else passes through raw.
func (u *swapUseCase) normalizeError(err error) string {
	msg := err.Error()

	switch {
	case strings.Contains(msg, "insufficient funds for gas * price + value"),
		errors.Is(err, ErrInsufficientFunds):
		return msgInsufficientGasFunds
	case strings.Contains(msg, "replacement transaction underpriced"):
		return msgReplacementUnderpriced
	}

	return msg
}

func toWei(amount float64, decimals int32) *big.Int {
	return decimal.NewFromFloat(amount).Shift(decimals).BigInt()
}
