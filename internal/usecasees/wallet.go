package usecasees

import (
	"crypto/ecdsa"
	"encoding/hex"
	"math/big"
	"strings"

	"recifi/internal/controllers"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const tokenTransferGasLimit = 60000

type walletUseCase struct {
	chainController  controllers.ChainCtrl
	cryptoController controllers.CryptoCtrl

	erc20 *erc20Caller

	quoteAddress common.Address

	logger *logrus.Logger
}

func NewWalletUseCase(
	chainController controllers.ChainCtrl,
	cryptoController controllers.CryptoCtrl,
	quoteAddress string,
	logger *logrus.Logger,
) (*walletUseCase, error) {
	erc20, err := newERC20Caller(chainController)
	if err != nil {
		return nil, err
	}

	return &walletUseCase{
		chainController:  chainController,
		cryptoController: cryptoController,
		erc20:            erc20,
		quoteAddress:     common.HexToAddress(quoteAddress),
		logger:           logger,
	}, nil
}

// CreateWallet generates a fresh keypair and returns the address plus the
// encrypted private key, the plaintext key is never returned or stored.
func (u *walletUseCase) CreateWallet() (string, string, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return "", "", err
	}

	encrypted, err := u.cryptoController.Encrypt(hex.EncodeToString(crypto.FromECDSA(key)))
	if err != nil {
		return "", "", err
	}

	return crypto.PubkeyToAddress(key.PublicKey).Hex(), encrypted, nil
}

// ImportWallet validates an externally supplied private key and returns its
// address plus the encrypted form for storage.
func (u *walletUseCase) ImportWallet(privateKey string) (string, string, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return "", "", errors.Wrap(err, "parse private key")
	}

	encrypted, err := u.cryptoController.Encrypt(hex.EncodeToString(crypto.FromECDSA(key)))
	if err != nil {
		return "", "", err
	}

	return crypto.PubkeyToAddress(key.PublicKey).Hex(), encrypted, nil
}

// BalancesEthUsdt returns the ETH and USDT balances of one wallet, used as
// the pre-submission funding check.
func (u *walletUseCase) BalancesEthUsdt(address string) (float64, float64, error) {
	addr := common.HexToAddress(address)

	wei, err := u.chainController.BalanceAt(addr)
	if err != nil {
		return 0, 0, err
	}

	tokenWei, err := u.erc20.BalanceOf(u.quoteAddress, addr)
	if err != nil {
		return 0, 0, err
	}

	decimals, err := u.erc20.Decimals(u.quoteAddress)
	if err != nil {
		return 0, 0, err
	}

	return fromWei(wei, weiDecimals), fromWei(tokenWei, decimals), nil
}

// decryptKey recovers the signing key from its stored encrypted form. The
// plaintext never leaves the calling frame.
func (u *walletUseCase) decryptKey(encryptedKey string) (*ecdsa.PrivateKey, common.Address, error) {
	plain, err := u.cryptoController.Decrypt(encryptedKey)
	if err != nil {
		return nil, common.Address{}, err
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(plain, "0x"))
	if err != nil {
		return nil, common.Address{}, errors.Wrap(err, "parse private key")
	}

	return key, crypto.PubkeyToAddress(key.PublicKey), nil
}

// TransferEth sends ETH to another address. Transferring the full balance
// deducts the gas cost from the amount instead of failing.
func (u *walletUseCase) TransferEth(encryptedKey, receiver string, amount float64) (string, error) {
	key, address, err := u.decryptKey(encryptedKey)
	if err != nil {
		return "", err
	}

	balance, err := u.chainController.BalanceAt(address)
	if err != nil {
		return "", err
	}

	gasPrice, err := u.chainController.SuggestGasPrice()
	if err != nil {
		return "", err
	}

	amountWei := toWei(amount, weiDecimals)

	var value *big.Int
	if amountWei.Cmp(balance) == 0 {
		gasCost := new(big.Int).Mul(gasPrice, big.NewInt(transferGasLimit))
		value = new(big.Int).Sub(balance, gasCost)
		if value.Sign() < 0 {
			return "", ErrInsufficientFunds
		}
	} else {
		value = amountWei
		if amountWei.Cmp(balance) > 0 {
			return "", ErrInsufficientFunds
		}
	}

	nonce, err := u.chainController.NonceAt(address)
	if err != nil {
		return "", err
	}

	u.logger.
		WithField("wallet", address.Hex()).
		WithField("nonce", nonce).
		Debug("transfer eth")

	signed, err := u.sign(key, types.NewTransaction(nonce, common.HexToAddress(receiver), value, transferGasLimit, gasPrice, nil))
	if err != nil {
		return "", err
	}

	if err := u.chainController.SendTransaction(signed); err != nil {
		return "", err
	}

	return signed.Hash().Hex(), nil
}

// TransferToken sends an ERC-20 amount to another address.
func (u *walletUseCase) TransferToken(encryptedKey, receiver, token string, amount float64) (string, error) {
	key, address, err := u.decryptKey(encryptedKey)
	if err != nil {
		return "", err
	}

	tokenAddress := common.HexToAddress(token)

	decimals, err := u.erc20.Decimals(tokenAddress)
	if err != nil {
		return "", err
	}

	data, err := u.erc20.PackTransfer(common.HexToAddress(receiver), toWei(amount, decimals))
	if err != nil {
		return "", err
	}

	gasPrice, err := u.chainController.SuggestGasPrice()
	if err != nil {
		return "", err
	}

	nonce, err := u.chainController.NonceAt(address)
	if err != nil {
		return "", err
	}

	signed, err := u.sign(key, types.NewTransaction(nonce, tokenAddress, big.NewInt(0), tokenTransferGasLimit, gasPrice, data))
	if err != nil {
		return "", err
	}

	if err := u.chainController.SendTransaction(signed); err != nil {
		return "", err
	}

	return signed.Hash().Hex(), nil
}

// HasPendingTransactions reports whether the wallet has submitted but
// unmined transactions.
func (u *walletUseCase) HasPendingTransactions(address string) (bool, error) {
	addr := common.HexToAddress(address)

	pending, err := u.chainController.PendingNonceAt(addr)
	if err != nil {
		return false, err
	}

	latest, err := u.chainController.NonceAt(addr)
	if err != nil {
		return false, err
	}

	return pending > latest, nil
}

// ReplacePendingTransaction overwrites the wallet's oldest pending
// transaction with a zero-value self-transfer at a chosen gas price.
func (u *walletUseCase) ReplacePendingTransaction(encryptedKey string, gasPriceGwei int64) (string, error) {
	key, address, err := u.decryptKey(encryptedKey)
	if err != nil {
		return "", err
	}

	// the oldest pending transaction sits at the latest confirmed nonce
	nonce, err := u.chainController.NonceAt(address)
	if err != nil {
		return "", err
	}

	gasPrice := new(big.Int).Mul(big.NewInt(gasPriceGwei), big.NewInt(1e9))

	signed, err := u.sign(key, types.NewTransaction(nonce, address, big.NewInt(0), transferGasLimit, gasPrice, nil))
	if err != nil {
		return "", err
	}

	if err := u.chainController.SendTransaction(signed); err != nil {
		return "", err
	}

	return signed.Hash().Hex(), nil
}

func (u *walletUseCase) sign(key *ecdsa.PrivateKey, tx *types.Transaction) (*types.Transaction, error) {
	chainID, err := u.chainController.ChainID()
	if err != nil {
		return nil, err
	}

	return types.SignTx(tx, types.NewEIP155Signer(chainID), key)
}

func fromWei(wei *big.Int, decimals int32) float64 {
	out, _ := decimal.NewFromBigInt(wei, -decimals).Float64()

	return out
}
