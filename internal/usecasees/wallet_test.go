package usecasees

import (
	"math/big"
	"testing"

	"recifi/internal/controllers"
	ctrlMocks "recifi/internal/controllers/mocks"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockGenWallet struct {
	chainCtrl  *ctrlMocks.ChainCtrl
	cryptoCtrl controllers.CryptoCtrl

	logger *logrus.Logger
}

func newMockGenWallet(t *testing.T) *mockGenWallet {
	cryptoCtrl, err := controllers.NewCryptoController("0123456789abcdef0123456789abcdef")
	assert.NoError(t, err)

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	return &mockGenWallet{
		chainCtrl:  &ctrlMocks.ChainCtrl{},
		cryptoCtrl: cryptoCtrl,
		logger:     logger,
	}
}

func (mockGen *mockGenWallet) initWalletUseCase(t *testing.T) *walletUseCase {
	useCase, err := NewWalletUseCase(
		mockGen.chainCtrl,
		mockGen.cryptoCtrl,
		testUsdtAddr,
		mockGen.logger,
	)
	assert.NoError(t, err)

	return useCase
}

func Test_WalletUseCase(t *testing.T) {
	t.Run("created wallet round trips through the encrypted key", func(t *testing.T) {
		mockGen := newMockGenWallet(t)
		useCase := mockGen.initWalletUseCase(t)

		address, encryptedKey, err := useCase.CreateWallet()
		assert.NoError(t, err)
		assert.True(t, common.IsHexAddress(address))
		assert.NotEmpty(t, encryptedKey)

		key, keyAddress, err := useCase.decryptKey(encryptedKey)
		assert.NoError(t, err)
		assert.NotNil(t, key)
		assert.Equal(t, address, keyAddress.Hex())
	})

	t.Run("imported wallet keeps its address", func(t *testing.T) {
		mockGen := newMockGenWallet(t)
		useCase := mockGen.initWalletUseCase(t)

		address, encryptedKey, err := useCase.ImportWallet(testPrivateKey)
		assert.NoError(t, err)
		assert.Equal(t, common.HexToAddress(testWalletAddr).Hex(), address)
		assert.NotEmpty(t, encryptedKey)
	})

	t.Run("import rejects a malformed key", func(t *testing.T) {
		mockGen := newMockGenWallet(t)

		_, _, err := mockGen.initWalletUseCase(t).ImportWallet("not-a-key")
		assert.Error(t, err)
	})

	t.Run("full balance transfer deducts gas from the amount", func(t *testing.T) {
		mockGen := newMockGenWallet(t)
		useCase := mockGen.initWalletUseCase(t)

		_, encryptedKey, err := useCase.ImportWallet(testPrivateKey)
		assert.NoError(t, err)

		wallet := common.HexToAddress(testWalletAddr)
		balance := ethWei(1)
		gasPrice := big.NewInt(testGasPriceWei)
		gasCost := new(big.Int).Mul(gasPrice, big.NewInt(transferGasLimit))

		mockGen.chainCtrl.On("BalanceAt", wallet).Return(balance, nil)
		mockGen.chainCtrl.On("SuggestGasPrice").Return(gasPrice, nil)
		mockGen.chainCtrl.On("NonceAt", wallet).Return(uint64(2), nil)
		mockGen.chainCtrl.On("ChainID").Return(big.NewInt(1), nil)
		mockGen.chainCtrl.On("SendTransaction", mock.MatchedBy(func(tx *types.Transaction) bool {
			want := new(big.Int).Sub(balance, gasCost)

			return tx.Nonce() == 2 && tx.Value().Cmp(want) == 0
		})).Return(nil).Once()

		txHash, err := useCase.TransferEth(encryptedKey, testFeeWallet, 1)
		assert.NoError(t, err)
		assert.NotEmpty(t, txHash)
		mockGen.chainCtrl.AssertExpectations(t)
	})

	t.Run("transfer over balance is rejected", func(t *testing.T) {
		mockGen := newMockGenWallet(t)
		useCase := mockGen.initWalletUseCase(t)

		_, encryptedKey, err := useCase.ImportWallet(testPrivateKey)
		assert.NoError(t, err)

		mockGen.chainCtrl.On("BalanceAt", common.HexToAddress(testWalletAddr)).Return(ethWei(1), nil)
		mockGen.chainCtrl.On("SuggestGasPrice").Return(big.NewInt(testGasPriceWei), nil)

		_, err = useCase.TransferEth(encryptedKey, testFeeWallet, 2)
		assert.ErrorIs(t, err, ErrInsufficientFunds)
		mockGen.chainCtrl.AssertNotCalled(t, "SendTransaction", mock.Anything)
	})

	t.Run("pending transactions compare pending and latest nonces", func(t *testing.T) {
		mockGen := newMockGenWallet(t)
		wallet := common.HexToAddress(testWalletAddr)

		mockGen.chainCtrl.On("PendingNonceAt", wallet).Return(uint64(5), nil)
		mockGen.chainCtrl.On("NonceAt", wallet).Return(uint64(4), nil)

		pending, err := mockGen.initWalletUseCase(t).HasPendingTransactions(testWalletAddr)
		assert.NoError(t, err)
		assert.True(t, pending)
	})
}
