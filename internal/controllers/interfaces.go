package controllers

import (
	"math/big"
	"net/url"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	tgmBotAPI "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

//go:generate mockery --case=snake --name=ChainCtrl
//go:generate mockery --case=snake --name=ClientCtrl
//go:generate mockery --case=snake --name=CryptoCtrl
//go:generate mockery --case=snake --name=TgmCtrl

type ChainCtrl interface {
	BalanceAt(address common.Address) (*big.Int, error)
	PendingNonceAt(address common.Address) (uint64, error)
	NonceAt(address common.Address) (uint64, error)
	SuggestGasPrice() (*big.Int, error)
	ChainID() (*big.Int, error)
	LatestBlockTime() (uint64, error)
	CallContract(to common.Address, data []byte) ([]byte, error)
	SendTransaction(tx *types.Transaction) error
}

type ClientCtrl interface {
	Send(method string, url *url.URL, body []byte, useApiKey bool) ([]byte, error)
}

type CryptoCtrl interface {
	Encrypt(plainText string) (string, error)
	Decrypt(cipherText string) (string, error)
}

type TgmCtrl interface {
	Send(text string) error
	SendTo(chatID int64, text string) error
	CheckChatID(chatID int64) bool
	GetUpdates() tgmBotAPI.UpdatesChannel
}
