package main

import (
	"github.com/ethereum/go-ethereum/ethclient"
)

func (a *App) initEth() error {
	client, err := ethclient.Dial(a.Config.Web3ProviderURL)
	if err != nil {
		return err
	}

	a.Eth = client

	return nil
}
