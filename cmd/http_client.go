package main

import (
	"net/http"
	"time"
)

// Covalent portfolio responses for large whale wallets can take a few
// seconds, so the provider client gets a wider timeout than the default.
const providerRequestTimeout = 15 * time.Second

func (a *App) initHTTPClient() {
	a.HTTPClient = &http.Client{
		Timeout: providerRequestTimeout,
	}
}
