package usecasees

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"recifi/internal/controllers"
	"recifi/internal/repository/mongo"
	mongoStructs "recifi/internal/repository/mongo/structs"
	"recifi/internal/usecasees/structs"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const (
	// share of whales that must have bought a token before an alert fires
	alertThresholdPercent = 5

	// etherscan token-transfer lookback for the bought-token pass
	boughtTokenWindow = time.Hour
)

var whaleCronJobs = map[string]string{
	"percentage": "0 0 * * *",
	"historical": "30 0 * * *",
	"alerts":     "0 * * * *",
}

// whaleUseCase keeps the tracked whale wallets fresh: periodic portfolio
// change updates and alerts when enough whales pile into the same token.
type whaleUseCase struct {
	clientController controllers.ClientCtrl
	tgmController    controllers.TgmCtrl

	whaleRepo mongo.WhaleRepo

	covalentURL  string
	etherscanURL string
	etherscanKey string

	cron *cron.Cron

	logger *logrus.Logger
}

func NewWhaleUseCase(
	clientController controllers.ClientCtrl,
	tgmController controllers.TgmCtrl,
	whaleRepo mongo.WhaleRepo,
	covalentURL string,
	etherscanURL string,
	etherscanKey string,
	c *cron.Cron,
	logger *logrus.Logger,
) *whaleUseCase {
	return &whaleUseCase{
		clientController: clientController,
		tgmController:    tgmController,
		whaleRepo:        whaleRepo,
		covalentURL:      covalentURL,
		etherscanURL:     etherscanURL,
		etherscanKey:     etherscanKey,
		cron:             c,
		logger:           logger,
	}
}

// Schedule registers the periodic jobs on the shared cron runner.
func (u *whaleUseCase) Schedule() error {
	jobs := map[string]func(){
		"percentage": u.RefreshPercentageChanges,
		"historical": u.RefreshHistoricalPrices,
		"alerts":     u.RunTokenAlerts,
	}

	for name, job := range jobs {
		if _, err := u.cron.AddFunc(whaleCronJobs[name], job); err != nil {
			return errors.Wrapf(err, "schedule %s", name)
		}
	}

	return nil
}

func (u *whaleUseCase) Track(name, walletAddress string) error {
	return u.whaleRepo.Add(&mongoStructs.Whale{
		Name:          name,
		WalletAddress: walletAddress,
	})
}

// RefreshPercentageChanges recomputes each whale's 24h/7d/30d/1y portfolio
// percentage changes from the current holdings snapshot.
func (u *whaleUseCase) RefreshPercentageChanges() {
	start := time.Now()

	whales, err := u.whaleRepo.List()
	if err != nil {
		u.logger.
			WithError(err).
			Error(string(debug.Stack()))

		return
	}

	for _, whale := range whales {
		items, err := u.fetchBalances(whale.WalletAddress)
		if err != nil {
			u.logger.
				WithError(err).
				WithField("wallet", whale.WalletAddress).
				Error("fetch balances")

			continue
		}

		var total, total24h float64
		for _, item := range items {
			if item.Quote != 0 && item.Quote24h != 0 {
				total += item.Quote
				total24h += item.Quote24h
			}
		}

		whale.PercentageChange24h = calculatePercentChange(total, total24h)
		whale.PercentageChange7Days = calculatePercentChange(total, whale.PriceChange7Days)
		whale.PercentageChange30Days = calculatePercentChange(total, whale.PriceChange30Days)
		whale.PercentageChange1Year = calculatePercentChange(total, whale.PriceChange1Year)

		if err := u.whaleRepo.UpdateChanges(whale.ID, &whale); err != nil {
			u.logger.
				WithError(err).
				WithField("wallet", whale.WalletAddress).
				Error("update whale changes")
		}
	}

	u.logger.
		WithField("took", time.Since(start)).
		Info("whale percentage changes updated")
}

// RefreshHistoricalPrices stores each whale's portfolio value as of 7 days,
// 30 days and one year back.
func (u *whaleUseCase) RefreshHistoricalPrices() {
	whales, err := u.whaleRepo.List()
	if err != nil {
		u.logger.
			WithError(err).
			Error(string(debug.Stack()))

		return
	}

	for _, whale := range whales {
		var failed bool
		for _, window := range []struct {
			daysBack int
			target   *float64
		}{
			{7, &whale.PriceChange7Days},
			{30, &whale.PriceChange30Days},
			{365, &whale.PriceChange1Year},
		} {
			value, err := u.fetchPortfolioValueAt(whale.WalletAddress, window.daysBack)
			if err != nil {
				u.logger.
					WithError(err).
					WithField("wallet", whale.WalletAddress).
					WithField("daysBack", window.daysBack).
					Error("fetch historical value")

				failed = true

				break
			}

			*window.target = value
		}

		if failed {
			continue
		}

		if err := u.whaleRepo.UpdateChanges(whale.ID, &whale); err != nil {
			u.logger.
				WithError(err).
				WithField("wallet", whale.WalletAddress).
				Error("update whale history")
		}
	}
}

// RunTokenAlerts rebuilds the bought-token snapshot and alerts when more
// than alertThresholdPercent of whales bought the same token recently.
func (u *whaleUseCase) RunTokenAlerts() {
	whales, err := u.whaleRepo.List()
	if err != nil {
		u.logger.
			WithError(err).
			Error(string(debug.Stack()))

		return
	}

	if len(whales) == 0 {
		return
	}

	var tokens []mongoStructs.WhaleToken
	for _, whale := range whales {
		bought, err := u.fetchBoughtTokens(whale.WalletAddress)
		if err != nil {
			u.logger.
				WithError(err).
				WithField("wallet", whale.WalletAddress).
				Error("fetch bought tokens")

			continue
		}

		for _, token := range bought {
			tokens = append(tokens, mongoStructs.WhaleToken{
				WhaleID:      whale.ID,
				TokenAddress: token,
			})
		}
	}

	if err := u.whaleRepo.ReplaceTokens(tokens); err != nil {
		u.logger.
			WithError(err).
			Error("replace token snapshot")

		return
	}

	counts, err := u.whaleRepo.TokenCounts()
	if err != nil {
		u.logger.
			WithError(err).
			Error("token counts")

		return
	}

	for token, count := range counts {
		percentage := float64(count) / float64(len(whales)) * 100
		if percentage <= alertThresholdPercent {
			continue
		}

		msg := fmt.Sprintf(
			"🐳 Whale alert: %.2f%% of tracked whales bought token %s in the last hour.",
			percentage, token,
		)

		if err := u.tgmController.Send(msg); err != nil {
			u.logger.
				WithError(err).
				Debug("send whale alert")
		}
	}
}

func (u *whaleUseCase) fetchBalances(walletAddress string) ([]structs.BalanceItem, error) {
	baseURL, err := url.Parse(u.covalentURL)
	if err != nil {
		return nil, err
	}
	baseURL.Path = fmt.Sprintf("/v1/1/address/%s/balances_v2/", walletAddress)

	return u.fetchItems(baseURL)
}

func (u *whaleUseCase) fetchPortfolioValueAt(walletAddress string, daysBack int) (float64, error) {
	date := time.Now().UTC().AddDate(0, 0, -daysBack).Format("2006-01-02")

	baseURL, err := url.Parse(u.covalentURL)
	if err != nil {
		return 0, err
	}
	baseURL.Path = fmt.Sprintf("/v1/1/address/%s/portfolio_v2/", walletAddress)

	q := baseURL.Query()
	q.Set("date", date)
	baseURL.RawQuery = q.Encode()

	items, err := u.fetchItems(baseURL)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, item := range items {
		total += item.Quote
	}

	return total, nil
}

func (u *whaleUseCase) fetchItems(baseURL *url.URL) ([]structs.BalanceItem, error) {
	body, err := u.clientController.Send(http.MethodGet, baseURL, nil, true)
	if err != nil {
		return nil, err
	}

	var out structs.BalancesResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}

	if out.Error {
		return nil, errors.Errorf("covalent: %s", out.ErrorMessage)
	}

	return out.Data.Items, nil
}

// fetchBoughtTokens lists token contracts the wallet received within the
// lookback window.
func (u *whaleUseCase) fetchBoughtTokens(walletAddress string) ([]string, error) {
	baseURL, err := url.Parse(u.etherscanURL)
	if err != nil {
		return nil, err
	}

	q := baseURL.Query()
	q.Set("module", "account")
	q.Set("action", "tokentx")
	q.Set("address", walletAddress)
	q.Set("sort", "desc")
	q.Set("apikey", u.etherscanKey)
	baseURL.RawQuery = q.Encode()

	body, err := u.clientController.Send(http.MethodGet, baseURL, nil, false)
	if err != nil {
		return nil, err
	}

	var out structs.TokenTxResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-boughtTokenWindow).Unix()
	seen := make(map[string]bool)
	var tokens []string

	for _, entry := range out.Result {
		ts, err := strconv.ParseInt(entry.TimeStamp, 10, 64)
		if err != nil || ts < cutoff {
			continue
		}

		if !strings.EqualFold(entry.To, walletAddress) {
			continue
		}

		if !seen[entry.ContractAddress] {
			seen[entry.ContractAddress] = true
			tokens = append(tokens, entry.ContractAddress)
		}
	}

	return tokens, nil
}

func calculatePercentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}

	return (current - previous) / previous * 100
}
