package main

import (
	"context"
	"flag"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	apiHTTP "recifi/internal/api/http"
	"recifi/internal/controllers"
	mongoRepo "recifi/internal/repository/mongo"
	"recifi/internal/repository/postgres"
	"recifi/internal/usecasees"

	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"
)

func main() {
	var app App
	var confFileName string

	flag.StringVar(&confFileName, "config", ".env", "")
	flag.Parse()

	app.Name = appName

	if err := app.loadConfig(confFileName); err != nil {
		panic(err)
	}

	app.initLogger()

	if err := app.initPromTail(); err != nil {
		app.Logger.WithError(err).Warn("loki is not available")
	}

	if err := app.initTgBot(); err != nil {
		panic(err)
	}

	if err := app.InitDB(app.Config.DB); err != nil {
		panic(err)
	}

	if err := app.initMongo(); err != nil {
		panic(err)
	}

	if err := app.initEth(); err != nil {
		panic(err)
	}

	app.initHTTPClient()
	app.InitMetrics()

	chatID, err := strconv.ParseInt(app.Config.TelegramChatID, 10, 64)
	if err != nil {
		panic(err)
	}

	feeSkim, err := strconv.ParseBool(app.Config.FeeSkim)
	if err != nil {
		panic(err)
	}

	tradeRepo := postgres.NewTradeRepository(app.DB)
	whaleRepo := mongoRepo.NewWhaleRepository(app.Mongo)

	chainController := controllers.NewChainController(app.Eth, app.Logger)
	clientController := controllers.NewClientController(
		app.HTTPClient,
		app.Config.CovalentApiKey,
		app.Logger,
	)
	cryptoController, err := controllers.NewCryptoController(app.Config.EncryptionKey)
	if err != nil {
		panic(err)
	}
	tgmController := controllers.NewTgmController(app.TGM, chatID)

	swapUseCase, err := usecasees.NewSwapUseCase(
		chainController,
		app.Config.RouterAddress,
		app.Config.WethAddress,
		app.Config.UsdtAddress,
		app.Config.FeeWalletAddress,
		feeSkim,
		app.Logger,
	)
	if err != nil {
		panic(err)
	}

	walletUseCase, err := usecasees.NewWalletUseCase(
		chainController,
		cryptoController,
		app.Config.UsdtAddress,
		app.Logger,
	)
	if err != nil {
		panic(err)
	}

	schedulerUseCase := usecasees.NewSchedulerUseCase(
		swapUseCase,
		cryptoController,
		tgmController,
		tradeRepo,
		app.Metrics,
		app.Config.TransactionHashURL,
		app.Logger,
	)

	tradeUseCase := usecasees.NewTradeUseCase(
		tradeRepo,
		walletUseCase,
		app.Logger,
	)

	priceFeedUseCase := usecasees.NewPriceFeedUseCase(
		schedulerUseCase,
		app.Config.StreamURL,
		strings.Split(app.Config.Symbols, ","),
		app.Logger,
	)

	app.Cron = cron.New()

	whaleUseCase := usecasees.NewWhaleUseCase(
		clientController,
		tgmController,
		whaleRepo,
		app.Config.CovalentApiURL,
		app.Config.EtherscanApiURL,
		app.Config.EtherscanApiKey,
		app.Cron,
		app.Logger,
	)
	if err := whaleUseCase.Schedule(); err != nil {
		panic(err)
	}

	tgmUseCase := usecasees.NewTgmUseCase(
		tradeRepo,
		tgmController,
		app.Logger,
	)

	app.Fiber = fiber.New()
	apiHTTP.NewMiddleware(app.Name, app.Fiber).Setup()
	apiHTTP.RegisterHTTPEndpoints(app.Fiber, tradeUseCase, walletUseCase, schedulerUseCase, app.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.Cron.Start()

	go tgmUseCase.CommandProcessor()

	go func() {
		if err := app.Fiber.Listen(app.Config.ListenAddr); err != nil {
			app.Logger.WithError(err).Error("http server stopped")
		}
	}()

	priceFeedUseCase.Start(ctx)

	<-ctx.Done()

	if err := app.Fiber.Shutdown(); err != nil {
		app.Logger.WithError(err).Error("http shutdown")
	}

	<-app.Cron.Stop().Done()

	priceFeedUseCase.Wait()
}
