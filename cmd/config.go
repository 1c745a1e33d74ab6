package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramApiToken string
	TelegramChatID   string

	Web3ProviderURL  string
	RouterAddress    string
	WethAddress      string
	UsdtAddress      string
	FeeWalletAddress string
	FeeSkim          string

	TransactionHashURL string

	CovalentApiURL  string
	CovalentApiKey  string
	EtherscanApiURL string
	EtherscanApiKey string

	EncryptionKey string

	StreamURL string
	Symbols   string

	ListenAddr string
	LokiURL    string
	LogLevel   string

	DB    *DB
	Mongo *Mongo
}

type DB struct {
	Host     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type Mongo struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

var ErrEnvNotFound = errors.New("err env not found")

func (a *App) loadConfig(confFileName string) error {
	var cfg Config
	var db DB
	var mng Mongo

	err := godotenv.Load(confFileName)
	if err != nil {
		return err
	}

	for key, dst := range map[string]*string{
		"TELEGRAM_API_TOKEN":   &cfg.TelegramApiToken,
		"TELEGRAM_CHAT_ID":     &cfg.TelegramChatID,
		"WEB3_PROVIDER_URL":    &cfg.Web3ProviderURL,
		"ROUTER_ADDRESS":       &cfg.RouterAddress,
		"WETH_ADDRESS":         &cfg.WethAddress,
		"USDT_ADDRESS":         &cfg.UsdtAddress,
		"FEE_WALLET_ADDRESS":   &cfg.FeeWalletAddress,
		"FEE_SKIM":             &cfg.FeeSkim,
		"TRANSACTION_HASH_URL": &cfg.TransactionHashURL,
		"COVALENT_API_URL":     &cfg.CovalentApiURL,
		"COVALENT_API_KEY":     &cfg.CovalentApiKey,
		"ETHERSCAN_API_URL":    &cfg.EtherscanApiURL,
		"ETHERSCAN_API_KEY":    &cfg.EtherscanApiKey,
		"ENCRYPTION_KEY":       &cfg.EncryptionKey,
		"STREAM_URL":           &cfg.StreamURL,
		"SYMBOLS":              &cfg.Symbols,
		"LISTEN_ADDR":          &cfg.ListenAddr,
		"LOKI_URL":             &cfg.LokiURL,
		"LOG_LEVEL":            &cfg.LogLevel,
		"PG_HOST":              &db.Host,
		"PG_USER":              &db.User,
		"PG_PASSWORD":          &db.Password,
		"PG_DBNAME":            &db.DBName,
		"PG_SSL_MODE":          &db.SSLMode,
		"MONGO_HOST":           &mng.Host,
		"MONGO_PORT":           &mng.Port,
		"MONGO_USER":           &mng.User,
		"MONGO_PASSWORD":       &mng.Password,
		"MONGO_DBNAME":         &mng.DBName,
	} {
		if *dst, err = cfg.set(key); err != nil {
			return err
		}
	}

	cfg.DB = &db
	cfg.Mongo = &mng

	a.Config = &cfg

	return nil
}

func (d *DB) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode)
}

func (m *Mongo) DSN() string {
	return fmt.Sprintf("mongodb://%s:%s", m.Host, m.Port)
}

func (c *Config) set(key string) (string, error) {
	if os.Getenv(key) == "" {
		return "", fmt.Errorf("%w: %s", ErrEnvNotFound, key)
	}

	return os.Getenv(key), nil
}
