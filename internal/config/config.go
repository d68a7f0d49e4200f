package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Server  ServerConfig
	Store   StoreConfig
	Mpesa   MpesaConfig
	Receipt ReceiptConfig
	Catalog CatalogConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type ServerConfig struct {
	Host string
	Port int
}

type StoreConfig struct {
	// Path of the shared flat-file order store.
	Path string
}

type MpesaConfig struct {
	// PushURL is the STK push gateway endpoint on the local network.
	PushURL string
	// Paybill and Account are the published manual-payment details used
	// whenever the STK push does not go through.
	Paybill string
	Account string
}

type ReceiptConfig struct {
	// LogoPath points at the optional branding image. A missing file is
	// not an error; receipts render without the logo.
	LogoPath string
	Title    string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "oasis-springs"),
			Env:  getEnv("APP_ENV", "local"),
		},
		Server: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnvAsInt("HTTP_PORT", 8040),
		},
		Store: StoreConfig{
			Path: getEnv("ORDERS_FILE", "orders.csv"),
		},
		Mpesa: MpesaConfig{
			PushURL: getEnv("STK_PUSH_URL", "http://localhost:5000/stk_push"),
			Paybill: getEnv("MPESA_PAYBILL", "400200"),
			Account: getEnv("MPESA_ACCOUNT", "806312"),
		},
		Receipt: ReceiptConfig{
			LogoPath: getEnv("RECEIPT_LOGO", "logo.png"),
			Title:    getEnv("RECEIPT_TITLE", "Oasis Springs - Order Receipt"),
		},
	}

	catalog, err := LoadCatalog(getEnv("CATALOG_FILE", ""))
	if err != nil {
		return nil, err
	}
	cfg.Catalog = catalog

	return cfg, cfg.validate()
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

/* ================= helpers ================= */

func (c *Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("HTTP_PORT is invalid")
	}
	if c.Store.Path == "" {
		return fmt.Errorf("ORDERS_FILE is empty")
	}
	if c.Mpesa.PushURL == "" {
		return fmt.Errorf("STK_PUSH_URL is empty")
	}
	return c.Catalog.validate()
}

func getEnv(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
