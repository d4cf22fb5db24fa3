package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Binance struct {
		APIKey    string `envconfig:"BINANCE_API_KEY" required:"true"`
		SecretKey string `envconfig:"BINANCE_SECRET_KEY" required:"true"`
		BaseURL   string `envconfig:"BINANCE_BASE_URL" default:"https://testnet.binancefuture.com"`
	}

	Log struct {
		Level string `envconfig:"LOG_LEVEL" default:"info"`
		File  string `envconfig:"LOG_FILE" default:"trading_bot.log"`
	}

	Trading struct {
		DefaultAsset string `envconfig:"DEFAULT_ASSET" default:"USDT"`
	}
}

// Load reads the environment (plus an optional .env file) into a Config.
// Credential values are carried as-is: validating them is the trader's job.
func Load() (*Config, error) {
	// .env is optional; a missing file is not an error
	godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("fail to process environment: %w", err)
	}
	return &cfg, nil
}
