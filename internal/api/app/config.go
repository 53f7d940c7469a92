package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Issuer string `env:"API_ISSUER" envDefault:"scanhub-api"` // issuer claim for tokens

	DatabaseFile string `env:"API_DATABASE_FILE" envDefault:"scanhub.db"` // path to SQLite database file
	PepperFile   string `env:"API_PEPPER_FILE" envDefault:"pepper"`       // path to password hashing pepper

	Env       string `env:"ENV" envDefault:"dev"`         // environment (dev, staging, prod)
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`  // log level (debug, info, warn, error)
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"` // log format (json, text)

	Port int `env:"PORT" envDefault:"8080"` // HTTP server port

	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`

	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"15m"` // access token lifetime
	OTPTTL         time.Duration `env:"OTP_TTL" envDefault:"15m"`          // activation code validity window
}

// LoadConfig parses configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
