package config

import (
	"flag"
	"github.com/joho/godotenv"
	"os"
	"strconv"
)

const (
	defaultServerAddress      = ":8080"
	defaultDatabaseDSN        = ""
	defaultLogLevel           = "debug"
	defaultAuthSecret         = "9c1185a5c5e9fc54612808977ee8f548"
	defaultReturnWindowDays   = 7
	defaultPaymentApproveRate = 1.0
)

type Config struct {
	ServerAddr         string
	DatabaseDSN        string
	LogLevel           string
	AuthSecret         string
	ReturnWindowDays   int
	PaymentApproveRate float64
}

// New returns new Config built from command line flags and environment variables
func New() (*Config, error) {
	cfg := Config{}

	// initialize flags
	fs := flag.NewFlagSet("shopmart", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerAddr, "a", defaultServerAddress, "shop mart server address")
	fs.StringVar(&cfg.DatabaseDSN, "d", defaultDatabaseDSN, "shop mart database DSN")
	fs.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")
	fs.StringVar(&cfg.AuthSecret, "s", defaultAuthSecret, "hex-encoded auth token key")
	fs.IntVar(&cfg.ReturnWindowDays, "w", defaultReturnWindowDays, "order return window in days")
	fs.Float64Var(&cfg.PaymentApproveRate, "r", defaultPaymentApproveRate, "payment approval rate from 0 to 1")

	// pull .env into environment if present
	_ = godotenv.Load()

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	// if environment variable is set, then using it
	if runAddrEnv := os.Getenv("RUN_ADDRESS"); runAddrEnv != "" {
		cfg.ServerAddr = runAddrEnv
	}
	if dataBaseURIEnv := os.Getenv("DATABASE_URI"); dataBaseURIEnv != "" {
		cfg.DatabaseDSN = dataBaseURIEnv
	}
	if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
		cfg.LogLevel = logLevelEnv
	}
	if authSecretEnv := os.Getenv("AUTH_SECRET"); authSecretEnv != "" {
		cfg.AuthSecret = authSecretEnv
	}
	if windowEnv := os.Getenv("RETURN_WINDOW_DAYS"); windowEnv != "" {
		if days, err := strconv.Atoi(windowEnv); err == nil {
			cfg.ReturnWindowDays = days
		}
	}
	if rateEnv := os.Getenv("PAYMENT_APPROVE_RATE"); rateEnv != "" {
		if rate, err := strconv.ParseFloat(rateEnv, 64); err == nil {
			cfg.PaymentApproveRate = rate
		}
	}

	return &cfg, nil
}
