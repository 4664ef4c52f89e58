package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	ServiceName  string
	LoggerLevel  string
	LoggerOutput string

	FirstCustomerID int64
	CurrencySymbol  string

	// StrictInput makes malformed numbers and dates fatal instead of reprompting.
	StrictInput bool
}

func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "carrental"))
	cfg.LoggerLevel = cast.ToString(getOrReturnDefault("LOGGER_LEVEL", "info"))
	cfg.LoggerOutput = cast.ToString(getOrReturnDefault("LOGGER_OUTPUT", "stderr"))

	cfg.FirstCustomerID = cast.ToInt64(getOrReturnDefault("FIRST_CUSTOMER_ID", 100))
	cfg.CurrencySymbol = cast.ToString(getOrReturnDefault("CURRENCY_SYMBOL", "$"))

	cfg.StrictInput = cast.ToBool(getOrReturnDefault("STRICT_INPUT", false))

	return cfg
}

// Default returns the configuration used when no environment is present.
func Default() Config {
	return Config{
		ServiceName:     "carrental",
		LoggerLevel:     "info",
		LoggerOutput:    "stderr",
		FirstCustomerID: 100,
		CurrencySymbol:  "$",
	}
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
