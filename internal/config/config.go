package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds runtime configuration parsed from environment variables.
// The defaults reproduce the demo store's hardcoded behavior, so an
// empty environment is fully functional.
type Config struct {
	// StorePath is the data file for the persisted key-value store. An
	// empty path keeps the session in memory only.
	StorePath string
	LogLevel  string

	TaxRate                    float64
	FreeShippingThresholdCents int64
	FlatShippingCents          int64

	PageSize        int
	ProcessingDelay time.Duration
}

// Load builds Config from the environment, reading a .env file first
// when one exists.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		StorePath:                  getEnv("STOREFRONT_DATA", ""),
		LogLevel:                   getEnv("LOG_LEVEL", "info"),
		TaxRate:                    getEnvFloat("TAX_RATE", 0.08),
		FreeShippingThresholdCents: getEnvInt64("FREE_SHIPPING_THRESHOLD_CENTS", 100_00),
		FlatShippingCents:          getEnvInt64("FLAT_SHIPPING_CENTS", 10_00),
		PageSize:                   getEnvInt("PAGE_SIZE", 12),
		ProcessingDelay:            getEnvDuration("CHECKOUT_DELAY", 2*time.Second),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			logrus.WithField("key", key).Warnf("config: invalid float %q, using %v", v, def)
			return def
		}
		return f
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			logrus.WithField("key", key).Warnf("config: invalid int %q, using %v", v, def)
			return def
		}
		return n
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			logrus.WithField("key", key).Warnf("config: invalid int %q, using %v", v, def)
			return def
		}
		return n
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			logrus.WithField("key", key).Warnf("config: invalid duration %q, using %v", v, def)
			return def
		}
		return d
	}
	return def
}
