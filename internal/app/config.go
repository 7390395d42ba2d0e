package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries everything the seed pipeline reads from the environment.
// MONGO_URI is the only required value; everything else has a default.
type Config struct {
	MongoURI string
	Database string

	DaysBack        int
	WeekdayBase     int
	WeekendBase     int
	MinOrdersPerDay int

	ExtraCustomers int
	ResetSynthetic bool

	CatalogPath string

	// Seed pins the random source for reproducible runs; 0 seeds from the
	// clock.
	Seed int64

	// Timeout bounds the whole run; 0 disables it.
	Timeout time.Duration
}

func LoadConfig() (Config, error) {
	uri := strings.TrimSpace(os.Getenv("MONGO_URI"))
	if uri == "" {
		return Config{}, fmt.Errorf("missing MONGO_URI environment variable")
	}

	cfg := Config{
		MongoURI:        uri,
		Database:        envStr("MONGO_DATABASE", "sales"),
		DaysBack:        envInt("DAYS_BACK", 180),
		WeekdayBase:     envInt("WEEKDAY_BASE_ORDERS", 80),
		WeekendBase:     envInt("WEEKEND_BASE_ORDERS", 40),
		MinOrdersPerDay: envInt("MIN_ORDERS_PER_DAY", 20),
		ExtraCustomers:  envInt("EXTRA_CUSTOMERS", 200),
		ResetSynthetic:  envBool("RESET_SYNTHETIC", false),
		CatalogPath:     os.Getenv("CATALOG_XLSX"),
		Seed:            envInt64("SEED", 0),
	}
	if d := os.Getenv("SEED_TIMEOUT"); d != "" {
		timeout, err := time.ParseDuration(d)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SEED_TIMEOUT %q: %w", d, err)
		}
		cfg.Timeout = timeout
	}
	if cfg.DaysBack <= 0 {
		return Config{}, fmt.Errorf("DAYS_BACK must be positive, got %d", cfg.DaysBack)
	}
	return cfg, nil
}

func envStr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
