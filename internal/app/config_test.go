package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigRequiresMongoURI(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGO_URI")
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "sales", cfg.Database)
	assert.Equal(t, 180, cfg.DaysBack)
	assert.Equal(t, 80, cfg.WeekdayBase)
	assert.Equal(t, 40, cfg.WeekendBase)
	assert.Equal(t, 20, cfg.MinOrdersPerDay)
	assert.Equal(t, 200, cfg.ExtraCustomers)
	assert.False(t, cfg.ResetSynthetic)
	assert.Zero(t, cfg.Seed)
	assert.Zero(t, cfg.Timeout)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DATABASE", "sales_test")
	t.Setenv("DAYS_BACK", "7")
	t.Setenv("WEEKDAY_BASE_ORDERS", "10")
	t.Setenv("WEEKEND_BASE_ORDERS", "5")
	t.Setenv("EXTRA_CUSTOMERS", "0")
	t.Setenv("RESET_SYNTHETIC", "true")
	t.Setenv("SEED", "12345")
	t.Setenv("SEED_TIMEOUT", "90s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "sales_test", cfg.Database)
	assert.Equal(t, 7, cfg.DaysBack)
	assert.Equal(t, 10, cfg.WeekdayBase)
	assert.Equal(t, 5, cfg.WeekendBase)
	assert.Zero(t, cfg.ExtraCustomers)
	assert.True(t, cfg.ResetSynthetic)
	assert.Equal(t, int64(12345), cfg.Seed)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
}

func TestLoadConfigRejectsBadTimeout(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("SEED_TIMEOUT", "ninety seconds")
	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigRejectsNonPositiveWindow(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("DAYS_BACK", "0")
	_, err := LoadConfig()
	require.Error(t, err)
}
