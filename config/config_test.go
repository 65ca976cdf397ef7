package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoad_SQLiteDefaults(t *testing.T) {
	t.Setenv("ACCESS_SECRET", "a")
	t.Setenv("REFRESH_SECRET", "r")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("BASE_URL", "https://lnk.example/")
	t.Setenv("KAFKA_BROKERS", " k1:9092, ,k2:9092 ")

	cfg := Load(zap.NewNop())

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "https://lnk.example", cfg.BaseURL)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "file:linkhop.db", cfg.DB.Path)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.AccessExp)
	assert.Equal(t, 30*24*time.Hour, cfg.JWT.RefreshExp)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 10, cfg.LoginRateLimit)
	assert.Equal(t, 15*time.Minute, cfg.LoginRateWindow)
}

func TestLoad_PostgresRequiresHost(t *testing.T) {
	t.Setenv("ACCESS_SECRET", "a")
	t.Setenv("REFRESH_SECRET", "r")
	t.Setenv("DB_DRIVER", "postgres")

	require.Panics(t, func() { Load(zap.NewNop()) })
}

func TestParseDurationWithDays(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"7d", 7 * 24 * time.Hour},
		{"1d", 24 * time.Hour},
		{"90m", 90 * time.Minute},
		{"xd", 0},
		{"garbage", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDurationWithDays(tt.in, zap.NewNop()))
		})
	}
}
