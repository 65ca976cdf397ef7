package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

type Config struct {
	Port     string
	GRPCPort string
	BaseURL  string
	IsDev    bool

	DB    DBConfig
	JWT   JWTConfig
	Redis RedisConfig

	KafkaBrokers []string
	KafkaTopic   string

	LoginRateLimit  int
	LoginRateWindow time.Duration

	GeoIPPath   string
	CORSOrigins []string
}

type JWTConfig struct {
	Access     string
	AccessExp  time.Duration
	Refresh    string
	RefreshExp time.Duration
}

type DBConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	// Path is the SQLite DSN, used only when Driver is "sqlite".
	Path string
}

type RedisConfig struct {
	Addr     string
	Password string
}

func Load(log *zap.Logger) *Config {
	cfg := &Config{
		Port:     getEnvDefault("APP_PORT", ":8080"),
		GRPCPort: os.Getenv("GRPC_PORT"),
		BaseURL:  strings.TrimSuffix(getEnvDefault("BASE_URL", "http://localhost:8080"), "/"),
		IsDev:    os.Getenv("ENV") == "development",
		JWT: JWTConfig{
			Access:     getEnv("ACCESS_SECRET", log),
			AccessExp:  parseDurationWithDays(getEnvDefault("ACCESS_EXP", "7d"), log),
			Refresh:    getEnv("REFRESH_SECRET", log),
			RefreshExp: parseDurationWithDays(getEnvDefault("REFRESH_EXP", "30d"), log),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},

		KafkaBrokers: splitAndTrim(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   getEnvDefault("KAFKA_TOPIC_EMAIL", "emails"),

		LoginRateLimit:  getEnvInt("LOGIN_RATE_LIMIT", 10, log),
		LoginRateWindow: parseDurationWithDays(getEnvDefault("LOGIN_RATE_WINDOW", "15m"), log),

		GeoIPPath:   os.Getenv("GEOIP_DB"),
		CORSOrigins: splitAndTrim(os.Getenv("CORS_ORIGINS")),
	}

	cfg.DB.Driver = getEnvDefault("DB_DRIVER", "postgres")
	switch cfg.DB.Driver {
	case "sqlite":
		cfg.DB.Path = getEnvDefault("DB_PATH", "file:linkhop.db")
	default:
		cfg.DB = DBConfig{
			Driver:   cfg.DB.Driver,
			Host:     getEnv("DB_HOST", log),
			Port:     getEnv("DB_PORT", log),
			User:     getEnv("DB_USER", log),
			Password: getEnv("DB_PASSWORD", log),
			Name:     getEnv("DB_NAME", log),
			SSLMode:  getEnvDefault("DB_SSLMODE", "disable"),
		}
	}

	return cfg
}

func getEnv(key string, log *zap.Logger) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	log.Error("Required environment variable is not set", zap.String("key", key))
	panic("missing required environment variable: " + key)
}

func getEnvDefault(key, fallback string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int, log *zap.Logger) int {
	valStr, exists := os.LookupEnv(key)
	if !exists || valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Error("Environment variable is not an int", zap.String("key", key), zap.Error(err))
		panic("invalid int value for environment variable: " + key)
	}
	return val
}

// parseDurationWithDays accepts time.ParseDuration syntax plus an "Nd" day suffix.
// Unparseable values yield 0.
func parseDurationWithDays(s string, log *zap.Logger) time.Duration {
	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil {
			log.Warn("Failed to parse TTL", zap.String("value", s), zap.Error(err))
			return 0
		}
		return time.Duration(days) * 24 * time.Hour
	}

	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Warn("Failed to parse duration", zap.String("value", s), zap.Error(err))
		return 0
	}
	return duration
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := []string{}
	for _, p := range strings.Split(s, ",") {
		pt := strings.TrimSpace(p)
		if pt != "" {
			parts = append(parts, pt)
		}
	}
	return parts
}
