package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

const (
	CatalogSourceMemory   = "memory"
	CatalogSourcePostgres = "postgres"
)

type Config struct {
	ServiceName string
	LoggerLevel string

	HTTPPort        int
	ShutdownTimeout time.Duration

	CatalogSource string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	TelegramBotToken string

	// Mock ride lifecycle timings.
	VerificationDelay time.Duration
	RedirectDelay     time.Duration
	MatchingDelay     time.Duration
	DriverReplyDelay  time.Duration
	RecentRidesLimit  int
}

func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "varlife"))
	cfg.LoggerLevel = cast.ToString(getOrReturnDefault("LOGGER_LEVEL", "debug"))

	cfg.HTTPPort = cast.ToInt(getOrReturnDefault("HTTP_PORT", 8080))
	cfg.ShutdownTimeout = cast.ToDuration(getOrReturnDefault("SHUTDOWN_TIMEOUT", "10s"))

	cfg.CatalogSource = cast.ToString(getOrReturnDefault("CATALOG_SOURCE", CatalogSourceMemory))

	cfg.PostgresHost = cast.ToString(getOrReturnDefault("POSTGRES_HOST", "localhost"))
	cfg.PostgresPort = cast.ToString(getOrReturnDefault("POSTGRES_PORT", "5432"))
	cfg.PostgresUser = cast.ToString(getOrReturnDefault("POSTGRES_USER", "postgres"))
	cfg.PostgresPassword = cast.ToString(getOrReturnDefault("POSTGRES_PASSWORD", "1234"))
	cfg.PostgresDB = cast.ToString(getOrReturnDefault("POSTGRES_DB", "varlife"))

	cfg.TelegramBotToken = cast.ToString(getOrReturnDefault("TG_BOT_TOKEN", ""))

	cfg.VerificationDelay = cast.ToDuration(getOrReturnDefault("VERIFICATION_DELAY", "3s"))
	cfg.RedirectDelay = cast.ToDuration(getOrReturnDefault("REDIRECT_DELAY", "2s"))
	cfg.MatchingDelay = cast.ToDuration(getOrReturnDefault("MATCHING_DELAY", "3s"))
	cfg.DriverReplyDelay = cast.ToDuration(getOrReturnDefault("DRIVER_REPLY_DELAY", "2s"))
	cfg.RecentRidesLimit = cast.ToInt(getOrReturnDefault("RECENT_RIDES_LIMIT", 5))

	return cfg
}

// PostgresURL is the connection string shared by pgxpool and migrate.
func (c Config) PostgresURL() string {
	return "postgres://" + c.PostgresUser + ":" + c.PostgresPassword + "@" +
		c.PostgresHost + ":" + c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
