package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"ThynxSite/database/postgres"
	"ThynxSite/pkg/redis"
	"ThynxSite/pkg/smtp"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Env struct {
	AppEnv  string
	AppPort string

	DBDriver   string
	Postgres   postgres.Config
	SQLitePath string

	Redis redis.Options

	SessionTTL   time.Duration
	CookieSecure bool

	SMTP smtp.Config

	SeedOnStart bool
}

// LoadEnv reads .env files (a missing file is fine) and then the process
// environment.
func LoadEnv(files ...string) (*Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	env := &Env{
		AppEnv:  getString("APP_ENV", "development"),
		AppPort: getString("APP_PORT", "3000"),

		DBDriver: getString("DB_DRIVER", DriverPostgres),
		Postgres: postgres.Config{
			Host:         getString("DB_HOST", "localhost"),
			Port:         getString("DB_PORT", "5432"),
			User:         getString("DB_USER", "postgres"),
			Password:     os.Getenv("DB_PASSWORD"),
			Name:         getString("DB_NAME", "thynx"),
			SSLMode:      getString("DB_SSLMODE", "disable"),
			MaxOpenConns: getInt("DB_MAX_OPEN_CONNS", 25),
		},
		SQLitePath: getString("SQLITE_PATH", "./storage/thynx.db"),

		Redis: redis.Options{
			Address:  os.Getenv("REDIS_ADDRESS"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getInt("REDIS_DB", 0),
		},

		SessionTTL:   getDuration("SESSION_TTL", 12*time.Hour),
		CookieSecure: getBool("COOKIE_SECURE", false),

		SMTP: smtp.Config{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     os.Getenv("SMTP_PORT"),
			Mail:     os.Getenv("SMTP_MAIL"),
			Password: os.Getenv("SMTP_PASSWORD"),
			NotifyTo: os.Getenv("CONTACT_NOTIFY_TO"),
		},

		SeedOnStart: getBool("SEED_ON_START", false),
	}

	if env.DBDriver != DriverPostgres && env.DBDriver != DriverSQLite {
		return nil, errors.New("DB_DRIVER must be postgres or sqlite")
	}

	return env, nil
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
