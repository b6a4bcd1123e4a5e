// Package config resolves runtime settings from flags, the environment
// and an optional .env file, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/vncsmyrnk/footvote/internal/calendar"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Addr           string
	Driver         string
	DatabaseURL    string
	SQLitePath     string
	Timezone       string
	WindowSize     int
	ExtendCount    int
	AllowedOrigins []string
	LogLevel       string
	LogFormat      string

	Location *time.Location
}

// Load reads .env when present and parses args (usually os.Args[1:]).
func Load(name string, args []string) (Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found")
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	return Parse(fs, args, os.Getenv)
}

// Parse registers the shared flags on fs, parses args and falls back to
// getenv for everything not given on the command line.
func Parse(fs *flag.FlagSet, args []string, getenv func(string) string) (Config, error) {
	var (
		cfg            Config
		windowSize     string
		extendCount    string
		allowedOrigins string
	)

	fs.StringVar(&cfg.Addr, "addr", envOr(getenv, "ADDR", "0.0.0.0:8080"), "HTTP listen address")
	fs.StringVar(&cfg.Driver, "db-driver", envOr(getenv, "DATABASE_DRIVER", DriverPostgres), "Database driver (postgres or sqlite)")
	fs.StringVar(&cfg.DatabaseURL, "db-url", postgresURL(getenv), "Postgres connection string")
	fs.StringVar(&cfg.SQLitePath, "sqlite-path", envOr(getenv, "SQLITE_PATH", "footvote.db"), "SQLite database file")
	fs.StringVar(&cfg.Timezone, "timezone", envOr(getenv, "TIMEZONE", "Europe/Prague"), "Time zone deciding which day is today")
	fs.StringVar(&windowSize, "window-size", envOr(getenv, "WINDOW_SIZE", "8"), "Number of Wednesdays in the initial window")
	fs.StringVar(&extendCount, "extend-count", envOr(getenv, "EXTEND_COUNT", "4"), "Default number of Wednesdays added when extending the window")
	fs.StringVar(&allowedOrigins, "allowed-origins", envOr(getenv, "ALLOWED_ORIGINS", "*"), "Comma separated CORS origins")
	fs.StringVar(&cfg.LogLevel, "log-level", envOr(getenv, "LOG_LEVEL", "info"), "Log level")
	fs.StringVar(&cfg.LogFormat, "log-format", envOr(getenv, "LOG_FORMAT", "text"), "Log format (text or json)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	var err error
	if cfg.WindowSize, err = dateCount("window size", windowSize); err != nil {
		return Config{}, err
	}
	if cfg.ExtendCount, err = dateCount("extend count", extendCount); err != nil {
		return Config{}, err
	}

	for _, origin := range strings.Split(allowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	switch cfg.Driver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -db-url, DATABASE_URL or POSTGRES_* env)")
		}
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			return Config{}, errors.New("sqlite path required")
		}
	default:
		return Config{}, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	if cfg.Location, err = time.LoadLocation(cfg.Timezone); err != nil {
		return Config{}, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return Config{}, fmt.Errorf("unsupported log format %q", cfg.LogFormat)
	}

	return cfg, nil
}

// ConfigureLogger applies the log settings to the standard logrus logger.
func (c Config) ConfigureLogger() {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if c.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func postgresURL(getenv func(string) string) string {
	if url := getenv("DATABASE_URL"); url != "" {
		return url
	}

	host, dbName := getenv("POSTGRES_HOST"), getenv("POSTGRES_DB")
	if host == "" || dbName == "" {
		return ""
	}
	port := getenv("POSTGRES_PORT")
	if port == "" {
		port = "5432"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getenv("POSTGRES_USER"), getenv("POSTGRES_PASSWORD"), host, port, dbName)
}

func envOr(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

func dateCount(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 || n > calendar.MaxDates {
		return 0, fmt.Errorf("invalid %s %q: must be between 1 and %d", name, value, calendar.MaxDates)
	}
	return n, nil
}
