// Package config reads the runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slices"
)

var (
	ErrAPIURLNotSet  = errors.New("environment variable API_URL must be set")
	ErrAPIURLInvalid = errors.New("environment variable API_URL must be a valid URL")
)

// Config is the runtime configuration.
type Config struct {
	APIURL    *url.URL
	Port      string
	GinMode   string
	LogFormat string // "human" or "json". Empty selects by GinMode
	DataDir   string

	// Database is only set when DB_HOST is set. Otherwise, the SQLite
	// database in DataDir is used.
	Database *Database
}

// Database is the configuration for a PostgreSQL database.
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN returns the connection string for the database.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// Load reads the configuration from the environment.
//
// Variables defined in the files passed in are loaded into the
// environment first, without overriding already set variables.
// Files that do not exist are ignored.
func Load(files ...string) (Config, error) {
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}

		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("could not load %s: %w", f, err)
		}
	}

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		return Config{}, ErrAPIURLNotSet
	}

	u, err := url.Parse(apiURL)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrAPIURLInvalid, err)
	}

	c := Config{
		APIURL:    u,
		Port:      getEnv("PORT", "8080"),
		GinMode:   getEnv("GIN_MODE", gin.ReleaseMode),
		LogFormat: os.Getenv("LOG_FORMAT"),
		DataDir:   getEnv("DATA_DIR", filepath.Join(".", "data")),
	}

	if host, ok := os.LookupEnv("DB_HOST"); ok {
		c.Database = &Database{
			Host:     host,
			Port:     getEnv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "ledger"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		}
	}

	return c, c.Validate()
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	var errs []error

	if c.APIURL == nil || c.APIURL.Scheme == "" || c.APIURL.Host == "" {
		errs = append(errs, ErrAPIURLInvalid)
	}

	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port '%s': must be a number between 1 and 65535", c.Port))
	}

	if !slices.Contains([]string{gin.DebugMode, gin.ReleaseMode, gin.TestMode}, c.GinMode) {
		errs = append(errs, fmt.Errorf("invalid GIN_MODE '%s'", c.GinMode))
	}

	if !slices.Contains([]string{"", "human", "json"}, c.LogFormat) {
		errs = append(errs, fmt.Errorf("invalid LOG_FORMAT '%s': must be 'human' or 'json'", c.LogFormat))
	}

	if c.Database != nil && c.Database.User == "" {
		errs = append(errs, errors.New("DB_USER must be set when DB_HOST is set"))
	}

	return errors.Join(errs...)
}

// HumanLogs reports if logs should be written in a human readable format.
//
// If LOG_FORMAT is not set, it defaults to human readable for development
// and JSON for release.
func (c Config) HumanLogs() bool {
	if c.LogFormat == "" {
		return c.GinMode == gin.DebugMode
	}

	return c.LogFormat == "human"
}

// SQLitePath returns the path of the SQLite database file.
func (c Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "ledger.db")
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
