// internal/infrastructure/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"departure-board-service/internal/domain/entity"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string
	LogLevel   string
	LogFile    string

	// Feed
	FeedBaseURL           string
	FeedAccessKey         string
	DepartureAirport      string
	FeedPageLimit         int
	FeedMaxPages          int
	FeedTimeout           time.Duration
	FeedRequestsPerSecond float64
	FeedCacheTTL          time.Duration

	// Board
	BoardTimezone  string
	BoardLanguage  entity.Language
	DelayThreshold time.Duration
	OutputHTMLPath string
	OutputJSONPath string
	RefreshSeconds int
	LoopInterval   time.Duration

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MongoDB
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// Postgres
	PostgresDSN string

	// Google Cloud Storage
	GCSBucket          string
	GCSObjectPrefix    string
	GCSCredentialsFile string

	// Prometheus
	PushgatewayURL string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion: getEnv("APP_VERSION", "1.0.0"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFile:    getEnv("LOG_FILE", ""),

		FeedBaseURL:           strings.TrimRight(getEnv("FEED_BASE_URL", "https://api.aviationstack.com/v1"), "/"),
		FeedAccessKey:         getEnv("FEED_ACCESS_KEY", ""),
		DepartureAirport:      strings.ToUpper(getEnv("DEPARTURE_AIRPORT", "HND")),
		FeedPageLimit:         getEnvAsInt("FEED_PAGE_LIMIT", 100),
		FeedMaxPages:          getEnvAsInt("FEED_MAX_PAGES", 10),
		FeedTimeout:           time.Duration(getEnvAsInt("FEED_TIMEOUT", 30)) * time.Second,
		FeedRequestsPerSecond: getEnvAsFloat("FEED_REQUESTS_PER_SECOND", 1),
		FeedCacheTTL:          time.Duration(getEnvAsInt("FEED_CACHE_TTL", 900)) * time.Second,

		BoardTimezone:  getEnv("BOARD_TIMEZONE", "Asia/Tokyo"),
		BoardLanguage:  entity.Language(strings.ToLower(getEnv("BOARD_LANGUAGE", string(entity.LangJa)))),
		DelayThreshold: time.Duration(getEnvAsInt("DELAY_THRESHOLD_MINUTES", 5)) * time.Minute,
		OutputHTMLPath: getEnv("OUTPUT_HTML_PATH", "departures.html"),
		OutputJSONPath: getEnv("OUTPUT_JSON_PATH", "departures.json"),
		RefreshSeconds: getEnvAsInt("REFRESH_SECONDS", 300),
		LoopInterval:   time.Duration(getEnvAsInt("LOOP_INTERVAL", 0)) * time.Second,

		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		MongoURI:      getEnv("MONGODB_DSN", ""),
		MongoDB:       getEnv("MONGO_DB", "departures"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		PostgresDSN: getEnv("POSTGRES_DSN", ""),

		GCSBucket:          getEnv("GCS_BUCKET", ""),
		GCSObjectPrefix:    getEnv("GCS_OBJECT_PREFIX", "departures/"),
		GCSCredentialsFile: getEnv("GCS_CREDENTIALS_FILE", ""),

		PushgatewayURL: getEnv("PUSHGATEWAY_URL", ""),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the values the board cannot run without
func (c *Config) Validate() error {
	var errs []error
	if c.FeedAccessKey == "" {
		errs = append(errs, errors.New("FEED_ACCESS_KEY is required"))
	}
	if len(c.DepartureAirport) != 3 {
		errs = append(errs, fmt.Errorf("DEPARTURE_AIRPORT must be an IATA code, got %q", c.DepartureAirport))
	}
	if c.FeedPageLimit <= 0 || c.FeedMaxPages <= 0 {
		errs = append(errs, errors.New("FEED_PAGE_LIMIT and FEED_MAX_PAGES must be positive"))
	}
	if !isSupportedLanguage(c.BoardLanguage) {
		errs = append(errs, fmt.Errorf("BOARD_LANGUAGE %q is not supported", c.BoardLanguage))
	}
	if c.LoopMode() && c.FeedCacheTTL > 0 && c.FeedCacheTTL < c.LoopInterval {
		errs = append(errs, errors.New("FEED_CACHE_TTL must be zero or at least LOOP_INTERVAL"))
	}
	if _, err := time.LoadLocation(c.BoardTimezone); err != nil {
		errs = append(errs, fmt.Errorf("BOARD_TIMEZONE: %w", err))
	}
	return errors.Join(errs...)
}

// Location returns the board's display time zone
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.BoardTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SnapshotTTL is how long the feed client may fall back to its last good
// snapshot. A one-shot run never fetches twice, so it gets none.
func (c *Config) SnapshotTTL() time.Duration {
	if !c.LoopMode() {
		return 0
	}
	return c.FeedCacheTTL
}

// LoopMode reports whether the process keeps running and refreshing
func (c *Config) LoopMode() bool {
	return c.LoopInterval > 0
}

func isSupportedLanguage(lang entity.Language) bool {
	for _, l := range entity.SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
