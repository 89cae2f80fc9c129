package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the service and CLI.
type Config struct {
	Port        string
	Environment string

	DBDriver    string
	DBPath      string
	DatabaseURL string
	SeedPath    string
	SeedOnStart bool

	NominatimURL   string
	OSRMURL        string
	UserAgent      string
	GeocodeTimeout time.Duration
	RoutingTimeout time.Duration
	NominatimRPS   float64
	NominatimBurst int

	AllowedOrigins []string

	LogLevel  string
	LogFormat string

	OTLPEndpoint string
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := &Config{
		Port:         Get("PORT", "8080"),
		Environment:  Get("ENVIRONMENT", "development"),
		DBDriver:     strings.ToLower(Get("DB_DRIVER", DriverSQLite)),
		DBPath:       Get("DB_PATH", "data/carbon.db"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		SeedPath:     Get("SEED_PATH", "data/seeds/parts.json"),
		NominatimURL: strings.TrimRight(Get("NOMINATIM_URL", "https://nominatim.openstreetmap.org"), "/"),
		OSRMURL:      strings.TrimRight(Get("OSRM_URL", "https://router.project-osrm.org"), "/"),
		UserAgent:    Get("USER_AGENT", "carbon-logistics-service/1.0"),
		LogLevel:     Get("LOG_LEVEL", "info"),
		LogFormat:    Get("LOG_FORMAT", "json"),
		OTLPEndpoint: os.Getenv("OTLP_ENDPOINT"),
	}

	var err error
	if cfg.SeedOnStart, err = getBool("SEED_ON_START", true); err != nil {
		return nil, err
	}
	if cfg.GeocodeTimeout, err = getDuration("GEOCODE_TIMEOUT", 20*time.Second); err != nil {
		return nil, err
	}
	if cfg.RoutingTimeout, err = getDuration("ROUTING_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.NominatimRPS, err = getFloat("NOMINATIM_RPS", 1); err != nil {
		return nil, err
	}
	if cfg.NominatimBurst, err = getInt("NOMINATIM_BURST", 1); err != nil {
		return nil, err
	}
	cfg.AllowedOrigins = splitList(Get("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			return fmt.Errorf("config: DB_PATH is required for sqlite")
		}
	case DriverPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("config: DATABASE_URL is required for postgres")
		}
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.GeocodeTimeout <= 0 || c.RoutingTimeout <= 0 {
		return fmt.Errorf("config: timeouts must be positive")
	}
	if c.NominatimRPS <= 0 || c.NominatimBurst < 1 {
		return fmt.Errorf("config: NOMINATIM_RPS and NOMINATIM_BURST must be positive")
	}
	return nil
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: parse %s: %w", key, err)
	}
	return d, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: parse %s: %w", key, err)
	}
	return f, nil
}

func getInt(key string, fallback int) (int, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: parse %s: %w", key, err)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: parse %s: %w", key, err)
	}
	return b, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
