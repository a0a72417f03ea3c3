package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	RunMigrations bool

	// Identity tokens are issued by the external auth provider and verified here.
	JWTSecret         string
	JWTIssuer         string
	JWTExpiryDuration time.Duration // only used when minting development tokens
	SessionCookieName string

	CORSAllowedOrigins []string
	RateLimit          string

	DashboardRecentLimit int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "")
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("SESSION_COOKIE_NAME", "sb-access-token")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("DASHBOARD_RECENT_LIMIT", 5)
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:       v.GetString("PGSQL_URL"),
		Port:              v.GetString("PORT"),
		IsProduction:      v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:     v.GetBool("ENABLE_DB_CHECK"),
		RunMigrations:     v.GetBool("RUN_MIGRATIONS"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		JWTIssuer:         v.GetString("JWT_ISSUER"),
		SessionCookieName: v.GetString("SESSION_COOKIE_NAME"),
		RateLimit:         v.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Load JWT Expiry Duration (e.g., "60m", "1h")
	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	if len(cfg.CORSAllowedOrigins) == 0 {
		return nil, errors.New("CORS_ALLOWED_ORIGINS must list at least one origin")
	}

	cfg.DashboardRecentLimit = v.GetInt("DASHBOARD_RECENT_LIMIT")
	if cfg.DashboardRecentLimit <= 0 {
		cfg.DashboardRecentLimit = 5
		log.Printf("Warning: DASHBOARD_RECENT_LIMIT must be positive. Defaulting to %d.\n", cfg.DashboardRecentLimit)
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
