package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// OperatorPINHash is the bcrypt hash every crew operator logs in with.
	OperatorPINHash string

	// Product and customer-type feeds
	FeedBaseURL string
	FeedTimeout time.Duration

	APIRateLimit       string // ulule/limiter format, e.g. "100-M"
	CORSAllowedOrigins []string
}

const (
	defaultFeedBaseURL = "https://raw.githubusercontent.com/Arnau-RR/FlyMarketBD/master/"
	defaultFeedTimeout = 20 * time.Second
	defaultJWTExpiry   = 12 * time.Hour
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "flymarket-pos")
	viper.SetDefault("OPERATOR_PIN_HASH", "")
	viper.SetDefault("FEED_BASE_URL", defaultFeedBaseURL)
	viper.SetDefault("FEED_TIMEOUT", "20s")
	viper.SetDefault("API_RATE_LIMIT", "300-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	// Defaults < .env file < actual environment variables.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Sales will be kept in memory only.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = defaultJWTExpiry
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "flymarket-pos"
	}

	cfg.OperatorPINHash = viper.GetString("OPERATOR_PIN_HASH")
	if cfg.OperatorPINHash == "" {
		log.Println("Warning: OPERATOR_PIN_HASH not set. Operator login will reject every attempt.")
	}

	cfg.FeedBaseURL = viper.GetString("FEED_BASE_URL")
	if !strings.HasSuffix(cfg.FeedBaseURL, "/") {
		cfg.FeedBaseURL += "/"
	}

	feedTimeoutStr := viper.GetString("FEED_TIMEOUT")
	feedTimeout, err := time.ParseDuration(feedTimeoutStr)
	if err != nil || feedTimeout <= 0 {
		feedTimeout = defaultFeedTimeout
		log.Printf("Warning: Invalid value for FEED_TIMEOUT ('%s'). Defaulting to %s.\n", feedTimeoutStr, feedTimeout.String())
	}
	cfg.FeedTimeout = feedTimeout

	cfg.APIRateLimit = viper.GetString("API_RATE_LIMIT")
	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	return cfg, nil
}
