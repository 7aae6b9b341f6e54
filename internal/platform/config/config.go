package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/reolmarked/shelf_market_app/internal/utils"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	CORSOrigins  []string
	JWTSecret    string
	JWTExpiry    time.Duration
	JWTIssuer    string
	OperatorUser string
	OperatorHash string // bcrypt hash of the operator password
}

// LoadConfig loads configuration from environment variables and a .env file
// if one is present. Environment variables win over .env values.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "shelf-market-app")
	viper.SetDefault("OPERATOR_USERNAME", "admin")
	viper.SetDefault("OPERATOR_PASSWORD", "")
	viper.SetDefault("OPERATOR_PASSWORD_HASH", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.CORSOrigins = viper.GetStringSlice("CORS_ORIGINS")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiry, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiry = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiry)
	}
	cfg.JWTExpiry = jwtExpiry
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.OperatorUser = viper.GetString("OPERATOR_USERNAME")
	cfg.OperatorHash = viper.GetString("OPERATOR_PASSWORD_HASH")
	if cfg.OperatorHash == "" {
		// A plaintext password can be supplied instead; hash it at startup so
		// the rest of the app only ever sees the hash.
		password := viper.GetString("OPERATOR_PASSWORD")
		if password == "" {
			password = "admin"
			log.Println("Warning: Neither OPERATOR_PASSWORD_HASH nor OPERATOR_PASSWORD set. Using default credentials, NOT for production.")
		}
		hash, err := utils.HashPassword(password)
		if err != nil {
			return nil, err
		}
		cfg.OperatorHash = hash
	}

	return cfg, nil
}
