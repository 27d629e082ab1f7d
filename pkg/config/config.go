package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	RedisURL      string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string
	JWTIssuer     string

	// QRTokenSecret keys the one-way transform behind wallet tokens.
	// Changing it rotates the derivation; previously issued tokens keep
	// resolving because lookups go by stored value.
	QRTokenSecret string

	// MaxTransferAmount caps a single token-authorized credit.
	MaxTransferAmount decimal.Decimal

	// TransferRateLimit uses the "<count>-<period>" limiter format, e.g. "100-H".
	TransferRateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "ewallet-backend")
	viper.SetDefault("QR_TOKEN_SECRET", "")
	viper.SetDefault("MAX_TRANSFER_AMOUNT", "1000")
	viper.SetDefault("TRANSFER_RATE_LIMIT", "100-H")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.RedisURL = viper.GetString("REDIS_URL")

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

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "ewallet-backend"
	}

	cfg.QRTokenSecret = viper.GetString("QR_TOKEN_SECRET")
	if cfg.QRTokenSecret == "" {
		// Token issuance fails hard without it; enrollment is unusable.
		log.Println("Warning: QR_TOKEN_SECRET environment variable not set. Token issuance will fail.")
	}

	maxTransferStr := viper.GetString("MAX_TRANSFER_AMOUNT")
	maxTransfer, err := decimal.NewFromString(maxTransferStr)
	if err != nil || !maxTransfer.IsPositive() {
		maxTransfer = decimal.NewFromInt(1000)
		if maxTransferStr != "" {
			log.Printf("Warning: Invalid value for MAX_TRANSFER_AMOUNT ('%s'). Defaulting to %s.\n", maxTransferStr, maxTransfer.String())
		}
	}
	cfg.MaxTransferAmount = maxTransfer

	cfg.TransferRateLimit = viper.GetString("TRANSFER_RATE_LIMIT")
	if cfg.TransferRateLimit == "" {
		cfg.TransferRateLimit = "100-H"
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	return cfg, nil
}
