package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret       string        `env:"JWT_SECRET"`
	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL,  default=24h"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL, default=168h"`
	// RevokeRotatedRefresh blacklists the old refresh token when a new pair
	// is minted. Off by default (sliding session).
	RevokeRotatedRefresh bool `env:"AUTH_REVOKE_ROTATED_REFRESH, default=false"`

	AdminEmail  string `env:"ADMIN_EMAIL"`
	FrontendURL string `env:"FRONTEND_URL, default=http://localhost:3000"`

	Mongo MongoConfig
	Redis RedisConfig
	Mail  MailConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=consultancy"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MailConfig struct {
	SendGridAPIKey string `env:"SENDGRID_API_KEY"`
	FromName       string `env:"MAIL_FROM_NAME,    default=Aspire Career Consultancy"`
	FromAddress    string `env:"MAIL_FROM_ADDRESS, default=no-reply@aspirecareer.example"`
	Sandbox        bool   `env:"MAIL_SANDBOX,      default=false"`
	Workers        int    `env:"MAIL_WORKERS,      default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
