package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv  string `env:"APP_ENV" env-default:"development"`
	AppPort string `env:"APP_PORT" env-default:"8080"`

	DBHost     string `env:"DB_HOST" env-required:"true"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"`
	DBPort     string `env:"DB_PORT" env-default:"5432"`
	DBSSLMode  string `env:"DB_SSLMODE" env-default:"disable"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" env-default:"0"`

	// SessionIdleTimeout is how long an untouched cart survives.
	SessionIdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT" env-default:"30m"`
	SessionCookieName  string        `env:"SESSION_COOKIE_NAME" env-default:"eshop_session"`

	JWTSecret string `env:"JWT_SECRET"`

	// InternalAPIKey lets trusted services bypass the shopper rate tiers.
	InternalAPIKey string `env:"INTERNAL_API_KEY"`

	OrderStrictTransitions bool `env:"ORDER_STRICT_TRANSITIONS" env-default:"false"`

	MigrationsPath string `env:"MIGRATIONS_PATH" env-default:"./migrations"`

	HTTPReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	HTTPWriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	HTTPIdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UsesRedis reports whether carts should be kept in redis rather than memory.
func (c *Config) UsesRedis() bool {
	return c.RedisAddr != ""
}
