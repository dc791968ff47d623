package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logger    LoggerConfig    `yaml:"logger"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Redis     RedisConfig     `yaml:"redis"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Rabbit    RabbitConfig    `yaml:"rabbit"`
	Auth      AuthConfig      `yaml:"auth"`
	CheckIn   CheckInConfig   `yaml:"checkin"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"`
}

type LoggerConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// LogLevel maps the configured level string onto a zerolog level.
func (c LoggerConfig) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"eventsystem"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// RedisConfig drives the distributed rate limiter. When Addr is empty
// the limiter is disabled and requests pass through.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:""`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

type RateLimitConfig struct {
	Enabled        bool          `yaml:"enabled"         env:"RATE_LIMIT_ENABLED"         env-default:"true"`
	Capacity       int           `yaml:"capacity"        env:"RATE_LIMIT_CAPACITY"        env-default:"30"`
	RefillTokens   int           `yaml:"refill_tokens"   env:"RATE_LIMIT_REFILL_TOKENS"   env-default:"1"`
	RefillInterval time.Duration `yaml:"refill_interval" env:"RATE_LIMIT_REFILL_INTERVAL" env-default:"1s"`
	TTL            time.Duration `yaml:"ttl"             env:"RATE_LIMIT_TTL"             env-default:"10m"`
	Prefix         string        `yaml:"prefix"          env:"RATE_LIMIT_PREFIX"          env-default:"rl"`
}

// RabbitConfig configures the scan audit publisher. Empty URL disables it.
type RabbitConfig struct {
	URL   string `yaml:"url"   env:"RABBITMQ_URL"   env-default:""`
	Queue string `yaml:"queue" env:"RABBITMQ_QUEUE" env-default:"checkin.scanned"`
}

// AuthConfig holds the HMAC secret shared with the identity provider.
// An empty secret disables token verification: path/body identifiers
// are trusted as given and admin endpoints are open (internal
// deployments behind a trusted gateway).
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-default:""`
}

// CheckInConfig bounds when a token may be redeemed relative to the
// event start. Enforce=false admits at any time.
type CheckInConfig struct {
	Enforce      bool          `yaml:"enforce"       env:"CHECKIN_ENFORCE"       env-default:"true"`
	WindowBefore time.Duration `yaml:"window_before" env:"CHECKIN_WINDOW_BEFORE" env-default:"2h"`
	WindowAfter  time.Duration `yaml:"window_after"  env:"CHECKIN_WINDOW_AFTER"  env-default:"6h"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"5m"`
}

// TelegramConfig points the ops notifier at a chat. Empty token disables it.
type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`
}

// MustLoad reads config.yaml (or the file CONFIG_PATH points at) when
// present, then lets environment variables override it. Without a file
// the env defaults alone configure the engine.
func MustLoad() *Config {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}

	var err error
	if _, statErr := os.Stat(path); statErr == nil {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	return &cfg
}
