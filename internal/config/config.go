package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr    string `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN   string `env:"DATABASE_DSN" envDefault:""`
	JWTSecret     string `env:"JWT_SECRET" envDefault:"secret"`
	RedisAddr     string `env:"REDIS_ADDRESS" envDefault:""`
	AttachmentDir string `env:"ATTACHMENT_DIR" envDefault:"attachments"`
	BaseURL       string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	SMTPHost      string `env:"SMTP_HOST" envDefault:""`
	SMTPPort      int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser      string `env:"SMTP_USER" envDefault:""`
	SMTPPassword  string `env:"SMTP_PASSWORD" envDefault:""`
	SMTPFrom      string `env:"SMTP_FROM" envDefault:"noreply@elevate.local"`
}

// ServerConfig server settings model
type ServerConfig struct {
	ListenAddr  string
	LogLevel    string
	JWTSecret   string
	DatabaseDSN string
	RedisAddr   string
}

// AttachmentConfig settings of the top-up attachment store
type AttachmentConfig struct {
	Dir     string
	BaseURL string
}

// MailConfig settings of the outgoing mail dispatcher
type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// PayoutConfig settings of the package maturity payout worker
type PayoutConfig struct {
	BatchSize    int
	PollInterval time.Duration
}

// Config service settings model
type Config struct {
	Server     ServerConfig
	Attachment AttachmentConfig
	Mail       MailConfig
	Payout     PayoutConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server   = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN      = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		secret   = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		redis    = pflag.StringP("redis", "r", args.RedisAddr, "Redis address used for shared rate limiting.")
		dir      = pflag.StringP("attachments", "f", args.AttachmentDir, "Directory for top-up attachments.")
		baseURL  = pflag.StringP("base_url", "b", args.BaseURL, "Public base URL for attachment links.")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:  *server,
			LogLevel:    *logLevel,
			DatabaseDSN: *DSN,
			JWTSecret:   *secret,
			RedisAddr:   *redis,
		},
		Attachment: AttachmentConfig{
			Dir:     *dir,
			BaseURL: *baseURL,
		},
		Mail: MailConfig{
			Host:     args.SMTPHost,
			Port:     args.SMTPPort,
			User:     args.SMTPUser,
			Password: args.SMTPPassword,
			From:     args.SMTPFrom,
		},
		Payout: PayoutConfig{
			BatchSize:    10,
			PollInterval: time.Minute,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
			JWTSecret:   "secret",
		},
		Attachment: AttachmentConfig{
			Dir:     "attachments",
			BaseURL: "http://localhost:8080",
		},
		Mail: MailConfig{
			From: "noreply@elevate.local",
		},
		Payout: PayoutConfig{
			BatchSize:    10,
			PollInterval: time.Minute,
		},
	}
}
