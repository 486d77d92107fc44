package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

const (
	envPrefix         = "FSTR_"
	defaultConfigPath = "config/config.yaml"
)

type ServerConfig struct {
	Port            int           `yaml:"port" validate:"required,min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"required"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"required"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"required"`
	NotifyTimeout   time.Duration `yaml:"notify_timeout" validate:"required"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes" validate:"required,min=1"`
}

type DatabaseConfig struct {
	Host            string        `yaml:"host" validate:"required"`
	Port            int           `yaml:"port" validate:"required,min=1,max=65535"`
	User            string        `yaml:"login" validate:"required"`
	Password        string        `yaml:"pass"`
	Name            string        `yaml:"name" validate:"required"`
	SSLMode         string        `yaml:"sslmode" validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int           `yaml:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	PingTimeout     time.Duration `yaml:"ping_timeout" validate:"required"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"required,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"required,oneof=json console"`
}

// EmailConfig: пустой SMTPHost: письма не отправляются.
type EmailConfig struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port" validate:"required_with=SMTPHost"`
	SMTPUser     string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`
	FromEmail    string `yaml:"from_email" validate:"required_with=SMTPHost"`
}

// TelegramConfig: пустой токен: уведомления модераторам выключены.
type TelegramConfig struct {
	Token   string        `yaml:"token"`
	ChatID  int64         `yaml:"chat_id" validate:"required_with=Token"`
	Timeout time.Duration `yaml:"timeout" validate:"required_with=Token"`
}

type PDFConfig struct {
	FontPath string `yaml:"font_path"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Email    EmailConfig    `yaml:"email"`
	Telegram TelegramConfig `yaml:"telegram"`
	PDF      PDFConfig      `yaml:"pdf"`
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:            8000,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			NotifyTimeout:   5 * time.Second,
			MaxBodyBytes:    32 << 20,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
			PingTimeout:     5 * time.Second,
		},
		Log:      LogConfig{Level: "info", Format: "json"},
		Telegram: TelegramConfig{Timeout: 10 * time.Second},
		PDF:      PDFConfig{FontPath: "assets/fonts/DejaVuSans.ttf"},
	}
}

// LoadConfig: значения по умолчанию -> config.yaml (если есть) -> переменные FSTR_*.
// Путь к yaml можно переопределить через FSTR_CONFIG.
func LoadConfig() (*Config, error) {
	cfg := defaults()

	path := os.Getenv(envPrefix + "CONFIG")
	if path == "" {
		path = defaultConfigPath
	}
	if err := loadYAML(path, &cfg); err != nil {
		return nil, err
	}
	if err := loadEnv(&cfg); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return &cfg, nil
}

func loadYAML(path string, cfg *Config) error {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// loadEnv: FSTR_DB_HOST -> db_host и т.д.
func loadEnv(cfg *Config) error {
	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return fmt.Errorf("load env: %w", err)
	}

	str := func(key string, dst *string) {
		if k.Exists(key) {
			*dst = k.String(key)
		}
	}
	num := func(key string, dst *int) {
		if k.Exists(key) {
			*dst = k.Int(key)
		}
	}
	dur := func(key string, dst *time.Duration) {
		if k.Exists(key) {
			*dst = k.Duration(key)
		}
	}

	str("db_host", &cfg.Database.Host)
	num("db_port", &cfg.Database.Port)
	str("db_login", &cfg.Database.User)
	str("db_pass", &cfg.Database.Password)
	str("db_name", &cfg.Database.Name)
	str("db_sslmode", &cfg.Database.SSLMode)
	num("db_max_open_conns", &cfg.Database.MaxOpenConns)
	num("db_max_idle_conns", &cfg.Database.MaxIdleConns)

	num("http_port", &cfg.Server.Port)
	dur("http_shutdown_timeout", &cfg.Server.ShutdownTimeout)
	dur("notify_timeout", &cfg.Server.NotifyTimeout)

	str("log_level", &cfg.Log.Level)
	str("log_format", &cfg.Log.Format)

	str("smtp_host", &cfg.Email.SMTPHost)
	num("smtp_port", &cfg.Email.SMTPPort)
	str("smtp_user", &cfg.Email.SMTPUser)
	str("smtp_password", &cfg.Email.SMTPPassword)
	str("smtp_from", &cfg.Email.FromEmail)

	str("telegram_token", &cfg.Telegram.Token)
	if k.Exists("telegram_chat_id") {
		cfg.Telegram.ChatID = k.Int64("telegram_chat_id")
	}
	dur("telegram_timeout", &cfg.Telegram.Timeout)

	str("pdf_font_path", &cfg.PDF.FontPath)
	return nil
}
