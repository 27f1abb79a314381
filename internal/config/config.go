package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	AppName    = "Portfolio"
	AppVersion = "1.0.0"
)

// UserAgent identifies outbound requests made by the backend.
var UserAgent = AppName + "/" + AppVersion

type Config struct {
	Addr              string `env:"PORTFOLIO_ADDR" envDefault:":8080"`
	DataDir           string `env:"PORTFOLIO_DATA_DIR" envDefault:"./data"`
	DBPath            string `env:"PORTFOLIO_DB_PATH"`
	StaticDir         string `env:"PORTFOLIO_STATIC_DIR"`
	LogLevel          string `env:"PORTFOLIO_LOG_LEVEL" envDefault:"info"`
	LogFormat         string `env:"PORTFOLIO_LOG_FORMAT" envDefault:"text"`
	FrontendURL       string `env:"PORTFOLIO_FRONTEND_URL" envDefault:"http://localhost:5174"`
	SnowflakeNode     int64  `env:"PORTFOLIO_SNOWFLAKE_NODE" envDefault:"1"`
	TranslationPolicy string `env:"PORTFOLIO_TRANSLATION_POLICY" envDefault:"strict"`
	// ContactRate is the number of contact submissions allowed per client IP per minute.
	ContactRate int    `env:"PORTFOLIO_CONTACT_RATE" envDefault:"5"`
	ProxyURL    string `env:"PORTFOLIO_PROXY_URL"`

	Auth       AuthConfig
	Telegram   TelegramConfig
	Cloudinary CloudinaryConfig
	AI         AIConfig
}

type AuthConfig struct {
	JWTSecret     string        `env:"PORTFOLIO_JWT_SECRET"`
	TokenTTL      time.Duration `env:"PORTFOLIO_JWT_TTL" envDefault:"24h"`
	AdminEmail    string        `env:"PORTFOLIO_ADMIN_EMAIL"`
	AdminPassword string        `env:"PORTFOLIO_ADMIN_PASSWORD"`
}

type TelegramConfig struct {
	BotToken string `env:"TELEGRAM_BOT_TOKEN"`
	ChatID   string `env:"TELEGRAM_CHAT_ID"`
}

// Enabled reports whether both credentials are present.
func (c TelegramConfig) Enabled() bool {
	return c.BotToken != "" && c.ChatID != ""
}

type CloudinaryConfig struct {
	URL    string `env:"CLOUDINARY_URL"`
	Folder string `env:"CLOUDINARY_FOLDER" envDefault:"portfolio"`
}

type AIConfig struct {
	Provider  string `env:"PORTFOLIO_AI_PROVIDER"`
	APIKey    string `env:"PORTFOLIO_AI_API_KEY"`
	BaseURL   string `env:"PORTFOLIO_AI_BASE_URL"`
	Model     string `env:"PORTFOLIO_AI_MODEL"`
	RateLimit int    `env:"PORTFOLIO_AI_RATE_LIMIT" envDefault:"5"`
}

// Enabled reports whether a provider has been selected.
func (c AIConfig) Enabled() bool {
	return c.Provider != ""
}

// Load reads an optional .env file from the working directory and then
// parses the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse builds a Config from the process environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "portfolio.db")
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = detectStaticDir()
	}
	cfg.DBPath = filepath.Clean(cfg.DBPath)
	cfg.DataDir = filepath.Clean(cfg.DataDir)
	cfg.StaticDir = filepath.Clean(cfg.StaticDir)
	cfg.Auth.AdminEmail = strings.TrimSpace(cfg.Auth.AdminEmail)

	if cfg.Auth.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("PORTFOLIO_JWT_TTL must be positive")
	}
	if cfg.ContactRate <= 0 {
		return Config{}, fmt.Errorf("PORTFOLIO_CONTACT_RATE must be positive")
	}
	if (cfg.Auth.AdminEmail == "") != (cfg.Auth.AdminPassword == "") {
		return Config{}, fmt.Errorf("PORTFOLIO_ADMIN_EMAIL and PORTFOLIO_ADMIN_PASSWORD must be set together")
	}

	return cfg, nil
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/dist",
		"../frontend/dist",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./frontend/dist"
}
