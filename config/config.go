package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string   `envconfig:"PORT" default:"8080"`
	Env         string   `envconfig:"APP_ENV" default:"development"`
	AdminAPIKey string   `envconfig:"ADMIN_API_KEY"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`

	DB     DB
	Auth   Auth
	Events Events
	Backup Backup
}

type DB struct {
	Driver       string `envconfig:"DB_DRIVER" default:"postgres"` // postgres | mysql | sqlite
	URL          string `envconfig:"DATABASE_URL"`
	Host         string `envconfig:"DB_HOST" default:"localhost"`
	Port         string `envconfig:"DB_PORT" default:"5432"`
	User         string `envconfig:"DB_USER"`
	Password     string `envconfig:"DB_PASSWORD"`
	Name         string `envconfig:"DB_NAME"`
	MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
}

type Auth struct {
	JWTSecret  string        `envconfig:"JWT_SECRET"`
	TokenTTL   time.Duration `envconfig:"JWT_TTL" default:"24h"`
	BcryptCost int           `envconfig:"BCRYPT_COST" default:"10"`
}

type Events struct {
	AMQPURL  string `envconfig:"AMQP_URL"`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"storefront.events"`
}

type Backup struct {
	Dir       string        `envconfig:"BACKUP_DIR"`
	Hour      int           `envconfig:"BACKUP_HOUR" default:"2"`
	Retention time.Duration `envconfig:"BACKUP_RETENTION" default:"96h"`
}

// Load reads .env if present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg.DB.Driver = strings.ToLower(cfg.DB.Driver)
	switch cfg.DB.Driver {
	case "postgres", "mysql", "sqlite":
	default:
		return nil, fmt.Errorf("load config: unsupported DB_DRIVER %q", cfg.DB.Driver)
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DSN returns DATABASE_URL, or builds a DSN for the driver from the DB_* parts.
func (d DB) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	switch d.Driver {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			d.User, d.Password, d.Host, d.Port, d.Name)
	case "sqlite":
		if d.Name == "" {
			return "dev.db"
		}
		return d.Name
	default:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			d.Host, d.User, d.Password, d.Name, d.Port)
	}
}

// Validate checks settings only the HTTP server needs.
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}
	if c.IsProduction() && c.AdminAPIKey == "" {
		return fmt.Errorf("ADMIN_API_KEY is not set")
	}
	return nil
}
