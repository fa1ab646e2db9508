package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host        string   `yaml:"host"`
		Port        int      `yaml:"port"`
		Env         string   `yaml:"env"`
		FrontendURL string   `yaml:"frontend_url"`
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"server"`

	Database struct {
		DSN          string `yaml:"url"`
		MaxOpenConns int    `yaml:"max_open"`
		MaxIdleConns int    `yaml:"max_idle"`
	} `yaml:"database"`

	Auth struct {
		JWTSecret            string        `yaml:"jwt_secret"`
		AccessTTL            time.Duration `yaml:"access_ttl"`
		RefreshTTL           time.Duration `yaml:"refresh_ttl"`
		VerificationTTL      time.Duration `yaml:"verification_ttl"`
		RequireVerifiedEmail bool          `yaml:"require_verified_email"`
	} `yaml:"auth"`

	Email struct {
		Provider        string `yaml:"provider"` // smtp, log
		SMTPHost        string `yaml:"smtp_host"`
		SMTPPort        int    `yaml:"smtp_port"`
		SMTPUsername    string `yaml:"smtp_user"`
		SMTPPassword    string `yaml:"smtp_password"`
		UseTLS          bool   `yaml:"use_tls"`
		FromEmail       string `yaml:"from_email"`
		FromName        string `yaml:"from_name"`
		RedirectInDebug bool   `yaml:"redirect_in_debug"`
		VerifiedEmail   string `yaml:"verified_email"`
	} `yaml:"email"`

	Storage struct {
		Type         string `yaml:"type"` // local, s3
		BasePath     string `yaml:"base_path"`
		BaseURL      string `yaml:"base_url"`
		Bucket       string `yaml:"bucket"`
		Region       string `yaml:"region"`
		Endpoint     string `yaml:"endpoint"`
		AccessKey    string `yaml:"access_key"`
		SecretKey    string `yaml:"secret_key"`
		UsePathStyle bool   `yaml:"use_path_style"`
	} `yaml:"storage"`

	Upload struct {
		ImageQuality int `yaml:"image_quality"` // JPEG quality (1-100)
	} `yaml:"upload"`
}

var AppConfig *Config

// Default returns a config usable for local development.
func Default() *Config {
	var cfg Config
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8000
	cfg.Server.Env = "development"
	cfg.Server.FrontendURL = "http://localhost:3000"
	cfg.Server.CORSOrigins = []string{"http://localhost:3000"}

	cfg.Database.MaxOpenConns = 25
	cfg.Database.MaxIdleConns = 5

	cfg.Auth.AccessTTL = 15 * time.Minute
	cfg.Auth.RefreshTTL = 7 * 24 * time.Hour
	cfg.Auth.VerificationTTL = 24 * time.Hour
	cfg.Auth.RequireVerifiedEmail = true

	cfg.Email.Provider = "log"
	cfg.Email.SMTPPort = 587
	cfg.Email.UseTLS = true
	cfg.Email.FromEmail = "noreply@ajiraglobal.com"
	cfg.Email.FromName = "AjiraGlobal"

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./uploads"
	cfg.Storage.BaseURL = "/api/v1/files"
	cfg.Storage.Region = "us-east-1"

	cfg.Upload.ImageQuality = 85
	return &cfg
}

// Load reads .env (if present), then the YAML file at path over the defaults, then env overrides.
// An empty path falls back to CONFIG_PATH and then config/config.yaml; a missing file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "config/config.yaml"
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file at %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file at %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	AppConfig = cfg
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		c.Server.Env = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		c.Email.SMTPPassword = v
	}
	if v := os.Getenv("REQUIRE_VERIFIED_EMAIL"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid REQUIRE_VERIFIED_EMAIL %q: %w", v, err)
		}
		c.Auth.RequireVerifiedEmail = b
	}
	if v := os.Getenv("S3_ACCESS_KEY"); v != "" {
		c.Storage.AccessKey = v
	}
	if v := os.Getenv("S3_SECRET_KEY"); v != "" {
		c.Storage.SecretKey = v
	}
	return nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	var problems []string

	if c.Database.DSN == "" {
		problems = append(problems, "database.url is required")
	}
	if c.Auth.JWTSecret == "" && !c.IsDevelopment() {
		problems = append(problems, "auth.jwt_secret is required outside development")
	}
	if c.Auth.VerificationTTL <= 0 {
		problems = append(problems, "auth.verification_ttl must be positive")
	}
	switch c.Email.Provider {
	case "smtp":
		if c.Email.SMTPHost == "" {
			problems = append(problems, "email.smtp_host is required for the smtp provider")
		}
	case "log":
	default:
		problems = append(problems, fmt.Sprintf("unknown email.provider %q", c.Email.Provider))
	}
	if c.Email.RedirectInDebug && c.Email.VerifiedEmail == "" {
		problems = append(problems, "email.verified_email is required when redirect_in_debug is set")
	}
	switch c.Storage.Type {
	case "local":
	case "s3":
		if c.Storage.Bucket == "" {
			problems = append(problems, "storage.bucket is required for s3 storage")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown storage.type %q", c.Storage.Type))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// Addr returns host:port for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func GetConfig() *Config {
	return AppConfig
}
