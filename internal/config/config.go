package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harish176/placement-portal/internal/pkg/helpers"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port           string   `yaml:"port" env:"PORT"`
		Mode           string   `yaml:"mode" env:"SERVER_MODE"`
		StoragePath    string   `yaml:"storage_path" env:"STORAGE_PATH"`
		PublicBaseURL  string   `yaml:"public_base_url" env:"PUBLIC_BASE_URL"`
		AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
	} `yaml:"server"`

	Database struct {
		URI            string `yaml:"uri" env:"MONGODB_URI"`
		Name           string `yaml:"name" env:"MONGODB_DATABASE"`
		ConnectTimeout string `yaml:"connect_timeout" env:"MONGODB_CONNECT_TIMEOUT"`
	} `yaml:"database"`

	JWT struct {
		Secret                 string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration  string `yaml:"expires_in" env:"JWT_EXPIRES_IN"`
		RefreshSecret          string `yaml:"refresh_secret" env:"JWT_REFRESH_SECRET"`
		RefreshTokenExpiration string `yaml:"refresh_expires_in" env:"JWT_REFRESH_EXPIRES_IN"`
		Issuer                 string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Security struct {
		BcryptCost      int    `yaml:"bcrypt_cost" env:"BCRYPT_COST"`
		LoginRateLimit  int    `yaml:"login_rate_limit" env:"LOGIN_RATE_LIMIT"`
		LoginRateWindow string `yaml:"login_rate_window" env:"LOGIN_RATE_WINDOW"`
	} `yaml:"security"`

	Redis struct {
		Addr     string `yaml:"addr" env:"REDIS_ADDR"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"REDIS_DB"`
	} `yaml:"redis"`

	Admin struct {
		Email    string `yaml:"email" env:"ADMIN_EMAIL"`
		Password string `yaml:"password" env:"ADMIN_PASSWORD"`
		Name     string `yaml:"name" env:"ADMIN_NAME"`
	} `yaml:"admin"`

	SMTP struct {
		Host      string `yaml:"host" env:"SMTP_HOST"`
		Port      int    `yaml:"port" env:"SMTP_PORT"`
		Username  string `yaml:"username" env:"SMTP_USERNAME"`
		Password  string `yaml:"password" env:"SMTP_PASSWORD"`
		FromName  string `yaml:"from_name" env:"SMTP_FROM_NAME"`
		FromEmail string `yaml:"from_email" env:"SMTP_FROM_EMAIL"`
		UseTLS    bool   `yaml:"use_tls" env:"SMTP_USE_TLS"`
	} `yaml:"smtp"`

	Observability struct {
		MetricsEnabled bool   `yaml:"metrics_enabled" env:"METRICS_ENABLED"`
		TracingEnabled bool   `yaml:"tracing_enabled" env:"TRACING_ENABLED"`
		OTLPEndpoint   string `yaml:"otlp_endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
		ServiceName    string `yaml:"service_name" env:"SERVICE_NAME"`
	} `yaml:"observability"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The file is optional; environment variables alone are enough
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.StoragePath = "uploads"
	config.Server.AllowedOrigins = []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"http://127.0.0.1:3000",
		"http://127.0.0.1:5173",
	}

	config.Database.URI = "mongodb://localhost:27017"
	config.Database.Name = "placement_portal"
	config.Database.ConnectTimeout = "10s"

	config.JWT.AccessTokenExpiration = "7d"
	config.JWT.RefreshTokenExpiration = "30d"
	config.JWT.Issuer = "placement-portal"

	config.Security.BcryptCost = 10
	config.Security.LoginRateLimit = 20
	config.Security.LoginRateWindow = "15m"

	config.SMTP.Port = 587
	config.SMTP.FromName = "Training & Placement Cell"
	config.SMTP.UseTLS = true

	config.Observability.MetricsEnabled = true
	config.Observability.OTLPEndpoint = "localhost:4317"
	config.Observability.ServiceName = "placement-portal"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.URI == "" {
		return errors.New("MongoDB URI is required")
	}
	if config.Database.Name == "" {
		return errors.New("MongoDB database name is required")
	}

	if config.JWT.Secret == "" {
		return errors.New("JWT secret is required")
	}
	if config.JWT.RefreshSecret == "" {
		return errors.New("JWT refresh secret is required")
	}
	if config.JWT.Secret == config.JWT.RefreshSecret {
		return errors.New("JWT access and refresh secrets must differ")
	}

	if _, err := helpers.ParseDurationStrict(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}
	if _, err := helpers.ParseDurationStrict(config.JWT.RefreshTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT refresh token expiration format: %w", err)
	}
	if _, err := helpers.ParseDurationStrict(config.Database.ConnectTimeout); err != nil {
		return fmt.Errorf("invalid MongoDB connect timeout: %w", err)
	}
	if _, err := helpers.ParseDurationStrict(config.Security.LoginRateWindow); err != nil {
		return fmt.Errorf("invalid login rate window: %w", err)
	}

	if config.Security.BcryptCost < 4 || config.Security.BcryptCost > 31 {
		return fmt.Errorf("bcrypt cost must be between 4 and 31, got %d", config.Security.BcryptCost)
	}

	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Mode, "production")
}

// FileBaseURL returns the public URL prefix under which uploads are served
func (c *Config) FileBaseURL() string {
	base := c.Server.PublicBaseURL
	if base == "" {
		base = "http://localhost:" + c.Server.Port
	}
	return strings.TrimRight(base, "/") + "/uploads"
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
