package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// EnvName is the environment variable selecting the runtime environment.
	EnvName = "ENV"

	// ProductionEnv is the EnvName value that switches the preorder ledger
	// to the relational database backend.
	ProductionEnv = "production"

	// DebugModeEnv is the environment variable for debug mode.
	DebugModeEnv = "DEBUG_MODE"

	// JWTSecretEnv is the environment variable for the token signing secret.
	JWTSecretEnv = "JWT_SECRET"

	// AdminUsernameEnv is the environment variable for the admin username.
	AdminUsernameEnv = "ADMIN_USERNAME"

	// AdminPasswordEnv is the environment variable for the admin password.
	AdminPasswordEnv = "ADMIN_PASSWORD"

	// DataDirEnv is the environment variable for the directory holding the
	// JSON data files.
	DataDirEnv = "DATA_DIR"

	// UploadDirEnv is the environment variable for the upload directory.
	UploadDirEnv = "UPLOAD_DIR"

	// EpubDirEnv is the environment variable for the epub directory.
	EpubDirEnv = "EPUB_DIR"

	// DBHostEnv is the environment variable for database host.
	DBHostEnv = "DB_HOST"

	// DBPortEnv is the environment variable for database port.
	DBPortEnv = "DB_PORT"

	// DBUserEnv is the environment variable for database user.
	DBUserEnv = "DB_USER"

	// DBPassEnv is the environment variable for database password.
	DBPassEnv = "DB_PASS"

	// DBNameEnv is the environment variable for database name.
	DBNameEnv = "DB_NAME"

	// HTTPServerPortEnv is the environment variable for HTTP server port.
	HTTPServerPortEnv = "PORT"

	// MetricsServerPortEnv is the environment variable for metrics server port.
	MetricsServerPortEnv = "METRICS_SERVER_PORT"

	// EnvFilePath is the environment variable for .env file path (only for
	// local/test environment).
	EnvFilePath = "ENV_PATH"

	// DefaultEnvFilePath is the default path to the .env file.
	DefaultEnvFilePath = ".env"

	// AWSRegionEnv is the environment variable for AWS region.
	AWSRegionEnv = "AWS_REGION"

	// AWSEndpointEnv is the environment variable for AWS endpoint.
	AWSEndpointEnv = "AWS_ENDPOINT"

	// SQSQueueURLEnv is the environment variable for the preorder event
	// queue URL. Leaving it unset disables event publishing.
	SQSQueueURLEnv = "SQS_QUEUE_URL"
)

// Defaults applied when the corresponding variable is unset.
const (
	DefaultAdminUsername     = "admin"
	DefaultAdminPassword     = "password123"
	DefaultHTTPServerPort    = "8080"
	DefaultMetricsServerPort = "9090"
	DefaultDataDir           = "data"
	DefaultUploadDir         = "public/uploads"
	DefaultEpubDir           = "epubs"
)

var (
	// ErrMissingConfig is returned when required configuration values are missing.
	ErrMissingConfig = errors.New("missing config data")
)

// Config represents the application configuration.
type Config struct {
	Env           string
	DebugMode     bool
	JWTSecret     string
	Admin         Admin
	DataDir       string
	UploadDir     string
	EpubDir       string
	Database      DB
	HTTPServer    Server
	MetricsServer Server
	AWS           AWSConfig
}

// Admin holds the single configured admin identity.
type Admin struct {
	Username string
	Password string
}

// AWSConfig represents AWS-specific configuration settings.
type AWSConfig struct {
	Region      string
	Endpoint    string
	SQSQueueURL string
}

// DB represents database configuration settings.
type DB struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
}

// Server represents server configuration settings.
type Server struct {
	Port string
}

// IsProduction reports whether the relational database backend should be
// used for preorders.
func (c *Config) IsProduction() bool {
	return c.Env == ProductionEnv
}

// PreordersPath returns the path of the preorder ledger file.
func (c *Config) PreordersPath() string {
	return filepath.Join(c.DataDir, "preorders.json")
}

// ProductsPath returns the path of the persisted product catalog file.
func (c *Config) ProductsPath() string {
	return filepath.Join(c.DataDir, "products.json")
}

func allNonEmpty(keyValues map[string]string) error {
	for key, value := range keyValues {
		if value == "" {
			slog.Error("configuration validation failed", slog.String("key", key), slog.String("error", "value is empty"))
			return fmt.Errorf("%w for key: %s", ErrMissingConfig, key)
		}
	}
	return nil
}

func allNumbers(keyValues map[string]string) error {
	for key, value := range keyValues {
		_, err := strconv.Atoi(value)
		if err != nil {
			slog.Error("configuration validation failed", slog.String("key", key), slog.String("value", value), slog.String("error", err.Error()))
			return fmt.Errorf("invalid number for key %s: %w", key, err)
		}
	}
	return nil
}

func (c *Config) validate() error {
	// Validate server ports
	if err := allNumbers(map[string]string{
		HTTPServerPortEnv:    c.HTTPServer.Port,
		MetricsServerPortEnv: c.MetricsServer.Port,
	}); err != nil {
		return fmt.Errorf("invalid port number: %w", err)
	}

	// The database is only reached in production; local development runs
	// entirely on the JSON files.
	if c.IsProduction() {
		if err := allNonEmpty(map[string]string{
			DBHostEnv: c.Database.Host,
			DBUserEnv: c.Database.User,
			DBNameEnv: c.Database.Name,
		}); err != nil {
			return fmt.Errorf("database configuration incomplete: %w", err)
		}
		if err := allNumbers(map[string]string{
			DBPortEnv: c.Database.Port,
		}); err != nil {
			return fmt.Errorf("invalid port number: %w", err)
		}
	}

	return nil
}

func getEnvAsBool(name string, defaultValue bool) bool {
	if val, err := strconv.ParseBool(os.Getenv(name)); err == nil {
		return val
	}
	return defaultValue
}

func getEnvOrDefault(name, defaultValue string) string {
	if val := os.Getenv(name); val != "" {
		return val
	}
	return defaultValue
}

// ApplyEnvFile loads environment variables from the specified .env files.
func ApplyEnvFile(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// LoadFromEnv loads configuration from environment variables and validates it.
// JWT_SECRET is deliberately not required here: a missing secret is reported
// by the login endpoint, matching the error contract of the auth gate.
func LoadFromEnv() (*Config, error) {
	envPath := os.Getenv(EnvFilePath)
	if envPath == "" {
		envPath = DefaultEnvFilePath
	}
	err := ApplyEnvFile(envPath)
	if err != nil {
		// just log the error, maybe all envs are set in another way
		slog.Info("failed to load from .env", slog.Any("err", err))
	}

	conf := &Config{
		Env:       os.Getenv(EnvName),
		DebugMode: getEnvAsBool(DebugModeEnv, false),
		JWTSecret: os.Getenv(JWTSecretEnv),
		Admin: Admin{
			Username: getEnvOrDefault(AdminUsernameEnv, DefaultAdminUsername),
			Password: getEnvOrDefault(AdminPasswordEnv, DefaultAdminPassword),
		},
		DataDir:   getEnvOrDefault(DataDirEnv, DefaultDataDir),
		UploadDir: getEnvOrDefault(UploadDirEnv, DefaultUploadDir),
		EpubDir:   getEnvOrDefault(EpubDirEnv, DefaultEpubDir),
		Database: DB{
			Host:     os.Getenv(DBHostEnv),
			User:     os.Getenv(DBUserEnv),
			Password: os.Getenv(DBPassEnv),
			Name:     os.Getenv(DBNameEnv),
			Port:     os.Getenv(DBPortEnv),
		},
		HTTPServer: Server{
			Port: getEnvOrDefault(HTTPServerPortEnv, DefaultHTTPServerPort),
		},
		MetricsServer: Server{
			Port: getEnvOrDefault(MetricsServerPortEnv, DefaultMetricsServerPort),
		},
		AWS: AWSConfig{
			Region:      os.Getenv(AWSRegionEnv),
			Endpoint:    os.Getenv(AWSEndpointEnv),
			SQSQueueURL: os.Getenv(SQSQueueURLEnv),
		},
	}

	if err := conf.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return conf, nil
}
