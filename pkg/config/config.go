package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// StoreMode selects the persistence backend at deployment time.
type StoreMode string

const (
	StoreModeMemory   StoreMode = "memory"
	StoreModeRemote   StoreMode = "remote"
	StoreModePostgres StoreMode = "postgres"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Storage  StorageConfig
	Session  SessionConfig
	Groq     GroqConfig
	Assembly AssemblyAIConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// StoreConfig selects and tunes the meeting store backend
type StoreConfig struct {
	// Mode is one of "memory", "remote", "postgres".
	Mode StoreMode `envconfig:"STORE_MODE" default:"memory"`
	// RemoteBaseURL is the legacy backend base URL used in remote mode,
	// e.g. http://127.0.0.1:5000/api
	RemoteBaseURL string `envconfig:"REMOTE_BASE_URL" default:"http://127.0.0.1:5000/api"`
	// RequireAttendees enforces at least one attendee on meeting creation.
	// Defaults to the mode's behavior when unset (on for memory mode only).
	RequireAttendees *bool `envconfig:"REQUIRE_ATTENDEES"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"quickmom"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	// Enabled switches the view cache to Redis; the in-memory cache is
	// used otherwise.
	Enabled  bool   `envconfig:"REDIS_ENABLED" default:"false"`
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// StorageConfig holds object storage configuration for audio retention
type StorageConfig struct {
	Enabled         bool   `envconfig:"STORAGE_ENABLED" default:"false"`
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"quickmom-audio"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
	PublicURL       string `envconfig:"STORAGE_PUBLIC_URL" default:""`
}

// SessionConfig holds session-cookie configuration
type SessionConfig struct {
	Secret     string        `envconfig:"SESSION_SECRET" default:"your-secret-key-here"`
	Expiry     time.Duration `envconfig:"SESSION_EXPIRY" default:"168h"`
	CookieName string        `envconfig:"SESSION_COOKIE" default:"session"`
}

// GroqConfig holds Groq API configuration
type GroqConfig struct {
	APIKey  string `envconfig:"GROQ_API_KEY" default:""`
	BaseURL string `envconfig:"GROQ_API_URL" default:"https://api.groq.com"`
	Model   string `envconfig:"GROQ_MODEL" default:"llama-3.1-70b-versatile"`
}

// AssemblyAIConfig holds AssemblyAI configuration
type AssemblyAIConfig struct {
	APIKey string `envconfig:"ASSEMBLYAI_API_KEY" default:""`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Store.Mode {
	case StoreModeMemory, StoreModeRemote, StoreModePostgres:
	default:
		return fmt.Errorf("STORE_MODE must be one of memory, remote, postgres (got %q)", c.Store.Mode)
	}
	if c.Store.Mode == StoreModeRemote && c.Store.RemoteBaseURL == "" {
		return fmt.Errorf("REMOTE_BASE_URL is required in remote mode")
	}
	if c.Server.Environment == "production" && c.Session.Secret == "your-secret-key-here" {
		return fmt.Errorf("SESSION_SECRET must be set in production")
	}
	return nil
}

// AttendeesRequired reports whether meeting creation must carry at least
// one attendee. The memory store enforces it; the remote backend does not
// support attendee validation yet, so it stays optional there.
func (c *Config) AttendeesRequired() bool {
	if c.Store.RequireAttendees != nil {
		return *c.Store.RequireAttendees
	}
	return c.Store.Mode == StoreModeMemory
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
