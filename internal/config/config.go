package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers
const (
	StorageMemory = "memory"
	StorageMySQL  = "mysql"
)

type Config struct {
	Database      DatabaseConfig
	JWT           JWTConfig
	Server        ServerConfig
	CORS          CORSConfig
	Storage       StorageConfig
	Notifications NotificationConfig
	AI            AIConfig
	Log           LogConfig
	Auth          AuthConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

type JWTConfig struct {
	AccessSecret       string
	RefreshSecret      string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// StorageConfig selects where the equipment register lives. The in-memory
// collection is always authoritative; mysql adds load-at-start and write-through.
type StorageConfig struct {
	Driver   string
	SeedFile string
}

type NotificationConfig struct {
	RefreshInterval time.Duration
}

// AIConfig configures the optional note generator. An empty APIKey disables it.
type AIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type LogConfig struct {
	Level    string
	Encoding string
}

type AuthConfig struct {
	DemoPassword string
}

func LoadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "biomed_tracker"),
		},
		JWT: JWTConfig{
			AccessSecret:       getEnv("JWT_ACCESS_SECRET", "your-access-secret-key"),
			RefreshSecret:      getEnv("JWT_REFRESH_SECRET", "your-refresh-secret-key"),
			AccessTokenExpiry:  parseDuration(getEnv("ACCESS_TOKEN_EXPIRY", "15m"), 15*time.Minute),
			RefreshTokenExpiry: parseDuration(getEnv("REFRESH_TOKEN_EXPIRY", "168h"), 168*time.Hour),
		},
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		},
		Storage: StorageConfig{
			Driver:   parseDriver(getEnv("STORAGE_DRIVER", StorageMemory)),
			SeedFile: getEnv("SEED_FILE", ""),
		},
		Notifications: NotificationConfig{
			RefreshInterval: parseDuration(getEnv("NOTIFICATION_REFRESH_INTERVAL", "1m"), time.Minute),
		},
		AI: AIConfig{
			APIKey:  getEnv("AI_API_KEY", ""),
			BaseURL: getEnv("AI_BASE_URL", ""),
			Model:   getEnv("AI_MODEL", "gpt-4o-mini"),
		},
		Log: LogConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			Encoding: getEnv("LOG_ENCODING", "console"),
		},
		Auth: AuthConfig{
			DemoPassword: getEnv("DEMO_PASSWORD", "password123"),
		},
	}

	return config
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil || duration <= 0 {
		fmt.Printf("Warning: Invalid duration format '%s', using %s\n", s, fallback)
		return fallback
	}
	return duration
}

func parseDriver(s string) string {
	switch strings.ToLower(s) {
	case StorageMySQL:
		return StorageMySQL
	case StorageMemory:
		return StorageMemory
	default:
		fmt.Printf("Warning: Unknown storage driver '%s', using %s\n", s, StorageMemory)
		return StorageMemory
	}
}

func parseOrigins(s string) []string {
	origins := []string{}
	for _, origin := range strings.Split(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
