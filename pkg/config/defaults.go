// Package config provides centralized default values for ComboLab
package config

import (
	"bufio"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

var envLoaded sync.Once

func loadEnvFile() {
	envLoaded.Do(func() {
		file, err := os.Open(".env")
		if err != nil {
			return
		}
		defer file.Close()

		log.Println("Loading configuration overrides from .env file...")
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())

			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}

			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}

			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])

			if os.Getenv(key) == "" {
				os.Setenv(key, value)
			}
		}
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration

	// Database Configuration
	DBDriver                 string
	DBPath                   string
	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxLifetimeMinutes int

	// Auth Configuration
	JWTSecret     string
	TokenTTL      time.Duration
	BcryptCost    int
	AdminPassword string

	// HTTP Configuration
	AllowedOrigins []string

	// Media Configuration
	MediaBasePath    string
	MediaIconMaxEdge int

	// TTL Configuration
	ContentCacheTTL time.Duration

	// Slow query logging threshold
	SlowQueryThreshold time.Duration

	// SSE Configuration
	SSEHeartbeatInterval time.Duration
	SSEClientBuffer      int

	// Email Configuration
	EmailFrom     string
	EmailFromName string
)

func init() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)

	// Database
	DBDriver = getEnvString("DB_DRIVER", "sqlite3")
	DBPath = getEnvString("DB_PATH", "combolab.db")
	DBMaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 10)
	DBMaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 3)
	DBConnMaxLifetimeMinutes = getEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 30)

	// Auth
	JWTSecret = getEnvString("JWT_SECRET", "")
	TokenTTL = getEnvDuration("TOKEN_TTL", 30*24*time.Hour)
	BcryptCost = getEnvInt("BCRYPT_COST", 10)
	AdminPassword = getEnvString("ADMIN_PASSWORD", "")

	// HTTP
	AllowedOrigins = strings.Split(getEnvString("ALLOWED_ORIGINS",
		"http://localhost:3000,http://localhost:5173,http://127.0.0.1:3000,http://127.0.0.1:5173"), ",")

	// Media
	MediaBasePath = getEnvString("MEDIA_BASE_PATH", "media")
	MediaIconMaxEdge = getEnvInt("MEDIA_ICON_MAX_EDGE", 128)

	// TTL Configuration
	ContentCacheTTL = time.Duration(getEnvInt("CONTENT_CACHE_TTL_HOURS", 24)) * time.Hour

	// Observability
	SlowQueryThreshold = getEnvDuration("SLOW_QUERY_THRESHOLD", 100*time.Millisecond)

	// SSE
	SSEHeartbeatInterval = getEnvDuration("SSE_HEARTBEAT_INTERVAL", 30*time.Second)
	SSEClientBuffer = getEnvInt("SSE_CLIENT_BUFFER", 10)

	// Email
	EmailFrom = getEnvString("EMAIL_FROM", "noreply@combolab.app")
	EmailFromName = getEnvString("EMAIL_FROM_NAME", "ComboLab")
}
