package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	SessionFile    string
	Debug          bool
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Debug("no .env file found, using system environment variables")
	}

	cfg := &Config{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:3000/api"),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 15*time.Second),
		SessionFile:    getEnv("SESSION_FILE", defaultSessionFile()),
	}

	if dbg, err := strconv.ParseBool(getEnv("DEBUG", "false")); err == nil && dbg {
		cfg.Debug = true
		log.SetLevel(log.DebugLevel)
	}

	return cfg
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Warnf("invalid %s %q, using %s", key, value, defaultVal)
		return defaultVal
	}
	return d
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".taskmaster-session.json"
	}
	return filepath.Join(home, ".taskmaster", "session.json")
}
