package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	StoreDriver    string `yaml:"store_driver"`
	DBHost         string `yaml:"db_host"`
	DBPort         string `yaml:"db_port"`
	DBUser         string `yaml:"db_user"`
	DBPassword     string `yaml:"db_password"`
	DBName         string `yaml:"db_name"`
	SQLitePath     string `yaml:"sqlite_path"`
	ServerPort     string `yaml:"server_port"`
	RetryAttempts  int    `yaml:"store_retry_attempts"`
	RetryInitialMS int    `yaml:"store_retry_initial_ms"`
	GinMode        string `yaml:"gin_mode"`
}

// Load reads .env, then the environment, then the YAML file named by
// CONFIG_FILE. Later sources win.
func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	cfg := &Config{
		StoreDriver:    getEnv("STORE_DRIVER", "postgres"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "planner_user"),
		DBPassword:     getEnv("DB_PASSWORD", "planner_pass"),
		DBName:         getEnv("DB_NAME", "planner_db"),
		SQLitePath:     getEnv("SQLITE_PATH", "data/planner.db"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		RetryAttempts:  getEnvInt("STORE_RETRY_ATTEMPTS", 4),
		RetryInitialMS: getEnvInt("STORE_RETRY_INITIAL_MS", 100),
		GinMode:        getEnv("GIN_MODE", "debug"),
	}

	if path, ok := os.LookupEnv("CONFIG_FILE"); ok && path != "" {
		if err := cfg.Overlay(path); err != nil {
			log.Printf("⚠️  Ignoring config file: %v", err)
		}
	}

	return cfg
}

// Overlay replaces fields with the ones set in a YAML file. Keys missing
// from the file keep their current value.
func (c *Config) Overlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// PostgresDSN builds the connection string for the postgres store.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("⚠️  %s=%q is not a number, using %d", key, value, defaultVal)
		return defaultVal
	}
	return n
}
