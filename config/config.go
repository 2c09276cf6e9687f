package config

import (
	"os"
	"strconv"
)

type Config struct {
	Client    ClientConfig
	Logger    LoggerConfig
	Sync      SyncConfig
	DevServer DevServerConfig
}

type ClientConfig struct {
	AppEnv         string
	BaseURL        string
	TimeoutSeconds int
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type SyncConfig struct {
	// RefreshAfterMutation re-fetches the whole list after every successful
	// mutation instead of patching the local copy in place.
	RefreshAfterMutation bool
}

type DevServerConfig struct {
	Addr   string
	DBPath string
}

func LoadEnv() *Config {
	// Basic config loading
	// In a real scenario, use structured config loader like viper or koanf
	return &Config{
		Client: ClientConfig{
			AppEnv:         getEnv("APP_ENV", "dev"),
			BaseURL:        getEnv("PRODUCTOS_BASE_URL", "http://localhost:8080"),
			TimeoutSeconds: getEnvInt("PRODUCTOS_TIMEOUT_SECONDS", 15),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Sync: SyncConfig{
			RefreshAfterMutation: getEnvBool("PRODUCTOS_REFRESH_AFTER_MUTATION", false),
		},
		DevServer: DevServerConfig{
			Addr:   getEnv("DEVSERVER_ADDR", ":8080"),
			DBPath: getEnv("DEVSERVER_DB_PATH", "productos.db"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
