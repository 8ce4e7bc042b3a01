package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultAPIBaseURL     = "https://jsonplaceholder.typicode.com"
	defaultLogLevel       = "info"
	defaultEnv            = "local"
	defaultConfigDir      = ".postdeck"
	defaultCacheTTL       = time.Hour
	defaultRequestTimeout = 30 * time.Second
	defaultRoute          = "login"
)

type Config struct {
	Env            string        `mapstructure:"app_env"`
	APIBaseURL     string        `mapstructure:"api_base_url"`
	LogLevel       string        `mapstructure:"log_level"`
	ConfigDir      string        `mapstructure:"config_dir"`
	DataPath       string        `mapstructure:"data_path"`
	CacheTTL       time.Duration `mapstructure:"cache_ttl"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	DefaultRoute   string        `mapstructure:"default_route"`
}

// MustLoad reads the client configuration from .env / environment variables
// and panics when the result is unusable.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("config error: %v", err))
	}
	return cfg
}

// Load reads the client configuration without panicking on validation errors.
func Load() (*Config, error) {
	// Look for a .env next to the binary, then one level up.
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}

	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("failed to load .env file: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("API_BASE_URL", defaultAPIBaseURL)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("CACHE_TTL", defaultCacheTTL)
	viper.SetDefault("REQUEST_TIMEOUT", defaultRequestTimeout)
	viper.SetDefault("DEFAULT_ROUTE", defaultRoute)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		fmt.Printf("failed to create config dir: %v\n", err)
	}

	dataPath := viper.GetString("DATA_PATH")
	if dataPath == "" {
		dataPath = filepath.Join(configDir, "postdeck.db")
	}

	config := &Config{
		Env:            viper.GetString("APP_ENV"),
		APIBaseURL:     viper.GetString("API_BASE_URL"),
		LogLevel:       viper.GetString("LOG_LEVEL"),
		ConfigDir:      configDir,
		DataPath:       dataPath,
		CacheTTL:       viper.GetDuration("CACHE_TTL"),
		RequestTimeout: viper.GetDuration("REQUEST_TIMEOUT"),
		DefaultRoute:   viper.GetString("DEFAULT_ROUTE"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api_base_url must not be empty")
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("cache_ttl must be positive")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive")
	}
	return nil
}

// IsProd reports whether the client runs against the prod environment.
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// IsLocal reports whether the client runs in a local environment.
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
