package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
	Retry  RetryConfig
	Redis  RedisConfig
	Cache  CacheConfig
	SMTP   SMTPConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
}

// GeminiConfig holds the default credentials for the generative model.
// A request may still override the API key per call.
type GeminiConfig struct {
	APIKey      string `yaml:"api_key"`
	Model       string `yaml:"model"`
	Temperature float64
}

// RetryConfig controls the backoff schedule for model calls.
// MaxAttempts is the total number of invocations, not the number of retries.
type RetryConfig struct {
	MaxAttempts  uint          `yaml:"max_attempts"`
	InitialDelay time.Duration `yaml:"initial_delay"`
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type CacheConfig struct {
	MaterialTTL time.Duration `yaml:"material_ttl"`
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

type LoggerConfig struct {
	Env   string
	Level string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", "20s")
	viper.SetDefault("server.write_timeout", "20s")
	viper.SetDefault("server.body_limit", 10*1024*1024)
	viper.SetDefault("gemini.model", "gemini-1.5-pro")
	viper.SetDefault("gemini.temperature", 0.7)
	viper.SetDefault("retry.max_attempts", 5)
	viper.SetDefault("retry.initial_delay", "2s")
	viper.SetDefault("cache.material_ttl", "24h")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("smtp.port", 587)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if configFile := viper.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout"),
			WriteTimeout: viper.GetDuration("server.write_timeout"),
			BodyLimit:    viper.GetInt("server.body_limit"),
		},
		Gemini: GeminiConfig{
			APIKey:      viper.GetString("gemini.api_key"),
			Model:       viper.GetString("gemini.model"),
			Temperature: viper.GetFloat64("gemini.temperature"),
		},
		Retry: RetryConfig{
			MaxAttempts:  viper.GetUint("retry.max_attempts"),
			InitialDelay: viper.GetDuration("retry.initial_delay"),
		},
		Redis: RedisConfig{
			Enabled:  viper.GetBool("redis.enabled"),
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Cache: CacheConfig{
			MaterialTTL: viper.GetDuration("cache.material_ttl"),
		},
		SMTP: SMTPConfig{
			Host:     viper.GetString("smtp.host"),
			Port:     viper.GetInt("smtp.port"),
			Username: viper.GetString("smtp.username"),
			Password: viper.GetString("smtp.password"),
			From:     viper.GetString("smtp.from"),
			To:       viper.GetString("smtp.to"),
		},
		Logger: LoggerConfig{
			Env:   viper.GetString("logger.env"),
			Level: viper.GetString("logger.level"),
		},
	}

	// Override with environment variables if set
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		config.Gemini.APIKey = apiKey
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		config.Server.Port = viper.GetInt("SERVER_PORT")
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if smtpHost := os.Getenv("SMTP_HOST"); smtpHost != "" {
		config.SMTP.Host = smtpHost
	}
	if smtpPort := os.Getenv("SMTP_PORT"); smtpPort != "" {
		config.SMTP.Port = viper.GetInt("SMTP_PORT")
	}
	if smtpUsername := os.Getenv("SMTP_USERNAME"); smtpUsername != "" {
		config.SMTP.Username = smtpUsername
	}
	if smtpPassword := os.Getenv("SMTP_PASSWORD"); smtpPassword != "" {
		config.SMTP.Password = smtpPassword
	}
	if feedbackTo := os.Getenv("FEEDBACK_TO"); feedbackTo != "" {
		config.SMTP.To = feedbackTo
	}

	return config, nil
}
