package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the complete server configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Mongo  MongoConfig  `mapstructure:"mongo"`
	GenAI  GenAIConfig  `mapstructure:"genai"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Redis  RedisConfig  `mapstructure:"redis"`
	CORS   CORSConfig   `mapstructure:"cors"`
	Log    LogConfig    `mapstructure:"log"`
	Sentry SentryConfig `mapstructure:"sentry"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// MongoConfig locates the document store; Timeout bounds each call.
type MongoConfig struct {
	URI      string        `mapstructure:"uri"`
	Database string        `mapstructure:"database"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// GenAIConfig points the Gemini client at its endpoint. BaseURL and
// APIVersion are only overridden in tests and behind proxies.
type GenAIConfig struct {
	APIKey     string        `mapstructure:"api_key"`
	BaseURL    string        `mapstructure:"base_url"`
	APIVersion string        `mapstructure:"api_version"`
	Model      string        `mapstructure:"model"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// AuthConfig configures login tokens and doctor-route protection.
type AuthConfig struct {
	JWTSecret           string        `mapstructure:"jwt_secret"`
	TokenTTL            time.Duration `mapstructure:"token_ttl"`
	ProtectDoctorRoutes bool          `mapstructure:"protect_doctor_routes"`
}

// RedisConfig enables login sessions when Addr is set.
type RedisConfig struct {
	Addr       string        `mapstructure:"addr"`
	Password   string        `mapstructure:"password"`
	DB         int           `mapstructure:"db"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig selects the log level and the text or json format.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SentryConfig configures error reporting; an empty DSN disables sending.
type SentryConfig struct {
	DSN         string `mapstructure:"dsn"`
	Environment string `mapstructure:"environment"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 9000)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("mongo.uri", "mongodb://127.0.0.1:27017")
	v.SetDefault("mongo.database", "healthAssistantDB")
	v.SetDefault("mongo.timeout", 10*time.Second)

	v.SetDefault("genai.api_key", "")
	v.SetDefault("genai.base_url", "https://generativelanguage.googleapis.com/")
	v.SetDefault("genai.api_version", "v1beta")
	v.SetDefault("genai.model", "gemini-1.5-flash")
	v.SetDefault("genai.timeout", 20*time.Second)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("auth.protect_doctor_routes", false)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.session_ttl", 24*time.Hour)

	v.SetDefault("cors.allowed_origins", []string{"*"})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "development")
}

// Load reads config.toml (optional), .env (optional) and the environment.
// Environment variables win; nested keys map to upper snake case
// (genai.api_key -> GENAI_API_KEY).
func Load() (*Config, error) {
	_ = godotenv.Load()

	configName := "config"
	if name := os.Getenv("CONFIG_NAME"); name != "" {
		configName = name
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// legacy variable names
	_ = v.BindEnv("server.port", "SERVER_PORT", "PORT")
	_ = v.BindEnv("mongo.uri", "MONGO_URI", "MONGODB_URI")
	_ = v.BindEnv("mongo.database", "MONGO_DATABASE", "DB_NAME")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return errors.New("server.port must be positive")
	}
	if c.Mongo.URI == "" {
		return errors.New("mongo.uri is required")
	}
	if c.Mongo.Database == "" {
		return errors.New("mongo.database is required")
	}
	if c.GenAI.Timeout <= 0 || c.Mongo.Timeout <= 0 {
		return errors.New("timeouts must be positive")
	}
	if c.Auth.ProtectDoctorRoutes && weakSecret(c.Auth.JWTSecret) {
		return errors.New("auth.jwt_secret must be set to a private value when auth.protect_doctor_routes is on")
	}
	return nil
}

// weakSecret reports secrets that anyone could guess and sign tokens with.
func weakSecret(secret string) bool {
	switch strings.ToLower(strings.TrimSpace(secret)) {
	case "", "change-me", "changeme", "secret", "jwt_secret":
		return true
	}
	return false
}

// SessionsEnabled reports whether login sessions are backed by Redis.
func (c *Config) SessionsEnabled() bool {
	return c.Redis.Addr != ""
}
