package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "POKEDEX"

// Default values applied before any file or environment source is read.
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "json"
	DefaultShutdownTimeout   = 10
	DefaultModelName         = "gemini-2.5-flash"
	DefaultTimeoutSeconds    = 30
	DefaultSystemInstruction = "You are a helpful Pokedex assistant with a retro game personality."
	DefaultSpriteURLTemplate = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/{id}.png"
	DefaultCryURLTemplate    = "https://raw.githubusercontent.com/PokeAPI/cries/main/cries/pokemon/latest/{id}.ogg"
	DefaultMaxSessions       = 1000
)

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// A .env file in the working directory is loaded first if present; it never
// overrides variables that are already set in the process environment.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir := os.Getenv(EnvPrefix + "_CONFIG_DIR"); dir != "" {
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The credential may also come from the conventional Gemini variables.
	if err := v.BindEnv("llm.gemini_api_key",
		EnvPrefix+"_LLM_GEMINI_API_KEY", "GEMINI_API_KEY", "API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind API key environment: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the struct tags on cfg.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config validation failed: config is nil")
	}
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.log_format", DefaultLogFormat)
	v.SetDefault("server.log_file", "")
	v.SetDefault("server.log_max_size_mb", 50)
	v.SetDefault("server.log_max_backups", 3)
	v.SetDefault("server.shutdown_timeout_seconds", DefaultShutdownTimeout)

	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model_name", DefaultModelName)
	v.SetDefault("llm.timeout_seconds", DefaultTimeoutSeconds)
	v.SetDefault("llm.prompt_template_path", "")
	v.SetDefault("llm.system_instruction", DefaultSystemInstruction)

	v.SetDefault("pokedex.sprite_url_template", DefaultSpriteURLTemplate)
	v.SetDefault("pokedex.cry_url_template", DefaultCryURLTemplate)
	v.SetDefault("pokedex.max_sessions", DefaultMaxSessions)
}
