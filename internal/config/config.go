package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm"     validate:"required"`
	Pokedex PokedexConfig `mapstructure:"pokedex" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port"                     validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level"                validate:"required,oneof=debug info warn error"`
	LogFormat              string `mapstructure:"log_format"               validate:"required,oneof=json text"`
	LogFile                string `mapstructure:"log_file"`
	LogMaxSizeMB           int    `mapstructure:"log_max_size_mb"          validate:"gte=0"`
	LogMaxBackups          int    `mapstructure:"log_max_backups"          validate:"gte=0"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"required,gt=0"`
}

// LLMConfig contains all LLM integration related settings.
//
// GeminiAPIKey is deliberately optional: a missing key surfaces as a
// communication failure on the first identification, not as a startup error.
type LLMConfig struct {
	GeminiAPIKey       string `mapstructure:"gemini_api_key"`
	ModelName          string `mapstructure:"model_name"           validate:"required"`
	TimeoutSeconds     int    `mapstructure:"timeout_seconds"      validate:"required,gt=0"`
	PromptTemplatePath string `mapstructure:"prompt_template_path" validate:"omitempty,file"`
	SystemInstruction  string `mapstructure:"system_instruction"   validate:"required"`
}

// PokedexConfig contains settings for the chat front-end collaborators.
type PokedexConfig struct {
	// SpriteURLTemplate and CryURLTemplate must contain the literal {id} placeholder.
	SpriteURLTemplate string `mapstructure:"sprite_url_template" validate:"required,contains={id}"`
	CryURLTemplate    string `mapstructure:"cry_url_template"    validate:"required,contains={id}"`
	MaxSessions       int    `mapstructure:"max_sessions"        validate:"gte=0"`
}
