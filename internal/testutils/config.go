package testutils

import "github.com/phrazzld/pokedex-api/internal/config"

// NewTestConfig returns a valid configuration built from the package
// defaults. No API key is set.
func NewTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   config.DefaultPort,
			LogLevel:               "debug",
			LogFormat:              config.DefaultLogFormat,
			ShutdownTimeoutSeconds: 1,
		},
		LLM: config.LLMConfig{
			ModelName:         config.DefaultModelName,
			TimeoutSeconds:    config.DefaultTimeoutSeconds,
			SystemInstruction: config.DefaultSystemInstruction,
		},
		Pokedex: config.PokedexConfig{
			SpriteURLTemplate: config.DefaultSpriteURLTemplate,
			CryURLTemplate:    config.DefaultCryURLTemplate,
			MaxSessions:       10,
		},
	}
}
