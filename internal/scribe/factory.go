package scribe

import (
	"fmt"
	"time"

	"github.com/yamabiko-bot/yamabiko/internal/config"
)

// New creates a transcription provider from config. The API key comes
// from the process secrets, not the config file.
func New(cfg config.ScribeConfig, apiKey string) (Provider, error) {
	switch cfg.Provider {
	case config.ProviderElevenLabs:
		return NewElevenLabsProvider(ElevenLabsConfig{
			BaseURL: cfg.BaseURL,
			APIKey:  apiKey,
			ModelID: cfg.ModelID,
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		}), nil

	case config.ProviderWhisper:
		return NewWhisperProvider(apiKey), nil

	default:
		return nil, fmt.Errorf("unsupported scribe provider: %s", cfg.Provider)
	}
}
