package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (YAMABIKO_*). A missing file is not an
// error; defaults apply.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: YAMABIKO_SERVER__PORT -> server.port,
	// etc. Double underscore separates nesting levels because key names
	// themselves contain underscores.
	if err := k.Load(env.Provider("YAMABIKO_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "YAMABIKO_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// LoadSecrets reads the three credentials from their fixed environment
// variables. It does not validate presence; Secrets.Validate does.
func LoadSecrets() Secrets {
	return Secrets{
		ChannelSecret:       os.Getenv(EnvChannelSecret),
		ChannelAccessToken:  os.Getenv(EnvChannelAccessToken),
		TranscriptionAPIKey: os.Getenv(EnvTranscriptionAPIKey),
	}
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validProviders is the set of recognized transcription backends.
var validProviders = map[ScribeProvider]bool{
	ProviderElevenLabs: true,
	ProviderWhisper:    true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if !validProviders[c.Scribe.Provider] {
		return fmt.Errorf("invalid scribe provider %q: must be one of elevenlabs, whisper", c.Scribe.Provider)
	}
	if c.Line.APIBaseURL == "" || c.Line.DataBaseURL == "" {
		return fmt.Errorf("line api_base_url and data_base_url are required")
	}
	if c.Scribe.BaseURL == "" && c.Scribe.Provider == ProviderElevenLabs {
		return fmt.Errorf("scribe base_url is required for the elevenlabs provider")
	}
	if c.Line.TimeoutSeconds <= 0 {
		return fmt.Errorf("line timeout_seconds must be positive")
	}
	if c.Scribe.TimeoutSeconds <= 0 {
		return fmt.Errorf("scribe timeout_seconds must be positive")
	}
	return nil
}

// Validate checks that every credential the serve command needs is present.
func (s Secrets) Validate() error {
	if s.ChannelSecret == "" {
		return fmt.Errorf("%s environment variable is not set", EnvChannelSecret)
	}
	if s.ChannelAccessToken == "" {
		return fmt.Errorf("%s environment variable is not set", EnvChannelAccessToken)
	}
	if s.TranscriptionAPIKey == "" {
		return fmt.Errorf("%s environment variable is not set", EnvTranscriptionAPIKey)
	}
	return nil
}
