package config

// ScribeProvider identifies a transcription backend.
type ScribeProvider string

const (
	ProviderElevenLabs ScribeProvider = "elevenlabs"
	ProviderWhisper    ScribeProvider = "whisper"
)

// Config is the top-level yamabiko configuration, corresponding to .yamabiko.yml.
// Secrets are intentionally absent: they are read only from the environment.
type Config struct {
	Server ServerConfig `yaml:"server" koanf:"server"`
	Line   LineConfig   `yaml:"line" koanf:"line"`
	Scribe ScribeConfig `yaml:"scribe" koanf:"scribe"`
	Log    LogConfig    `yaml:"log" koanf:"log"`
}

// ServerConfig holds the inbound HTTP server settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// LineConfig holds the chat-platform API endpoints and outbound call policy.
type LineConfig struct {
	APIBaseURL     string `yaml:"api_base_url" koanf:"api_base_url"`
	DataBaseURL    string `yaml:"data_base_url" koanf:"data_base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds" koanf:"timeout_seconds"`
}

// ScribeConfig holds the transcription backend settings.
type ScribeConfig struct {
	Provider       ScribeProvider `yaml:"provider" koanf:"provider"`
	BaseURL        string         `yaml:"base_url" koanf:"base_url"`
	ModelID        string         `yaml:"model_id" koanf:"model_id"`
	TimeoutSeconds int            `yaml:"timeout_seconds" koanf:"timeout_seconds"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"` // "console" or "json"
}

// Secrets holds the three process credentials. They are loaded once from
// the environment at startup, never written to the config file and never
// logged.
type Secrets struct {
	ChannelSecret       string
	ChannelAccessToken  string
	TranscriptionAPIKey string
}
