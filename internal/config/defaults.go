package config

// Environment variable names for the three process credentials.
const (
	EnvChannelSecret       = "CHANNEL_SECRET"
	EnvChannelAccessToken  = "CHANNEL_ACCESS_TOKEN"
	EnvTranscriptionAPIKey = "TRANSCRIPTION_API_KEY"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
		},
		Line: LineConfig{
			APIBaseURL:     "https://api.line.me",
			DataBaseURL:    "https://api-data.line.me",
			TimeoutSeconds: 30,
		},
		Scribe: ScribeConfig{
			Provider:       ProviderElevenLabs,
			BaseURL:        "https://api.elevenlabs.io",
			ModelID:        "scribe_v1",
			TimeoutSeconds: 120,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
