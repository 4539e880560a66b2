package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .yamabiko.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to yamabiko! Let's configure your bot.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Transcription backend.
	providerPrompt := promptui.Select{
		Label: "Select transcription backend",
		Items: []string{
			"elevenlabs — Scribe speech-to-text",
			"whisper    — OpenAI Whisper",
		},
	}
	providerIdx, _, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	providers := []ScribeProvider{ProviderElevenLabs, ProviderWhisper}
	cfg.Scribe.Provider = providers[providerIdx]

	// 2. Listen port.
	portPrompt := promptui.Prompt{
		Label:   "Webhook listen port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p <= 0 || p > 65535 {
				return fmt.Errorf("port must be a number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 3. Log format.
	formatPrompt := promptui.Select{
		Label: "Log format",
		Items: []string{"console", "json"},
	}
	_, cfg.Log.Format, err = formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log format: %w", err)
	}

	// Point out any missing credentials.
	for _, envVar := range []string{EnvChannelSecret, EnvChannelAccessToken, EnvTranscriptionAPIKey} {
		if os.Getenv(envVar) == "" {
			fmt.Printf("\nNote: Set %s in your environment before running yamabiko serve.\n", envVar)
		}
	}

	configPath := ".yamabiko.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}
