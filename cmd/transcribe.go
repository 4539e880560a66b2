package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yamabiko-bot/yamabiko/internal/config"
	"github.com/yamabiko-bot/yamabiko/internal/scribe"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <file>",
	Short: "Transcribe a local media file",
	Long: `Runs the configured transcription backend against a local audio or
video file and prints the language-tagged transcript. Useful for checking
credentials and backend settings without going through the platform.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		apiKey := os.Getenv(config.EnvTranscriptionAPIKey)
		if apiKey == "" {
			return fmt.Errorf("%s environment variable is not set", config.EnvTranscriptionAPIKey)
		}

		provider, err := scribe.New(cfg.Scribe, apiKey)
		if err != nil {
			return fmt.Errorf("creating transcription provider: %w", err)
		}

		blob, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		result, err := provider.Transcribe(context.Background(), blob)
		if err != nil {
			return fmt.Errorf("transcribing: %w", err)
		}

		fmt.Printf("[%s]: %s\n", result.LanguageCode, result.Text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(transcribeCmd)
}
