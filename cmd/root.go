package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "yamabiko",
	Short: "Voice-message transcription bot for LINE",
	Long: `Yamabiko receives LINE webhook events, transcribes audio and video
messages through a speech-to-text service, and replies to the chat with
the language-tagged transcript.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".yamabiko.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
