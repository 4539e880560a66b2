package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yamabiko-bot/yamabiko/internal/config"
	"github.com/yamabiko-bot/yamabiko/internal/line"
	"github.com/yamabiko-bot/yamabiko/internal/logging"
	"github.com/yamabiko-bot/yamabiko/internal/scribe"
	"github.com/yamabiko-bot/yamabiko/internal/server"
	"github.com/yamabiko-bot/yamabiko/internal/webhook"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the webhook server",
	Long:  `Starts the yamabiko webhook server that receives LINE events and replies with transcripts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if servePort != 0 {
			cfg.Server.Port = servePort
		}
		if verbose {
			cfg.Log.Level = "debug"
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		secrets := config.LoadSecrets()
		if err := secrets.Validate(); err != nil {
			return err
		}

		logger := logging.New(cfg.Log)

		provider, err := scribe.New(cfg.Scribe, secrets.TranscriptionAPIKey)
		if err != nil {
			return fmt.Errorf("creating transcription provider: %w", err)
		}

		bot := line.NewClient(line.Config{
			APIBaseURL:         cfg.Line.APIBaseURL,
			DataBaseURL:        cfg.Line.DataBaseURL,
			ChannelAccessToken: secrets.ChannelAccessToken,
			Timeout:            time.Duration(cfg.Line.TimeoutSeconds) * time.Second,
		})

		processor := webhook.NewProcessor(bot, provider, logger)
		dispatcher := webhook.NewDispatcher(processor, logger)
		handler := webhook.NewHandler(dispatcher, secrets.ChannelSecret, logger)

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			AllowAll: cfg.Server.AllowAllOrigins,
		}, logger)
		webhook.RegisterRoutes(srv.Router(), handler)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logger.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		logger.Info().
			Str("version", Version).
			Str("scribe_provider", provider.Name()).
			Int("port", cfg.Server.Port).
			Msg("yamabiko starting")

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "override the configured listen port")
	rootCmd.AddCommand(serveCmd)
}
