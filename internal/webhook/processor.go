package webhook

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yamabiko-bot/yamabiko/internal/line"
	"github.com/yamabiko-bot/yamabiko/internal/scribe"
)

const (
	// unsupportedReply is sent for events the bot cannot transcribe.
	unsupportedReply = "Please send an audio or video message."
	// emptyTranscript replaces a transcript the service returned blank.
	emptyTranscript = "(could not transcribe)"
	// fetchFailedReply is sent when the media blob cannot be retrieved.
	fetchFailedReply = "Sorry, I couldn't fetch that media message. Please try sending it again."
	// transcribeFailedReply prefixes the service's error text.
	transcribeFailedReply = "Transcription failed: "

	// maxErrorDetail bounds how much service error text reaches the user.
	maxErrorDetail = 200
)

// BotClient is the slice of the platform client the processor needs.
type BotClient interface {
	Reply(ctx context.Context, replyToken string, messages []line.TextMessage) error
	ShowLoading(ctx context.Context, chatID string) error
	MessageContent(ctx context.Context, messageID string) ([]byte, error)
}

// Processor runs the per-event transcription pipeline: fetch the media
// blob, transcribe it, and reply with the language-tagged transcript.
// Exactly one reply is attempted per event in every path, because reply
// tokens are single-use.
type Processor struct {
	bot    BotClient
	scribe scribe.Provider
	logger zerolog.Logger
}

// NewProcessor creates a new event processor.
func NewProcessor(bot BotClient, provider scribe.Provider, logger zerolog.Logger) *Processor {
	return &Processor{bot: bot, scribe: provider, logger: logger}
}

// HandleEvent implements EventHandler.
func (p *Processor) HandleEvent(ctx context.Context, ev Event) error {
	if ev.Kind() == KindUnsupported {
		return p.reply(ctx, ev.ReplyToken, unsupportedReply)
	}

	// Advisory only; a failed indicator must not abort the pipeline.
	if err := p.bot.ShowLoading(ctx, ev.Source.ChatID()); err != nil {
		p.logger.Warn().Err(err).Msg("loading indicator failed")
	}

	blob, err := p.bot.MessageContent(ctx, ev.Message.ID)
	if err != nil {
		if replyErr := p.reply(ctx, ev.ReplyToken, fetchFailedReply); replyErr != nil {
			p.logger.Error().Err(replyErr).Msg("error reply delivery failed")
		}
		return fmt.Errorf("fetching media content: %w", err)
	}

	result, err := p.scribe.Transcribe(ctx, blob)
	if err != nil {
		text := transcribeFailedReply + truncate(errorDetail(err), maxErrorDetail)
		if replyErr := p.reply(ctx, ev.ReplyToken, text); replyErr != nil {
			p.logger.Error().Err(replyErr).Msg("error reply delivery failed")
		}
		return fmt.Errorf("transcribing media: %w", err)
	}

	text := result.Text
	if text == "" {
		text = emptyTranscript
	}
	return p.reply(ctx, ev.ReplyToken, fmt.Sprintf("[%s]: %s", result.LanguageCode, text))
}

func (p *Processor) reply(ctx context.Context, replyToken, text string) error {
	if err := p.bot.Reply(ctx, replyToken, []line.TextMessage{line.NewTextMessage(text)}); err != nil {
		return fmt.Errorf("sending reply: %w", err)
	}
	return nil
}

// errorDetail extracts the user-visible portion of a transcription error.
// For service errors that is the service's own error text.
func errorDetail(err error) string {
	var apiErr *scribe.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Body
	}
	return err.Error()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
