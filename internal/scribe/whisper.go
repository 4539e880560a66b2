package scribe

import (
	"bytes"
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// WhisperProvider implements Provider using the OpenAI Whisper API.
type WhisperProvider struct {
	client *openai.Client
}

// NewWhisperProvider creates a new Whisper provider.
func NewWhisperProvider(apiKey string) *WhisperProvider {
	return &WhisperProvider{client: openai.NewClient(apiKey)}
}

func (p *WhisperProvider) Name() string {
	return "whisper"
}

// Transcribe submits the media blob to Whisper. The verbose-JSON response
// format carries the detected language.
func (p *WhisperProvider) Transcribe(ctx context.Context, audio []byte) (*Result, error) {
	resp, err := p.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: "media.m4a",
		Reader:   bytes.NewReader(audio),
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return nil, err
	}

	return &Result{Text: resp.Text, LanguageCode: resp.Language}, nil
}
