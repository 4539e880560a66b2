package scribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

const speechToTextPath = "/v1/speech-to-text"

// ElevenLabsConfig holds settings for the Scribe speech-to-text backend.
type ElevenLabsConfig struct {
	BaseURL string
	APIKey  string
	ModelID string
	Timeout time.Duration
}

// ElevenLabsProvider implements Provider against the ElevenLabs Scribe API.
type ElevenLabsProvider struct {
	cfg    ElevenLabsConfig
	client *http.Client
}

// NewElevenLabsProvider creates a new Scribe provider.
func NewElevenLabsProvider(cfg ElevenLabsConfig) *ElevenLabsProvider {
	if cfg.ModelID == "" {
		cfg.ModelID = "scribe_v1"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}
	return &ElevenLabsProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (p *ElevenLabsProvider) Name() string {
	return "elevenlabs"
}

// scribeResponse is the service's transcript payload.
type scribeResponse struct {
	LanguageCode string `json:"language_code"`
	Text         string `json:"text"`
}

// Transcribe uploads the media blob and returns the language-tagged
// transcript. Audio-event tagging is disabled: the bot relays plain text.
func (p *ElevenLabsProvider) Transcribe(ctx context.Context, audio []byte) (*Result, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", "media")
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return nil, fmt.Errorf("write media blob: %w", err)
	}
	_ = writer.WriteField("model_id", p.cfg.ModelID)
	_ = writer.WriteField("tag_audio_events", "false")
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+speechToTextPath, &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	httpReq.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)

	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("transcription request: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		body, _ := io.ReadAll(httpResp.Body)
		return nil, &APIError{StatusCode: httpResp.StatusCode, Body: string(body)}
	}

	var resp scribeResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode transcription response: %w", err)
	}

	return &Result{Text: resp.Text, LanguageCode: resp.LanguageCode}, nil
}
