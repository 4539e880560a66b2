// Package line is a minimal client for the LINE Messaging API surfaces
// the bot needs: replying, fetching message content, and the chat
// loading indicator.
package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TextMessage is an outgoing text reply.
type TextMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewTextMessage builds a text reply message.
func NewTextMessage(text string) TextMessage {
	return TextMessage{Type: "text", Text: text}
}

// Config holds the client settings. The channel access token comes from
// the process secrets.
type Config struct {
	APIBaseURL         string // messaging endpoints, e.g. https://api.line.me
	DataBaseURL        string // content endpoints, e.g. https://api-data.line.me
	ChannelAccessToken string
	Timeout            time.Duration
}

// Client calls the LINE Messaging API with bearer authentication.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates a new Messaging API client.
func NewClient(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type replyRequest struct {
	ReplyToken string        `json:"replyToken"`
	Messages   []TextMessage `json:"messages"`
}

// Reply sends one or more messages tied to a reply token. Each token is
// single-use; the platform rejects a second call with the same token.
func (c *Client) Reply(ctx context.Context, replyToken string, messages []TextMessage) error {
	payload := replyRequest{ReplyToken: replyToken, Messages: messages}
	return c.postJSON(ctx, c.cfg.APIBaseURL+"/v2/bot/message/reply", payload)
}

type loadingRequest struct {
	ChatID         string `json:"chatId"`
	LoadingSeconds int    `json:"loadingSeconds"`
}

// ShowLoading starts the typing/loading indicator in the given chat. The
// indicator is advisory; callers treat failures as non-fatal.
func (c *Client) ShowLoading(ctx context.Context, chatID string) error {
	payload := loadingRequest{ChatID: chatID, LoadingSeconds: 60}
	return c.postJSON(ctx, c.cfg.APIBaseURL+"/v2/bot/chat/loading/start", payload)
}

// MessageContent fetches the binary blob behind a media message.
func (c *Client) MessageContent(ctx context.Context, messageID string) ([]byte, error) {
	url := fmt.Sprintf("%s/v2/bot/message/%s/content", c.cfg.DataBaseURL, messageID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create content request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.ChannelAccessToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch message content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("content fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}

func (c *Client) postJSON(ctx context.Context, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.ChannelAccessToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("api returned status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
