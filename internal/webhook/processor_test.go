package webhook

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/yamabiko-bot/yamabiko/internal/line"
	"github.com/yamabiko-bot/yamabiko/internal/scribe"
)

// mockBot records the platform calls the processor makes.
type mockBot struct {
	replies      [][]line.TextMessage
	replyTokens  []string
	replyErr     error
	loadingCalls int
	loadingErr   error
	contentCalls int
	contentBlob  []byte
	contentErr   error
}

func (m *mockBot) Reply(_ context.Context, replyToken string, messages []line.TextMessage) error {
	m.replyTokens = append(m.replyTokens, replyToken)
	m.replies = append(m.replies, messages)
	return m.replyErr
}

func (m *mockBot) ShowLoading(_ context.Context, _ string) error {
	m.loadingCalls++
	return m.loadingErr
}

func (m *mockBot) MessageContent(_ context.Context, _ string) ([]byte, error) {
	m.contentCalls++
	if m.contentErr != nil {
		return nil, m.contentErr
	}
	return m.contentBlob, nil
}

// stubScribe returns a canned result or error.
type stubScribe struct {
	result *scribe.Result
	err    error
	calls  int
	got    []byte
}

func (s *stubScribe) Transcribe(_ context.Context, audio []byte) (*scribe.Result, error) {
	s.calls++
	s.got = audio
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubScribe) Name() string { return "stub" }

func singleReplyText(t *testing.T, bot *mockBot) string {
	t.Helper()
	if len(bot.replies) != 1 {
		t.Fatalf("expected exactly one reply, got %d", len(bot.replies))
	}
	if len(bot.replies[0]) != 1 {
		t.Fatalf("expected one message in reply, got %d", len(bot.replies[0]))
	}
	return bot.replies[0][0].Text
}

func TestProcessorUnsupportedTextMessage(t *testing.T) {
	bot := &mockBot{}
	sc := &stubScribe{}
	p := NewProcessor(bot, sc, zerolog.Nop())

	ev := Event{
		Type:       "message",
		ReplyToken: "rt",
		Source:     Source{UserID: "U1"},
		Message:    &Message{ID: "m1", Type: "text"},
	}
	if err := p.HandleEvent(context.Background(), ev); err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}

	if got := singleReplyText(t, bot); got != "Please send an audio or video message." {
		t.Errorf("unexpected instructional reply: %q", got)
	}
	if bot.contentCalls != 0 || sc.calls != 0 || bot.loadingCalls != 0 {
		t.Error("unsupported event must trigger zero outbound pipeline calls")
	}
}

func TestProcessorMessageAbsent(t *testing.T) {
	bot := &mockBot{}
	sc := &stubScribe{}
	p := NewProcessor(bot, sc, zerolog.Nop())

	ev := Event{Type: "follow", ReplyToken: "rt", Source: Source{UserID: "U1"}}
	if err := p.HandleEvent(context.Background(), ev); err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}

	if got := singleReplyText(t, bot); got != "Please send an audio or video message." {
		t.Errorf("unexpected reply: %q", got)
	}
	if bot.contentCalls != 0 || sc.calls != 0 {
		t.Error("event without message must trigger zero fetch/transcription calls")
	}
}

func TestProcessorAudioSuccess(t *testing.T) {
	bot := &mockBot{contentBlob: []byte("ogg-bytes")}
	sc := &stubScribe{result: &scribe.Result{Text: "hello", LanguageCode: "en"}}
	p := NewProcessor(bot, sc, zerolog.Nop())

	ev := audioEvent("rt-1")
	if err := p.HandleEvent(context.Background(), ev); err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}

	if got := singleReplyText(t, bot); got != "[en]: hello" {
		t.Errorf("expected reply '[en]: hello', got %q", got)
	}
	if bot.replyTokens[0] != "rt-1" {
		t.Errorf("reply used wrong token %q", bot.replyTokens[0])
	}
	if string(sc.got) != "ogg-bytes" {
		t.Errorf("blob not passed to transcriber intact: %q", sc.got)
	}
	if bot.loadingCalls != 1 {
		t.Errorf("expected one loading indicator call, got %d", bot.loadingCalls)
	}
}

func TestProcessorVideoSuccess(t *testing.T) {
	bot := &mockBot{contentBlob: []byte("mp4")}
	sc := &stubScribe{result: &scribe.Result{Text: "konnichiwa", LanguageCode: "ja"}}
	p := NewProcessor(bot, sc, zerolog.Nop())

	ev := Event{
		Type:       "message",
		ReplyToken: "rt-v",
		Source:     Source{UserID: "U1"},
		Message:    &Message{ID: "m-v", Type: "video"},
	}
	if err := p.HandleEvent(context.Background(), ev); err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	if got := singleReplyText(t, bot); got != "[ja]: konnichiwa" {
		t.Errorf("unexpected reply %q", got)
	}
}

func TestProcessorEmptyTranscript(t *testing.T) {
	bot := &mockBot{contentBlob: []byte("audio")}
	sc := &stubScribe{result: &scribe.Result{Text: "", LanguageCode: "en"}}
	p := NewProcessor(bot, sc, zerolog.Nop())

	if err := p.HandleEvent(context.Background(), audioEvent("rt")); err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}

	got := singleReplyText(t, bot)
	if !strings.Contains(got, "(could not transcribe)") {
		t.Errorf("expected placeholder in reply, got %q", got)
	}
}

func TestProcessorTranscriptionAPIError(t *testing.T) {
	bot := &mockBot{contentBlob: []byte("audio")}
	sc := &stubScribe{err: &scribe.APIError{StatusCode: 429, Body: "rate limited"}}
	p := NewProcessor(bot, sc, zerolog.Nop())

	err := p.HandleEvent(context.Background(), audioEvent("rt"))
	if err == nil {
		t.Fatal("expected error result")
	}

	got := singleReplyText(t, bot)
	if !strings.Contains(got, "rate limited") {
		t.Errorf("expected service error text in reply, got %q", got)
	}
	if strings.Contains(got, "(could not transcribe)") {
		t.Errorf("error reply must not contain the empty-transcript placeholder: %q", got)
	}
}

func TestProcessorMediaFetchFailure(t *testing.T) {
	bot := &mockBot{contentErr: fmt.Errorf("connection refused")}
	sc := &stubScribe{}
	p := NewProcessor(bot, sc, zerolog.Nop())

	err := p.HandleEvent(context.Background(), audioEvent("rt"))
	if err == nil {
		t.Fatal("expected error result")
	}

	if got := singleReplyText(t, bot); !strings.Contains(got, "couldn't fetch") {
		t.Errorf("expected explanatory reply, got %q", got)
	}
	if sc.calls != 0 {
		t.Error("transcription must not run after a failed fetch")
	}
}

func TestProcessorLoadingFailureIgnored(t *testing.T) {
	bot := &mockBot{contentBlob: []byte("audio"), loadingErr: fmt.Errorf("indicator down")}
	sc := &stubScribe{result: &scribe.Result{Text: "hi", LanguageCode: "en"}}
	p := NewProcessor(bot, sc, zerolog.Nop())

	if err := p.HandleEvent(context.Background(), audioEvent("rt")); err != nil {
		t.Fatalf("loading indicator failure must not abort pipeline: %v", err)
	}
	if got := singleReplyText(t, bot); got != "[en]: hi" {
		t.Errorf("unexpected reply %q", got)
	}
}

func TestProcessorReplyDeliveryFailure(t *testing.T) {
	bot := &mockBot{contentBlob: []byte("audio"), replyErr: fmt.Errorf("token already used")}
	sc := &stubScribe{result: &scribe.Result{Text: "hi", LanguageCode: "en"}}
	p := NewProcessor(bot, sc, zerolog.Nop())

	err := p.HandleEvent(context.Background(), audioEvent("rt"))
	if err == nil {
		t.Fatal("expected error result for failed reply delivery")
	}
	// One attempt only: the token is single-use.
	if len(bot.replyTokens) != 1 {
		t.Errorf("expected exactly one reply attempt, got %d", len(bot.replyTokens))
	}
}
