package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dskvich/ai-proxy/pkg/domain"
)

type fakeTextGenerator struct {
	text      string
	createdAt int64
	err       error

	called bool
	prompt string
}

func (f *fakeTextGenerator) CompleteText(_ context.Context, prompt string) (string, int64, error) {
	f.called = true
	f.prompt = prompt
	return f.text, f.createdAt, f.err
}

type fakeModerator struct {
	flagged bool
	err     error

	textCalls  int
	imageCalls int
	lastInput  string
}

func (f *fakeModerator) ModerateText(_ context.Context, text string) (bool, error) {
	f.textCalls++
	f.lastInput = text
	return f.flagged, f.err
}

func (f *fakeModerator) ModerateImage(_ context.Context, imageB64 string) (bool, error) {
	f.imageCalls++
	f.lastInput = imageB64
	return f.flagged, f.err
}

func TestGenerateText_FlaggedPromptShortCircuits(t *testing.T) {
	generator := &fakeTextGenerator{text: "never"}
	moderator := &fakeModerator{flagged: true}

	resp, err := NewTextService(generator, moderator).GenerateText(context.Background(), "bad prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Response != domain.FlaggedContentMessage {
		t.Errorf("response = %q, want the flagged message", resp.Response)
	}
	if resp.CreatedAt == 0 {
		t.Error("created_at is zero, want a timestamp")
	}
	if generator.called {
		t.Error("generator was called for a flagged prompt")
	}
	if moderator.lastInput != "bad prompt" {
		t.Errorf("moderated input = %q, want the raw prompt", moderator.lastInput)
	}
}

func TestGenerateText_ModerationFailureFailsOpen(t *testing.T) {
	generator := &fakeTextGenerator{text: "ok", createdAt: 1700000000}
	moderator := &fakeModerator{err: errors.New("moderation down")}

	resp, err := NewTextService(generator, moderator).GenerateText(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !generator.called {
		t.Fatal("generator was not called after a moderation failure")
	}
	if resp.Response != "ok" || resp.CreatedAt != 1700000000 {
		t.Errorf("response = %+v, want the generated text", resp)
	}
}

func TestGenerateText_AppliesTemplateOnce(t *testing.T) {
	generator := &fakeTextGenerator{text: "ok"}

	if _, err := NewTextService(generator, nil).GenerateText(context.Background(), "a question"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(generator.prompt, "a question") {
		t.Errorf("templated prompt %q does not contain the user prompt", generator.prompt)
	}
	if strings.Contains(generator.prompt, "{{prompt}}") {
		t.Errorf("templated prompt %q still contains the placeholder", generator.prompt)
	}
}

func TestGenerateText_GeneratorError(t *testing.T) {
	generator := &fakeTextGenerator{err: errors.New("boom")}

	if _, err := NewTextService(generator, nil).GenerateText(context.Background(), "hello"); err == nil {
		t.Fatal("expected an error")
	}
}
