package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dskvich/ai-proxy/pkg/domain"
	"github.com/dskvich/ai-proxy/pkg/prompt"
)

type fakeImageGenerator struct {
	data string
	err  error

	called bool
	params domain.ImageParams
}

func (f *fakeImageGenerator) GenerateImage(_ context.Context, params domain.ImageParams) (string, error) {
	f.called = true
	f.params = params
	return f.data, f.err
}

func TestGenerateImage_ModeratesOutputAfterGeneration(t *testing.T) {
	generator := &fakeImageGenerator{data: "xyz"}
	moderator := &fakeModerator{flagged: true}

	result, err := NewImageService(generator, moderator).GenerateImage(context.Background(), "a cat", 512, 512, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !generator.called {
		t.Fatal("generator was not called; image moderation runs on the output")
	}
	if moderator.imageCalls != 1 || moderator.textCalls != 0 {
		t.Errorf("moderator calls: image=%d text=%d, want image=1 text=0", moderator.imageCalls, moderator.textCalls)
	}
	if moderator.lastInput != "xyz" {
		t.Errorf("moderated input = %q, want the generated payload", moderator.lastInput)
	}
	if !result.Flagged {
		t.Error("result is not flagged")
	}
	if result.Data != "" {
		t.Errorf("flagged result still carries data %q", result.Data)
	}
}

func TestGenerateImage_BuildsParams(t *testing.T) {
	generator := &fakeImageGenerator{data: "xyz"}

	result, err := NewImageService(generator, nil).GenerateImage(context.Background(), "a cat", 1400, 512, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := generator.params
	if p.Width != 1400 || p.Height != 512 || p.Seed != 42 {
		t.Errorf("params = %+v, want width=1400 height=512 seed=42", p)
	}
	if !strings.Contains(p.Prompt, "a cat") || strings.Contains(p.Prompt, "{{prompt}}") {
		t.Errorf("templated prompt %q is wrong", p.Prompt)
	}
	if p.NegativePrompt != prompt.ImageNegativePrompt {
		t.Errorf("negative prompt = %q, want the fixed one", p.NegativePrompt)
	}
	if result.Data != "xyz" || result.Flagged {
		t.Errorf("result = %+v, want unflagged xyz", result)
	}
}

func TestGenerateImage_ModerationFailureFailsOpen(t *testing.T) {
	generator := &fakeImageGenerator{data: "xyz"}
	moderator := &fakeModerator{err: errors.New("moderation down")}

	result, err := NewImageService(generator, moderator).GenerateImage(context.Background(), "a cat", 512, 512, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Flagged || result.Data != "xyz" {
		t.Errorf("result = %+v, want unflagged xyz", result)
	}
}

func TestGenerateImage_GeneratorErrorPassesThrough(t *testing.T) {
	generator := &fakeImageGenerator{err: domain.ErrNoImageData}
	moderator := &fakeModerator{}

	_, err := NewImageService(generator, moderator).GenerateImage(context.Background(), "a cat", 512, 512, 0)
	if !errors.Is(err, domain.ErrNoImageData) {
		t.Fatalf("err = %v, want ErrNoImageData", err)
	}
	if moderator.imageCalls != 0 {
		t.Error("moderator was called after a failed generation")
	}
}
