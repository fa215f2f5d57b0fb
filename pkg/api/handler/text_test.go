package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dskvich/ai-proxy/pkg/domain"
)

type fakeTextService struct {
	resp   *domain.TextResponse
	err    error
	called bool
	prompt string
}

func (f *fakeTextService) GenerateText(_ context.Context, prompt string) (*domain.TextResponse, error) {
	f.called = true
	f.prompt = prompt
	return f.resp, f.err
}

func TestTextGenerate_MissingPrompt(t *testing.T) {
	for _, target := range []string{"/ai/txt2txt", "/ai/txt2txt?prompt="} {
		svc := &fakeTextService{}
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, target, nil)

		NewText(svc).Generate(w, r)

		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want %d", target, w.Code, http.StatusBadRequest)
		}
		if body := strings.TrimSpace(w.Body.String()); body != "Missing prompt" {
			t.Errorf("%s: body = %q, want %q", target, body, "Missing prompt")
		}
		if svc.called {
			t.Errorf("%s: service was called for an empty prompt", target)
		}
	}
}

func TestTextGenerate_Success(t *testing.T) {
	svc := &fakeTextService{resp: &domain.TextResponse{Response: "AB", CreatedAt: 1700000000}}
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/ai/txt2txt?prompt=hello", nil)

	NewText(svc).Generate(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if svc.prompt != "hello" {
		t.Errorf("prompt passed to service = %q, want %q", svc.prompt, "hello")
	}

	var got domain.TextResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if got.Response != "AB" || got.CreatedAt != 1700000000 {
		t.Errorf("body = %+v, want {AB 1700000000}", got)
	}
}

func TestTextGenerate_InternalError(t *testing.T) {
	svc := &fakeTextService{err: errors.New("boom")}
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/ai/txt2txt?prompt=hello", nil)

	NewText(svc).Generate(w, r)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "Internal Server Error" {
		t.Errorf("body = %q, want %q", body, "Internal Server Error")
	}
}
