package prompt

import (
	"strings"
	"testing"
)

func TestApply(t *testing.T) {
	tests := []struct {
		template string
		prompt   string
		expected string
	}{
		{"draw {{prompt}} now", "a cat", "draw a cat now"},
		{"{{prompt}}", "hello", "hello"},
		{"no placeholder", "hello", "no placeholder"},
		{"{{prompt}} and {{prompt}}", "x", "x and {{prompt}}"},
		{"say {{prompt}}", "", "say "},
	}

	for _, test := range tests {
		if got := Apply(test.template, test.prompt); got != test.expected {
			t.Errorf("Apply(%q, %q) = %q, want %q", test.template, test.prompt, got, test.expected)
		}
	}
}

func TestFixedTemplatesContainSinglePlaceholder(t *testing.T) {
	for name, template := range map[string]string{
		"chat":  ChatTemplate,
		"image": ImageTemplate,
	} {
		if n := strings.Count(template, placeholder); n != 1 {
			t.Errorf("%s template contains %d placeholders, want 1", name, n)
		}
		if got := Apply(template, "a red panda"); strings.Contains(got, placeholder) {
			t.Errorf("%s template still contains the placeholder after Apply: %q", name, got)
		}
	}

	if strings.Contains(ImageNegativePrompt, placeholder) {
		t.Error("negative prompt must not contain the placeholder")
	}
}
