package prompt

import "strings"

const placeholder = "{{prompt}}"

// Fixed templates the user prompt is substituted into before it reaches
// the provider. Each contains the placeholder exactly once.
const (
	ChatTemplate = "You are a helpful assistant. Answer the following request concisely " +
		"and in the language it was asked in: {{prompt}}"

	ImageTemplate = "{{prompt}}, highly detailed, sharp focus, professional digital art, " +
		"trending on artstation, 8k"

	// ImageNegativePrompt has no placeholder; it is sent verbatim.
	ImageNegativePrompt = "blurry, low quality, low resolution, deformed, disfigured, " +
		"watermark, text, bad anatomy"
)

// Apply substitutes the prompt into the first occurrence of the template
// placeholder. The prompt itself is not escaped or modified.
func Apply(template, prompt string) string {
	return strings.Replace(template, placeholder, prompt, 1)
}
