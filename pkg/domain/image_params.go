package domain

// ImageParams describes a single image generation request as it goes
// upstream. Width and Height are expected to be clamped by the caller.
type ImageParams struct {
	Prompt         string
	NegativePrompt string
	Width          int
	Height         int
	Seed           int64
}
