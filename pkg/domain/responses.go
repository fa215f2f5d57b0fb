package domain

const FlaggedContentMessage = "This content has been flagged as inappropriate."

// TextResponse is the envelope returned by the text route, and by both
// routes when moderation flags the content.
type TextResponse struct {
	Response  string `json:"response"`
	CreatedAt int64  `json:"created_at"`
}

// ImageResponse is the envelope returned by the image route.
type ImageResponse struct {
	Data string `json:"data"`
}

// ImageResult is what the image pipeline produces: either a base64 payload
// or a flagged verdict with the moderation timestamp.
type ImageResult struct {
	Data      string
	Flagged   bool
	CreatedAt int64
}
