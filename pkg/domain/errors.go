package domain

import (
	"errors"
	"fmt"
)

// ErrNoImageData is returned when the provider accepted an image request
// but the response carried no image payload.
var ErrNoImageData = errors.New("no image data in response")

// UpstreamError is a non-success reply from the inference provider. Body
// holds the provider's raw error body and is relayed to the caller as-is.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream responded with status %d: %s", e.StatusCode, e.Body)
}
