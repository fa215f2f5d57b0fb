package openai

type imagesGenerationsRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negative_prompt,omitempty"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	Steps          int    `json:"steps"`
	Seed           int64  `json:"seed,omitempty"`
	N              int    `json:"n"`
	ResponseFormat string `json:"response_format"`
}

type imagesGenerationsResponse struct {
	ID      string `json:"id"`
	Created int64  `json:"created"`
	Data    []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}
