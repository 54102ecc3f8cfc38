package llm

// Image is an inline image attached to a request. MediaType is a MIME type
// such as image/jpeg.
type Image struct {
	MediaType string
	Data      []byte
}

type LLMRequest struct {
	Prompt      string
	Images      []Image
	MaxTokens   int
	Temperature float64
}

type LLMResponse struct {
	Content    string
	StopReason string
}
