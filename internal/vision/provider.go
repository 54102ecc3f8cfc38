package vision

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/povarna/generative-ai-agents/menu-agent/internal/llm"
)

// Provider is an external OCR service. Annotation 0 is the full text blob,
// every following annotation is a single detected text region.
type Provider interface {
	DetectText(ctx context.Context, image []byte) ([]string, error)
}

const transcriptionPrompt = `You are an OCR engine reading a photographed restaurant menu.
Transcribe every line of text exactly as printed, one line per output line, top to bottom.
When a line describes a dish, write it as: <name> - <description> - $<price>
Output only the transcription, with no commentary.`

// LLMProvider performs OCR with a multimodal model.
type LLMProvider struct {
	client    llm.LLMClient
	maxTokens int
}

func NewLLMProvider(client llm.LLMClient) *LLMProvider {
	return &LLMProvider{
		client:    client,
		maxTokens: 2048,
	}
}

func (p *LLMProvider) DetectText(ctx context.Context, image []byte) ([]string, error) {
	resp, err := p.client.InvokeModel(ctx, llm.LLMRequest{
		Prompt:      transcriptionPrompt,
		Images:      []llm.Image{{MediaType: mediaType(image), Data: image}},
		MaxTokens:   p.maxTokens,
		Temperature: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("text detection failed: %w", err)
	}

	return annotations(resp.Content), nil
}

// annotations mirrors the provider contract: the whole transcription first,
// then one entry per non-blank line.
func annotations(content string) []string {
	fullText := stripMarkdownCodeBlock(content)
	if fullText == "" {
		return nil
	}

	result := []string{fullText}
	for _, line := range strings.Split(fullText, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			result = append(result, line)
		}
	}

	return result
}

func mediaType(image []byte) string {
	detected := http.DetectContentType(image)
	switch detected {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
		return detected
	default:
		return "image/jpeg"
	}
}

// stripMarkdownCodeBlock removes markdown code block formatting if present
func stripMarkdownCodeBlock(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	firstNewline := strings.Index(content, "\n")
	closing := strings.LastIndex(content, "```")
	if firstNewline == -1 || closing <= firstNewline {
		return content
	}

	return strings.TrimSpace(content[firstNewline+1 : closing])
}
