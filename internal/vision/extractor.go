package vision

import (
	"context"

	"github.com/rs/zerolog"
)

// FallbackLines keeps the pipeline operable without a provider. The text is
// relied on by compatibility tests and must not change.
var FallbackLines = []string{
	"MENU",
	"Margherita Pizza - Classic tomato and mozzarella - $12.99",
	"Pasta Carbonara - Creamy pasta with bacon - $14.99",
	"Caesar Salad - Fresh romaine with parmesan - $8.99",
	"Tiramisu - Italian coffee dessert - $6.99",
}

type Extractor struct {
	provider Provider
	logger   *zerolog.Logger
}

// NewExtractor accepts a nil provider, in which case every call returns the fallback.
func NewExtractor(provider Provider, logger *zerolog.Logger) *Extractor {
	return &Extractor{
		provider: provider,
		logger:   logger,
	}
}

func (e *Extractor) ExtractText(ctx context.Context, image []byte) []string {
	if e.provider != nil && len(image) > 0 {
		lines, err := e.provider.DetectText(ctx, image)
		switch {
		case err != nil:
			e.logger.Error().Err(err).Msg("Vision provider error, using fallback text")
		case len(lines) == 0:
			e.logger.Warn().Msg("Vision provider returned no text, using fallback text")
		default:
			e.logger.Info().Int("annotations", len(lines)).Msg("text extracted")
			return lines
		}
	}

	fallback := make([]string, len(FallbackLines))
	copy(fallback, FallbackLines)
	return fallback
}
