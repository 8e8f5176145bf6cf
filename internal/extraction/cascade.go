package extraction

import (
	"context"

	"github.com/sourcelane/rfq-backend/internal/platform/logger"
)

// Cascade tries its strategies in the fixed order they were registered and
// stops at the first success. The order is a reliability ranking, not a
// configuration knob. With the pattern extractor as the final tier the
// cascade is total: Extract always returns a candidate.
type Cascade struct {
	log        *logger.Logger
	strategies []Strategy
}

func NewCascade(log *logger.Logger, strategies ...Strategy) *Cascade {
	return &Cascade{
		log:        log.With("component", "ExtractionCascade"),
		strategies: strategies,
	}
}

// Extract returns the winning candidate and the name of the strategy that
// produced it. Strategy failures are logged and swallowed; callers only ever
// see them as provenance ("parsed using: ...").
func (c *Cascade) Extract(ctx context.Context, text string) (Candidate, string) {
	last := ""
	for _, s := range c.strategies {
		last = s.Name()
		candidate, err := s.Attempt(ctx, text)
		if err != nil {
			c.log.Warn("extraction strategy failed, falling back",
				"strategy", s.Name(),
				"error", err.Error(),
			)
			continue
		}
		return candidate, s.Name()
	}
	// Unreachable when the final tier is the pattern extractor.
	return Candidate{}, last
}
