package app

import (
	"github.com/sourcelane/rfq-backend/internal/extraction"
	"github.com/sourcelane/rfq-backend/internal/platform/logger"
	"github.com/sourcelane/rfq-backend/internal/services"
)

type Services struct {
	Supplier    services.SupplierService
	RFQ         services.RFQService
	Quote       services.QuoteService
	QuoteIngest services.QuoteIngestService
}

func wireServices(log *logger.Logger, reposet Repos) Services {
	log.Info("Wiring services...")

	cascade := extraction.NewCascade(log, wireStrategies(log)...)

	return Services{
		Supplier: services.NewSupplierService(log, reposet.Supplier),
		RFQ:      services.NewRFQService(log, reposet.RFQ),
		Quote:    services.NewQuoteService(log, reposet.Quote),
		QuoteIngest: services.NewQuoteIngestService(
			log,
			cascade,
			reposet.Supplier,
			reposet.RFQ,
			reposet.Quote,
			reposet.EmailRecord,
		),
	}
}

// wireStrategies assembles the extraction tiers in reliability order. A
// missing API key disables that LLM tier rather than failing startup; the
// pattern extractor is always last so the cascade stays total.
func wireStrategies(log *logger.Logger) []extraction.Strategy {
	var strategies []extraction.Strategy

	if openai, err := extraction.NewOpenAIExtractor(log); err != nil {
		log.Warn("OpenAI extraction tier disabled", "error", err.Error())
	} else {
		strategies = append(strategies, openai)
	}

	if gemini, err := extraction.NewGeminiExtractor(log); err != nil {
		log.Warn("Gemini extraction tier disabled", "error", err.Error())
	} else {
		strategies = append(strategies, gemini)
	}

	strategies = append(strategies, extraction.NewPatternExtractor())
	return strategies
}
