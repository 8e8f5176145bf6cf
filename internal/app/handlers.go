package app

import (
	"github.com/sourcelane/rfq-backend/internal/handlers"
	"github.com/sourcelane/rfq-backend/internal/platform/logger"
)

type Handlers struct {
	Supplier *handlers.SupplierHandler
	RFQ      *handlers.RFQHandler
	Email    *handlers.EmailHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Supplier: handlers.NewSupplierHandler(log, serviceset.Supplier),
		RFQ:      handlers.NewRFQHandler(log, serviceset.RFQ, serviceset.Quote),
		Email:    handlers.NewEmailHandler(log, serviceset.QuoteIngest),
	}
}
