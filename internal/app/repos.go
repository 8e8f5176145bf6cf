package app

import (
	"gorm.io/gorm"

	"github.com/sourcelane/rfq-backend/internal/data/repos"
	"github.com/sourcelane/rfq-backend/internal/platform/logger"
)

type Repos struct {
	Supplier    repos.SupplierRepo
	RFQ         repos.RFQRepo
	Quote       repos.QuoteRepo
	EmailRecord repos.EmailRecordRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Supplier:    repos.NewSupplierRepo(db, log),
		RFQ:         repos.NewRFQRepo(db, log),
		Quote:       repos.NewQuoteRepo(db, log),
		EmailRecord: repos.NewEmailRecordRepo(db, log),
	}
}
