package repos

import (
	"context"
	"testing"

	"gorm.io/datatypes"

	"github.com/sourcelane/rfq-backend/internal/data/repos/testutil"
	"github.com/sourcelane/rfq-backend/internal/domain"
	"github.com/sourcelane/rfq-backend/internal/platform/dbctx"
)

func TestEmailRecordRepoAppendIsAppendOnly(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewEmailRecordRepo(db, testutil.Logger(t))

	supplier := &domain.Supplier{CompanyName: "Acme Organics"}
	if _, err := NewSupplierRepo(db, testutil.Logger(t)).Create(dbc, supplier); err != nil {
		t.Fatalf("seed supplier: %v", err)
	}
	rfq := &domain.RFQ{Item: "Chia Seeds", DueDate: "2026-09-30"}
	if _, err := NewRFQRepo(db, testutil.Logger(t)).Create(dbc, rfq); err != nil {
		t.Fatalf("seed rfq: %v", err)
	}
	quote := &domain.Quote{RFQID: rfq.ID, SupplierID: supplier.ID, PricePerPound: 3.5}
	if err := NewQuoteRepo(db, testutil.Logger(t)).UpsertByRFQAndSupplier(dbc, quote); err != nil {
		t.Fatalf("seed quote: %v", err)
	}

	for i := 0; i < 2; i++ {
		rec := &domain.EmailRecord{
			QuoteID:       quote.ID,
			Content:       "raw email body",
			ExtractedData: datatypes.JSON([]byte(`{"supplier":{"company_name":"Acme Organics"}}`)),
		}
		if _, err := repo.Append(dbc, rec); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}

	rows, err := repo.ListByQuoteID(dbc, quote.ID)
	if err != nil {
		t.Fatalf("ListByQuoteID: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected two email records for the quote, got %d", len(rows))
	}
	if rows[0].ID == rows[1].ID {
		t.Fatalf("email records were merged instead of appended")
	}
}
