package repos

import (
	"context"
	"testing"

	"github.com/sourcelane/rfq-backend/internal/data/repos/testutil"
	"github.com/sourcelane/rfq-backend/internal/domain"
	"github.com/sourcelane/rfq-backend/internal/platform/dbctx"
)

func TestQuoteRepoUpsertByRFQAndSupplier(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewQuoteRepo(db, testutil.Logger(t))

	supplier := &domain.Supplier{CompanyName: "Acme Organics"}
	if _, err := NewSupplierRepo(db, testutil.Logger(t)).Create(dbc, supplier); err != nil {
		t.Fatalf("seed supplier: %v", err)
	}
	rfq := &domain.RFQ{Item: "Organic Almond Flour", DueDate: "2026-10-01"}
	if _, err := NewRFQRepo(db, testutil.Logger(t)).Create(dbc, rfq); err != nil {
		t.Fatalf("seed rfq: %v", err)
	}

	first := &domain.Quote{RFQID: rfq.ID, SupplierID: supplier.ID, PricePerPound: 3.5}
	if err := repo.UpsertByRFQAndSupplier(dbc, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	existing, err := repo.GetByRFQAndSupplier(dbc, rfq.ID, supplier.ID)
	if err != nil || existing == nil {
		t.Fatalf("GetByRFQAndSupplier: row=%v err=%v", existing, err)
	}
	if existing.PricePerPound != 3.5 {
		t.Fatalf("price = %v, want 3.5", existing.PricePerPound)
	}

	second := &domain.Quote{RFQID: rfq.ID, SupplierID: supplier.ID, PricePerPound: 4.0}
	if err := repo.UpsertByRFQAndSupplier(dbc, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	updated, err := repo.GetByRFQAndSupplier(dbc, rfq.ID, supplier.ID)
	if err != nil || updated == nil {
		t.Fatalf("GetByRFQAndSupplier after update: row=%v err=%v", updated, err)
	}
	if updated.ID != existing.ID {
		t.Fatalf("upsert created a second quote for the pair: %s vs %s", updated.ID, existing.ID)
	}
	if updated.PricePerPound != 4.0 {
		t.Fatalf("price not replaced in place: %v", updated.PricePerPound)
	}
	if !updated.DateSubmitted.After(existing.DateSubmitted) && !updated.DateSubmitted.Equal(existing.DateSubmitted) {
		t.Fatalf("date_submitted not refreshed: %v -> %v", existing.DateSubmitted, updated.DateSubmitted)
	}
}

func TestQuoteRepoListByRFQOrdersByPrice(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewQuoteRepo(db, testutil.Logger(t))
	supplierRepo := NewSupplierRepo(db, testutil.Logger(t))

	rfq := &domain.RFQ{Item: "Dried Mango", DueDate: "2026-11-15"}
	if _, err := NewRFQRepo(db, testutil.Logger(t)).Create(dbc, rfq); err != nil {
		t.Fatalf("seed rfq: %v", err)
	}

	prices := map[string]float64{
		"Pricier Provisions": 6.25,
		"Budget Botanicals":  2.10,
		"Middle Markets":     4.00,
	}
	for name, price := range prices {
		s := &domain.Supplier{CompanyName: name}
		if _, err := supplierRepo.Create(dbc, s); err != nil {
			t.Fatalf("seed supplier %s: %v", name, err)
		}
		q := &domain.Quote{RFQID: rfq.ID, SupplierID: s.ID, PricePerPound: price}
		if err := repo.UpsertByRFQAndSupplier(dbc, q); err != nil {
			t.Fatalf("seed quote %s: %v", name, err)
		}
	}

	rows, err := repo.ListByRFQ(dbc, rfq.ID)
	if err != nil {
		t.Fatalf("ListByRFQ: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("ListByRFQ len = %d, want 3", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i-1].PricePerPound > rows[i].PricePerPound {
			t.Fatalf("quotes not ordered by price ascending: %v then %v",
				rows[i-1].PricePerPound, rows[i].PricePerPound)
		}
	}
	if rows[0].Supplier == nil || rows[0].Supplier.CompanyName != "Budget Botanicals" {
		t.Fatalf("cheapest quote supplier not preloaded correctly: %+v", rows[0].Supplier)
	}
}
