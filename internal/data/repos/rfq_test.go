package repos

import (
	"context"
	"testing"

	"github.com/sourcelane/rfq-backend/internal/data/repos/testutil"
	"github.com/sourcelane/rfq-backend/internal/domain"
	"github.com/sourcelane/rfq-backend/internal/platform/dbctx"
)

func TestRFQRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}
	repo := NewRFQRepo(db, testutil.Logger(t))

	later := &domain.RFQ{Item: "Quinoa", DueDate: "2026-12-01", AmountLbs: 5000}
	if _, err := repo.Create(dbc, later); err != nil {
		t.Fatalf("Create: %v", err)
	}
	sooner := &domain.RFQ{Item: "Oats", DueDate: "2026-10-01", AmountLbs: 2000}
	if _, err := repo.Create(dbc, sooner); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(dbc, sooner.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: row=%v err=%v", got, err)
	}
	if got.Item != "Oats" {
		t.Fatalf("GetByID item = %q", got.Item)
	}

	rows, err := repo.List(dbc)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	soonerIdx, laterIdx := -1, -1
	for i, r := range rows {
		switch r.ID {
		case sooner.ID:
			soonerIdx = i
		case later.ID:
			laterIdx = i
		}
	}
	if soonerIdx == -1 || laterIdx == -1 || soonerIdx > laterIdx {
		t.Fatalf("List not ordered by due_date ascending: sooner=%d later=%d", soonerIdx, laterIdx)
	}

	if err := repo.UpdateFields(dbc, sooner.ID, map[string]interface{}{"amount_lbs": 2500.0}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	got, err = repo.GetByID(dbc, sooner.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID after update: row=%v err=%v", got, err)
	}
	if got.AmountLbs != 2500 {
		t.Fatalf("amount_lbs not updated: %v", got.AmountLbs)
	}
}
