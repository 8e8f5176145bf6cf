package normalization

import (
	"reflect"
	"testing"

	"github.com/sourcelane/rfq-backend/internal/extraction"
)

func TestRecordCoercesMixedTypes(t *testing.T) {
	got := Record(extraction.Candidate{
		"supplier": map[string]any{
			"company_name":  "  Golden Harvest Spices  ",
			"contact_name":  "Priya Sharma",
			"contact_email": "priya@goldenharvest.example",
		},
		"quote": map[string]any{
			"price_per_pound":        "$1,250.50",
			"minimum_order_quantity": "2,000",
			"country_of_origin":      " India ",
			"certifications":         []any{"Organic", " Organic ", "", "GMO-Free"},
		},
	})

	if got.Supplier.CompanyName != "Golden Harvest Spices" {
		t.Fatalf("company name not trimmed: %q", got.Supplier.CompanyName)
	}
	if got.Supplier.ContactPhone != "" {
		t.Fatalf("absent field should be empty, got %q", got.Supplier.ContactPhone)
	}
	if got.Quote.PricePerPound != 1250.50 {
		t.Fatalf("want price 1250.50, got %v", got.Quote.PricePerPound)
	}
	if got.Quote.MinimumOrderQuantity == nil || *got.Quote.MinimumOrderQuantity != 2000 {
		t.Fatalf("want MOQ 2000, got %v", got.Quote.MinimumOrderQuantity)
	}
	if got.Quote.CountryOfOrigin != "India" {
		t.Fatalf("country not trimmed: %q", got.Quote.CountryOfOrigin)
	}
	if want := []string{"Organic", "GMO-Free"}; !reflect.DeepEqual(got.Quote.Certifications, want) {
		t.Fatalf("want certifications %v, got %v", want, got.Quote.Certifications)
	}
}

func TestRecordPrice(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"float", 3.5, 3.5},
		{"dollar string", "$3.50", 3.5},
		{"comma string", "1,250.75", 1250.75},
		{"unparsable", "call us", 0},
		{"negative", -4.2, 0},
		{"absent", nil, 0},
		{"empty string", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Record(extraction.Candidate{
				"quote": map[string]any{"price_per_pound": tt.in},
			})
			if got.Quote.PricePerPound != tt.want {
				t.Fatalf("price(%v): want %v, got %v", tt.in, tt.want, got.Quote.PricePerPound)
			}
		})
	}
}

func TestRecordMinimumOrderQuantity(t *testing.T) {
	five := 5
	tests := []struct {
		name string
		in   any
		want *int
	}{
		{"float", 5.0, &five},
		{"string", "5", &five},
		{"comma string", "5,000", intp(5000)},
		{"unparsable", "a pallet", nil},
		{"negative", -10.0, nil},
		{"absent", nil, nil},
		{"blank", "   ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Record(extraction.Candidate{
				"quote": map[string]any{"minimum_order_quantity": tt.in},
			})
			switch {
			case tt.want == nil && got.Quote.MinimumOrderQuantity != nil:
				t.Fatalf("want nil MOQ, got %d", *got.Quote.MinimumOrderQuantity)
			case tt.want != nil && (got.Quote.MinimumOrderQuantity == nil || *got.Quote.MinimumOrderQuantity != *tt.want):
				t.Fatalf("want MOQ %d, got %v", *tt.want, got.Quote.MinimumOrderQuantity)
			}
		})
	}
}

func TestRecordCertifications(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{"array", []any{"Organic", "Kosher"}, []string{"Organic", "Kosher"}},
		{"comma string", "Organic, Kosher,  Halal", []string{"Organic", "Kosher", "Halal"}},
		{"duplicates keep first", []any{"Organic", "Kosher", "Organic"}, []string{"Organic", "Kosher"}},
		{"absent", nil, []string{}},
		{"wrong type", 42, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Record(extraction.Candidate{
				"quote": map[string]any{"certifications": tt.in},
			})
			if !reflect.DeepEqual(got.Quote.Certifications, tt.want) {
				t.Fatalf("want %v, got %v", tt.want, got.Quote.Certifications)
			}
		})
	}
}

func TestRecordMissingSections(t *testing.T) {
	got := Record(extraction.Candidate{})
	if got.Supplier.CompanyName != "" || got.Quote.PricePerPound != 0 {
		t.Fatalf("empty candidate should normalize to zero values, got %+v", got)
	}
	if got.Quote.MinimumOrderQuantity != nil {
		t.Fatalf("want nil MOQ for empty candidate")
	}
	if got.Quote.Certifications == nil {
		t.Fatalf("certifications should be an empty list, not nil")
	}
}

func intp(n int) *int { return &n }
