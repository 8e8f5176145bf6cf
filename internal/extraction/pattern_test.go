package extraction

import (
	"context"
	"reflect"
	"testing"
)

const sampleQuoteEmail = `Hello,

Thank you for your RFQ. Please find our quote below.

Company: Golden Harvest Spices
Address: 42 Spice Market Road, Kochi, Kerala, India
Price per Pound: $3.85
Minimum Order Quantity: 1,500
Country of Origin: India
Certifications: GMO-Free, Organic, Non-Irradiated

Email: priya.sharma@goldenharvest.example
Phone: +91 98765 43210

Best Regards,
Priya Sharma, Sales Manager
Golden Harvest Spices
`

func TestPatternExtractorParsesLabeledFields(t *testing.T) {
	candidate, err := NewPatternExtractor().Attempt(context.Background(), sampleQuoteEmail)
	if err != nil {
		t.Fatalf("Attempt: %v", err)
	}

	supplier, ok := candidate["supplier"].(map[string]any)
	if !ok {
		t.Fatalf("missing supplier section: %v", candidate)
	}
	quote, ok := candidate["quote"].(map[string]any)
	if !ok {
		t.Fatalf("missing quote section: %v", candidate)
	}

	if got := supplier["company_name"]; got != "Golden Harvest Spices" {
		t.Errorf("company_name: %v", got)
	}
	if got := supplier["contact_name"]; got != "Priya Sharma" {
		t.Errorf("contact_name (role should be stripped): %v", got)
	}
	if got := supplier["contact_email"]; got != "priya.sharma@goldenharvest.example" {
		t.Errorf("contact_email: %v", got)
	}
	if got := supplier["hq_address"]; got != "42 Spice Market Road, Kochi, Kerala, India" {
		t.Errorf("hq_address: %v", got)
	}
	if got := quote["price_per_pound"]; got != "3.85" {
		t.Errorf("price_per_pound: %v", got)
	}
	if got := quote["minimum_order_quantity"]; got != "1,500" {
		t.Errorf("minimum_order_quantity: %v", got)
	}
	if got := quote["country_of_origin"]; got != "India" {
		t.Errorf("country_of_origin: %v", got)
	}
	want := []any{"GMO-Free", "Organic", "Non-Irradiated"}
	if got := quote["certifications"]; !reflect.DeepEqual(got, want) {
		t.Errorf("certifications: want %v, got %v", want, got)
	}
}

func TestPatternExtractorNeverFails(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"unstructured", "hey, just checking in about that order from last month"},
		{"labels without values", "Company:\nPrice per Pound:\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate, err := NewPatternExtractor().Attempt(context.Background(), tt.text)
			if err != nil {
				t.Fatalf("pattern tier must not fail: %v", err)
			}
			if _, ok := candidate["supplier"].(map[string]any); !ok {
				t.Fatalf("candidate missing supplier section: %v", candidate)
			}
			if _, ok := candidate["quote"].(map[string]any); !ok {
				t.Fatalf("candidate missing quote section: %v", candidate)
			}
		})
	}
}

func TestPatternExtractorCompanyNameLabel(t *testing.T) {
	candidate, err := NewPatternExtractor().Attempt(context.Background(), "Company Name: Rainbow Botanicals\n")
	if err != nil {
		t.Fatalf("Attempt: %v", err)
	}
	supplier := candidate["supplier"].(map[string]any)
	if got := supplier["company_name"]; got != "Rainbow Botanicals" {
		t.Fatalf("company_name: %v", got)
	}
}
