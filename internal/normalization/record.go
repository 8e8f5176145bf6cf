package normalization

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/sourcelane/rfq-backend/internal/extraction"
)

// NormalizedSupplier and NormalizedQuote are the canonical shapes the
// reconciliation engine consumes. Whatever a strategy produced, after Record
// runs every field has the right type: strings are trimmed, the price is a
// non-negative float, the order quantity is nil when absent or unparsable,
// and certifications are a deduplicated list of non-empty strings.
type NormalizedSupplier struct {
	CompanyName  string `json:"company_name"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	HQAddress    string `json:"hq_address"`
	PaymentTerms string `json:"payment_terms"`
}

type NormalizedQuote struct {
	PricePerPound        float64  `json:"price_per_pound"`
	MinimumOrderQuantity *int     `json:"minimum_order_quantity"`
	CountryOfOrigin      string   `json:"country_of_origin"`
	Certifications       []string `json:"certifications"`
}

type NormalizedRecord struct {
	Supplier NormalizedSupplier `json:"supplier"`
	Quote    NormalizedQuote    `json:"quote"`
}

func Record(c extraction.Candidate) NormalizedRecord {
	supplier := subMap(c, "supplier")
	quote := subMap(c, "quote")

	return NormalizedRecord{
		Supplier: NormalizedSupplier{
			CompanyName:  str(supplier, "company_name"),
			ContactName:  str(supplier, "contact_name"),
			ContactEmail: str(supplier, "contact_email"),
			ContactPhone: str(supplier, "contact_phone"),
			HQAddress:    str(supplier, "hq_address"),
			PaymentTerms: str(supplier, "payment_terms"),
		},
		Quote: NormalizedQuote{
			PricePerPound:        price(quote, "price_per_pound"),
			MinimumOrderQuantity: intPtr(quote, "minimum_order_quantity"),
			CountryOfOrigin:      str(quote, "country_of_origin"),
			Certifications:       strList(quote, "certifications"),
		},
	}
}

func subMap(c extraction.Candidate, key string) map[string]any {
	if m, ok := c[key].(map[string]any); ok {
		return m
	}
	return nil
}

func str(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

// price parses a floating point value, tolerating currency noise in string
// inputs; anything unparsable or negative collapses to 0.
func price(m map[string]any, key string) float64 {
	var f float64
	switch v := m[key].(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case json.Number:
		f, _ = v.Float64()
	case string:
		cleaned := strings.TrimSpace(strings.NewReplacer("$", "", ",", "").Replace(v))
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if f < 0 {
		return 0
	}
	return f
}

// intPtr returns nil when the value is absent, unparsable, or negative; the
// quantity column is nullable and a fabricated zero would be misleading.
func intPtr(m map[string]any, key string) *int {
	var n int
	switch v := m[key].(type) {
	case float64:
		n = int(v)
	case int:
		n = v
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return nil
		}
		n = int(i)
	case string:
		cleaned := strings.TrimSpace(strings.ReplaceAll(v, ",", ""))
		if cleaned == "" {
			return nil
		}
		parsed, err := strconv.Atoi(cleaned)
		if err != nil {
			return nil
		}
		n = parsed
	default:
		return nil
	}
	if n < 0 {
		return nil
	}
	return &n
}

// strList coerces list-ish inputs (JSON arrays, string slices, comma-joined
// strings) into a deduplicated ordered list of trimmed non-empty strings.
func strList(m map[string]any, key string) []string {
	var raw []string
	switch v := m[key].(type) {
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	case []string:
		raw = v
	case string:
		raw = strings.Split(v, ",")
	default:
		return []string{}
	}

	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, item := range raw {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
