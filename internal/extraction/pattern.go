package extraction

import (
	"context"
	"regexp"
	"strings"
)

// PatternExtractor is the guaranteed-success tier: a fixed set of text
// patterns over labeled lines and the signature block. Unmatched fields come
// back empty rather than erroring, so the cascade always terminates with some
// candidate.
type PatternExtractor struct{}

func NewPatternExtractor() *PatternExtractor { return &PatternExtractor{} }

func (e *PatternExtractor) Name() string { return MethodPattern }

var (
	companyRe = regexp.MustCompile(`(?m)^[ \t]*Company(?: Name)?:[ \t]*(.+)$`)
	contactRe = regexp.MustCompile(`[Rr]egards,\s*([^\n]+)`)
	roleRe    = regexp.MustCompile(`(?i)[,\s]*(sales|account|regional|general)\s+manager.*$`)
	emailRe   = regexp.MustCompile(`[Ee]mail:[ \t]*([^\s]+@[^\s]+)`)
	phoneRe   = regexp.MustCompile(`[Pp]hone:[ \t]*([^,\n]+)`)
	addressRe = regexp.MustCompile(`(?m)^[ \t]*Address:[ \t]*(.+)$`)
	priceRe   = regexp.MustCompile(`Price per Pound:[ \t]*\$?([0-9.]+)`)
	moqRe     = regexp.MustCompile(`Minimum Order Quantity:[ \t]*([0-9,]+)`)
	countryRe = regexp.MustCompile(`Country of Origin:[ \t]*([^\n]+)`)
	certsRe   = regexp.MustCompile(`(?i)Certifications:[ \t]*([^\n]+)`)
)

func (e *PatternExtractor) Attempt(_ context.Context, text string) (Candidate, error) {
	certifications := []any{}
	if m := certsRe.FindStringSubmatch(text); m != nil {
		for _, cert := range strings.Split(m[1], ",") {
			if trimmed := strings.TrimSpace(cert); trimmed != "" {
				certifications = append(certifications, trimmed)
			}
		}
	}

	return Candidate{
		"supplier": map[string]any{
			"company_name":  firstMatch(companyRe, text),
			"contact_name":  contactName(text),
			"contact_email": firstMatch(emailRe, text),
			"contact_phone": firstMatch(phoneRe, text),
			"hq_address":    firstMatch(addressRe, text),
			"payment_terms": "",
		},
		"quote": map[string]any{
			"price_per_pound":        firstMatch(priceRe, text),
			"minimum_order_quantity": firstMatch(moqRe, text),
			"country_of_origin":      firstMatch(countryRe, text),
			"certifications":         certifications,
		},
	}, nil
}

// contactName is the text following a "Regards," salutation, with any
// trailing role title stripped.
func contactName(text string) string {
	name := firstMatch(contactRe, text)
	return strings.TrimSpace(roleRe.ReplaceAllString(name, ""))
}

func firstMatch(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
