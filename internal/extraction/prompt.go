package extraction

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

const extractionSystemPrompt = "You are a helpful assistant that extracts information from supplier emails."

const extractionInstruction = `Extract supplier and quote information from this email into a structured JSON format.

Rules for extraction:
1. For phone numbers: Extract only the phone number without email or address
2. For address: Extract the complete address line
3. For email: Extract only the email address
4. For certifications: Create an array of individual certifications
5. For prices: Extract only the numeric value
6. For company name: Extract the complete company name

Required format:
{
  "supplier": {
    "company_name": "",
    "contact_name": "",
    "contact_email": "",
    "contact_phone": "",
    "hq_address": ""
  },
  "quote": {
    "price_per_pound": 0,
    "minimum_order_quantity": 0,
    "country_of_origin": "",
    "certifications": []
  }
}

Examples of correct parsing:
- Phone: "+1 (555) 123-4567" (not including email or address)
- Address: "1234 Orchard Lane, Fresno, CA, 93722"
- Email: "janedoe@nutrasource.com"
- Price: Should be numeric only (e.g., 3.50 not "$3.50")
- MOQ: Should be numeric only (e.g., 5000 not "5,000 pounds")

Parse this email content:
%s

Return only the JSON object without any additional text.`

func extractionPrompt(emailText string) string {
	return fmt.Sprintf(extractionInstruction, emailText)
}

var fencedJSONRe = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")

// decodeCandidateJSON tolerates the JSON object arriving wrapped in a fenced
// code block, which some models emit despite the instruction not to.
func decodeCandidateJSON(raw string) (Candidate, error) {
	cleaned := strings.TrimSpace(raw)
	if m := fencedJSONRe.FindStringSubmatch(cleaned); m != nil {
		cleaned = strings.TrimSpace(m[1])
	}

	var c Candidate
	if err := json.Unmarshal([]byte(cleaned), &c); err != nil {
		return nil, fmt.Errorf("parse model JSON: %w", err)
	}
	return c, nil
}
