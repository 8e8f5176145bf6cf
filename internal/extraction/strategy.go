package extraction

import (
	"context"
	"fmt"
)

// Candidate is the raw record a strategy pulls out of an email, shaped as
// {"supplier": {...}, "quote": {...}}. Values are whatever the strategy found;
// the normalization package owns type coercion, so a candidate may carry
// strings where numbers are expected and may omit fields entirely.
type Candidate map[string]any

// Method names double as the provenance tag surfaced to the caller
// ("Parsed using: ...") and encode the fixed reliability ranking.
const (
	MethodPrimary   = "Primary"
	MethodSecondary = "Secondary"
	MethodPattern   = "Pattern"
)

// Strategy is one tier of the extraction cascade: given raw email text it
// produces a candidate or fails. Failures are recovered by the cascade, never
// surfaced to callers.
type Strategy interface {
	Name() string
	Attempt(ctx context.Context, text string) (Candidate, error)
}

// Failure wraps whatever went wrong inside a single strategy (transport
// error, non-2xx response, unparsable model output).
type Failure struct {
	Strategy string
	Err      error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s extraction failed: %v", f.Strategy, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }
