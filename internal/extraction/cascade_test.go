package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/sourcelane/rfq-backend/internal/platform/logger"
)

type fixedStrategy struct {
	name      string
	candidate Candidate
	err       error
	calls     int
}

func (s *fixedStrategy) Name() string { return s.name }

func (s *fixedStrategy) Attempt(context.Context, string) (Candidate, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.candidate, nil
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	t.Cleanup(log.Sync)
	return log
}

func TestCascadeFirstSuccessShortCircuits(t *testing.T) {
	primary := &fixedStrategy{name: MethodPrimary, candidate: Candidate{"supplier": map[string]any{"company_name": "A"}}}
	secondary := &fixedStrategy{name: MethodSecondary, candidate: Candidate{}}

	_, method := NewCascade(testLogger(t), primary, secondary).Extract(context.Background(), "text")

	if method != MethodPrimary {
		t.Fatalf("want method %q, got %q", MethodPrimary, method)
	}
	if secondary.calls != 0 {
		t.Fatalf("secondary should not run after a primary success, ran %d times", secondary.calls)
	}
}

func TestCascadeFallsThroughOnFailure(t *testing.T) {
	primary := &fixedStrategy{name: MethodPrimary, err: &Failure{Strategy: MethodPrimary, Err: errors.New("timeout")}}
	secondary := &fixedStrategy{name: MethodSecondary, candidate: Candidate{"quote": map[string]any{"price_per_pound": 2.0}}}

	candidate, method := NewCascade(testLogger(t), primary, secondary).Extract(context.Background(), "text")

	if method != MethodSecondary {
		t.Fatalf("want method %q, got %q", MethodSecondary, method)
	}
	if candidate["quote"] == nil {
		t.Fatalf("want secondary candidate, got %v", candidate)
	}
	if primary.calls != 1 {
		t.Fatalf("primary should have been attempted once, got %d", primary.calls)
	}
}

func TestCascadePatternTierCatchesDoubleFailure(t *testing.T) {
	cascade := NewCascade(testLogger(t),
		&fixedStrategy{name: MethodPrimary, err: errors.New("rate limited")},
		&fixedStrategy{name: MethodSecondary, err: errors.New("bad json")},
		NewPatternExtractor(),
	)

	candidate, method := cascade.Extract(context.Background(), "Company: Fallback Foods\n")

	if method != MethodPattern {
		t.Fatalf("want method %q, got %q", MethodPattern, method)
	}
	supplier, ok := candidate["supplier"].(map[string]any)
	if !ok {
		t.Fatalf("pattern candidate missing supplier: %v", candidate)
	}
	if supplier["company_name"] != "Fallback Foods" {
		t.Fatalf("company_name: %v", supplier["company_name"])
	}
}
