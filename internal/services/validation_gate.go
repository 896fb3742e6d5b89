package services

import (
	"fmt"

	"github.com/urfit-tech/lodestar-contract-api/internal/types/business"
)

// Problem is one user-correctable validation failure. Problems block
// submission but are recoverable by editing the draft.
type Problem struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidationResult is the outcome of the validation gate. A result with zero
// problems is Ok.
type ValidationResult struct {
	Problems []Problem `json:"problems"`
}

// OK reports whether the draft may be submitted.
func (r ValidationResult) OK() bool {
	return len(r.Problems) == 0
}

// ValidationGate enforces the pre-submission invariants. Every check is
// independent and all problems are collected, never short-circuited, so the
// operator sees the full list at once. Validate never returns a Go error.
type ValidationGate struct{}

// NewValidationGate creates a new validation gate
func NewValidationGate() *ValidationGate {
	return &ValidationGate{}
}

// Validate runs every check against the draft, the catalog member record and
// the computed order.
func (g *ValidationGate) Validate(draft business.ContractDraft, catalog *business.CatalogSnapshot, order *business.PricedOrder) ValidationResult {
	var result ValidationResult

	if catalog.Member.Name == "" {
		result.Problems = append(result.Problems, Problem{
			Code:    "member_name_required",
			Field:   "member.name",
			Message: "member profile is missing a display name",
		})
	}
	if catalog.Member.Email == "" {
		result.Problems = append(result.Problems, Problem{
			Code:    "member_email_required",
			Field:   "member.email",
			Message: "member profile is missing a contact email",
		})
	}

	if draft.RequiresProof && draft.ProofURL == "" {
		result.Problems = append(result.Problems, Problem{
			Code:    "proof_required",
			Field:   "proof_url",
			Message: "declared identity requires a proof attachment",
		})
	}

	if len(draft.Executors) == 0 {
		result.Problems = append(result.Problems, Problem{
			Code:    "executors_required",
			Field:   "executors",
			Message: "at least one executor assignment is required",
		})
	} else if sum := business.SumRatios(draft.Executors); sum != business.RatioScale {
		// Exact fixed-point comparison: 0.9999 is a mismatch, not a rounding
		// artifact to wave through.
		result.Problems = append(result.Problems, Problem{
			Code:    "executor_ratio_sum",
			Field:   "executors",
			Message: fmt.Sprintf("executor ratios must sum to exactly 1, got %s", sum),
		})
	}

	if !business.GraceDaysSupported(draft.GraceDays) {
		result.Problems = append(result.Problems, Problem{
			Code:    "grace_days_unsupported",
			Field:   "grace_days",
			Message: fmt.Sprintf("grace days must be one of %v, got %d", business.SupportedGraceDays, draft.GraceDays),
		})
	}

	if order.Window.EndedAt != nil && !order.Window.EndedAt.After(order.Window.StartedAt) {
		// A bounded window must cover at least some time. Zero-length windows
		// come from degenerate catalog plans, not from operator input, but
		// they still must not reach the store.
		result.Problems = append(result.Problems, Problem{
			Code:    "service_window_empty",
			Field:   "order.window",
			Message: "service window must end after it starts",
		})
	}

	if order.FinalPrice < 0 {
		result.Problems = append(result.Problems, Problem{
			Code:    "final_price_negative",
			Field:   "order.final_price",
			Message: fmt.Sprintf("final price %d is below zero; remove discounts or add items", order.FinalPrice),
		})
	}

	return result
}
