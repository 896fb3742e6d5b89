package requests

import (
	"fmt"
	"time"

	"github.com/urfit-tech/lodestar-contract-api/internal/types/business"
)

// SelectedItemRequest is one (product, quantity) selection.
type SelectedItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// ExecutorAssignmentRequest pairs a staff member with a revenue-share ratio.
// The ratio arrives as a decimal string so it can be parsed exactly.
type ExecutorAssignmentRequest struct {
	MemberID string `json:"member_id" binding:"required"`
	Ratio    string `json:"ratio" binding:"required"`
}

// PaymentInfoRequest carries the payment terms chosen by the operator.
type PaymentInfoRequest struct {
	Method       string `json:"method" binding:"required"`
	Installments int    `json:"installments"`
}

// ContractDraftRequest is the request body for both the preview and submit
// endpoints.
type ContractDraftRequest struct {
	MemberID      string                      `json:"member_id" binding:"required"`
	PlanID        string                      `json:"plan_id" binding:"required"`
	StartedAt     time.Time                   `json:"started_at" binding:"required"`
	GraceDays     int                         `json:"grace_days"`
	Items         []SelectedItemRequest       `json:"items"`
	DiscountIDs   []string                    `json:"discount_ids"`
	Executors     []ExecutorAssignmentRequest `json:"executors" binding:"required,min=1,dive"`
	Payment       PaymentInfoRequest          `json:"payment" binding:"required"`
	RequiresProof bool                        `json:"requires_proof"`
	ProofURL      string                      `json:"proof_url"`
	Note          string                      `json:"note"`
}

// ToDraft converts the request into the immutable engine draft, parsing each
// executor ratio exactly.
func (r ContractDraftRequest) ToDraft() (business.ContractDraft, error) {
	draft := business.ContractDraft{
		MemberID:  r.MemberID,
		PlanID:    r.PlanID,
		StartedAt: r.StartedAt,
		GraceDays: r.GraceDays,
		Payment: business.PaymentInfo{
			Method:       r.Payment.Method,
			Installments: r.Payment.Installments,
		},
		RequiresProof: r.RequiresProof,
		ProofURL:      r.ProofURL,
		Note:          r.Note,
		DiscountIDs:   r.DiscountIDs,
	}

	for _, item := range r.Items {
		draft.Items = append(draft.Items, business.SelectedItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	for _, executor := range r.Executors {
		ratio, err := business.ParseRatio(executor.Ratio)
		if err != nil {
			return business.ContractDraft{}, fmt.Errorf("executor %s: %w", executor.MemberID, err)
		}
		draft.Executors = append(draft.Executors, business.ExecutorAssignment{
			MemberID: executor.MemberID,
			Ratio:    ratio,
		})
	}

	return draft, nil
}
