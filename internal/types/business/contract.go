package business

import "time"

// PaymentInfo carries the payment terms chosen for a contract. PaymentNumber
// is stamped during assembly from the submission timestamp; it is a
// human-readable trace reference, not a uniqueness guarantee.
type PaymentInfo struct {
	Method        string `json:"method"`
	Installments  int    `json:"installments,omitempty"`
	PaymentNumber string `json:"payment_number,omitempty"`
}

// ContractDraft is the operator's current selections. The UI layer owns the
// only mutable reference and replaces the value wholesale on each edit; every
// engine stage treats it as immutable input.
type ContractDraft struct {
	MemberID      string               `json:"member_id"`
	PlanID        string               `json:"plan_id"`
	StartedAt     time.Time            `json:"started_at"`
	GraceDays     int                  `json:"grace_days"`
	Items         []SelectedItem       `json:"items,omitempty"`
	DiscountIDs   []string             `json:"discount_ids,omitempty"`
	Executors     []ExecutorAssignment `json:"executors"`
	Payment       PaymentInfo          `json:"payment"`
	RequiresProof bool                 `json:"requires_proof"`
	ProofURL      string               `json:"proof_url,omitempty"`
	Note          string               `json:"note,omitempty"`
}

// ContractPayload is the single structure handed to the submission adapter.
// It is created once per successful submission and never mutated afterwards;
// corrections require a new contract.
type ContractPayload struct {
	ContractID string               `json:"contract_id"`
	MemberID   string               `json:"member_id"`
	PlanID     string               `json:"plan_id"`
	Window     ServiceWindow        `json:"window"`
	Order      PricedOrder          `json:"order"`
	Grants     Grants               `json:"grants"`
	Executors  []ExecutorAssignment `json:"executors"`
	Payment    PaymentInfo          `json:"payment"`
	Note       string               `json:"note,omitempty"`
}
