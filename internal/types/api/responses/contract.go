package responses

import (
	"github.com/urfit-tech/lodestar-contract-api/internal/services"
	"github.com/urfit-tech/lodestar-contract-api/internal/types/business"
)

// PreviewContractResponse returns everything the operator UI needs to render
// totals, rewards and outstanding problems for the current draft.
type PreviewContractResponse struct {
	Object     string               `json:"object"`
	ContractID string               `json:"contract_id"`
	Order      business.PricedOrder `json:"order"`
	Grants     business.Grants      `json:"grants"`
	Valid      bool                 `json:"valid"`
	Problems   []services.Problem   `json:"problems"`
}

// CreateContractResponse is returned on successful submission.
type CreateContractResponse struct {
	Object        string `json:"object"`
	ContractID    string `json:"contract_id"`
	PaymentNumber string `json:"payment_number"`
}

// ValidationFailedResponse is returned when the validation gate blocks a
// submission.
type ValidationFailedResponse struct {
	Error    string             `json:"error"`
	Problems []services.Problem `json:"problems"`
}
