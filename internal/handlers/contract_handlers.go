package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/urfit-tech/lodestar-contract-api/internal/services"
	"github.com/urfit-tech/lodestar-contract-api/internal/types/api/requests"
	"github.com/urfit-tech/lodestar-contract-api/internal/types/api/responses"
)

// ContractHandler handles contract preview and submission operations
type ContractHandler struct {
	common *CommonServices
}

// NewContractHandler creates a new ContractHandler instance
func NewContractHandler(common *CommonServices) *ContractHandler {
	return &ContractHandler{common: common}
}

// PreviewContract godoc
// @Summary Preview a contract draft
// @Description Runs pricing, grant generation and validation over a draft without persisting anything
// @Tags contracts
// @Accept json
// @Produce json
// @Param draft body requests.ContractDraftRequest true "Contract draft"
// @Success 200 {object} responses.PreviewContractResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /contracts/preview [post]
func (h *ContractHandler) PreviewContract(c *gin.Context) {
	var req requests.ContractDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	draft, err := req.ToDraft()
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid executor ratio", err)
		return
	}

	preview, err := h.common.contracts.Preview(c.Request.Context(), draft)
	if err != nil {
		if services.IsInputError(err) {
			sendError(c, http.StatusUnprocessableEntity, "Draft references unknown catalog entries", err)
			return
		}
		sendError(c, http.StatusBadGateway, "Catalog snapshot unavailable", err)
		return
	}

	sendSuccess(c, http.StatusOK, responses.PreviewContractResponse{
		Object:     "contract_preview",
		ContractID: preview.ContractID,
		Order:      *preview.Order,
		Grants:     preview.Grants,
		Valid:      preview.Validation.OK(),
		Problems:   preview.Validation.Problems,
	})
}

// SubmitContract godoc
// @Summary Submit a contract draft
// @Description Validates the draft and, when clean, assembles and persists the contract payload in one atomic call
// @Tags contracts
// @Accept json
// @Produce json
// @Param draft body requests.ContractDraftRequest true "Contract draft"
// @Success 201 {object} responses.CreateContractResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} responses.ValidationFailedResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /contracts [post]
func (h *ContractHandler) SubmitContract(c *gin.Context) {
	var req requests.ContractDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	draft, err := req.ToDraft()
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid executor ratio", err)
		return
	}

	result, err := h.common.contracts.Submit(c.Request.Context(), draft)
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusConflict, responses.ValidationFailedResponse{
				Error:    "draft failed validation",
				Problems: validationErr.Problems,
			})
		case services.IsInputError(err):
			sendError(c, http.StatusUnprocessableEntity, "Draft references unknown catalog entries", err)
		default:
			// Adapter or catalog failure: the draft is untouched, the
			// operator may retry.
			sendError(c, http.StatusBadGateway, "Contract submission failed", err)
		}
		return
	}

	sendSuccess(c, http.StatusCreated, responses.CreateContractResponse{
		Object:        "contract",
		ContractID:    result.ContractID,
		PaymentNumber: result.Payload.Payment.PaymentNumber,
	})
}
