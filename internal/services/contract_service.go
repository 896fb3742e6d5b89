package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/urfit-tech/lodestar-contract-api/internal/types/business"
	"go.uber.org/zap"
)

// CatalogProvider supplies the read-only reference data for one member
// session.
type CatalogProvider interface {
	GetSnapshot(ctx context.Context, memberID string) (*business.CatalogSnapshot, error)
}

// SubmissionAdapter persists an assembled contract payload in one atomic
// call and returns the stored contract identifier.
type SubmissionAdapter interface {
	SubmitContract(ctx context.Context, payload *business.ContractPayload) (string, error)
}

// ValidationError is returned by Submit when the draft fails the validation
// gate. The adapter is never invoked in that case.
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("draft failed validation with %d problem(s)", len(e.Problems))
}

// PreviewResult is the outcome of a dry run over a draft: everything the
// operator UI needs to render totals, rewards and outstanding problems.
type PreviewResult struct {
	ContractID string                `json:"contract_id"`
	Order      *business.PricedOrder `json:"order"`
	Grants     business.Grants       `json:"grants"`
	Validation ValidationResult      `json:"validation"`
}

// SubmitResult is the outcome of a successful submission.
type SubmitResult struct {
	ContractID string
	Payload    *business.ContractPayload
}

// ContractService orchestrates the pure stages over one draft: catalog fetch,
// pricing, grant generation, validation, assembly, submission. Each stage
// returns a new value; the draft itself is never mutated, so a failed
// submission can simply be retried.
type ContractService struct {
	catalog CatalogProvider
	orders  SubmissionAdapter
	ids     IDSource
	pricing *PricingCalculator
	grants  *GrantGenerator
	gate    *ValidationGate
	logger  *zap.Logger
	now     func() time.Time
}

// NewContractService creates the orchestrator.
func NewContractService(catalog CatalogProvider, orders SubmissionAdapter, ids IDSource, grantCfg GrantConfig, logger *zap.Logger) *ContractService {
	return &ContractService{
		catalog: catalog,
		orders:  orders,
		ids:     ids,
		pricing: NewPricingCalculator(),
		grants:  NewGrantGenerator(grantCfg),
		gate:    NewValidationGate(),
		logger:  logger,
		now:     time.Now,
	}
}

// WithClock overrides the timestamp source. Intended for deterministic
// payment numbers under test.
func (s *ContractService) WithClock(now func() time.Time) *ContractService {
	s.now = now
	return s
}

// Preview runs pricing, grant generation and validation without persisting
// anything. The returned contract id is provisional; a later Submit draws a
// fresh one.
func (s *ContractService) Preview(ctx context.Context, draft business.ContractDraft) (*PreviewResult, error) {
	snapshot, order, grants, contractID, err := s.pipeline(ctx, draft)
	if err != nil {
		return nil, err
	}

	return &PreviewResult{
		ContractID: contractID,
		Order:      order,
		Grants:     grants,
		Validation: s.gate.Validate(draft, snapshot, order),
	}, nil
}

// Submit runs the full pipeline and, when validation passes, assembles the
// payload and hands it to the submission adapter exactly once. Adapter
// failures are surfaced as-is; no automatic retry happens here, the operator
// decides.
func (s *ContractService) Submit(ctx context.Context, draft business.ContractDraft) (*SubmitResult, error) {
	snapshot, order, grants, contractID, err := s.pipeline(ctx, draft)
	if err != nil {
		return nil, err
	}

	if result := s.gate.Validate(draft, snapshot, order); !result.OK() {
		return nil, &ValidationError{Problems: result.Problems}
	}

	payload := Assemble(draft, order, grants, contractID, s.now())

	adapterID, err := s.orders.SubmitContract(ctx, &payload)
	if err != nil {
		s.logger.Error("contract submission failed",
			zap.String("contract_id", contractID),
			zap.String("member_id", draft.MemberID),
			zap.Error(err))
		return nil, pkgerrors.Wrap(err, "submission adapter")
	}

	s.logger.Info("contract submitted",
		zap.String("contract_id", adapterID),
		zap.String("member_id", draft.MemberID),
		zap.Int64("final_price", order.FinalPrice))

	return &SubmitResult{ContractID: adapterID, Payload: &payload}, nil
}

// pipeline runs the shared stages: fetch snapshot, compute, draw the contract
// id, generate grants. The id is drawn before grant generation in both
// Preview and Submit so the two consume the id sequence identically.
func (s *ContractService) pipeline(ctx context.Context, draft business.ContractDraft) (*business.CatalogSnapshot, *business.PricedOrder, business.Grants, string, error) {
	snapshot, err := s.catalog.GetSnapshot(ctx, draft.MemberID)
	if err != nil {
		return nil, nil, business.Grants{}, "", pkgerrors.Wrap(err, "catalog snapshot")
	}

	order, err := s.pricing.Compute(draft, snapshot)
	if err != nil {
		return nil, nil, business.Grants{}, "", err
	}

	contractID := s.ids.NewID()
	grants := s.grants.Generate(order, draft.MemberID, contractID, s.ids)

	return snapshot, order, grants, contractID, nil
}

// Assemble shapes the final payload from already-computed parts. It performs
// no validation and no pricing; its only additions are the contract id and
// the payment reference number stamped from the submission timestamp.
func Assemble(draft business.ContractDraft, order *business.PricedOrder, grants business.Grants, contractID string, now time.Time) business.ContractPayload {
	payment := draft.Payment
	payment.PaymentNumber = paymentNumber(contractID, now)

	return business.ContractPayload{
		ContractID: contractID,
		MemberID:   draft.MemberID,
		PlanID:     draft.PlanID,
		Window:     order.Window,
		Order:      *order,
		Grants:     grants,
		Executors:  draft.Executors,
		Payment:    payment,
		Note:       draft.Note,
	}
}

// paymentNumber builds a human-readable trace reference. It only needs to be
// monotonic enough for tracing; global uniqueness comes from the contract id.
func paymentNumber(contractID string, now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(contractID, "-", ""))
	if len(suffix) > 6 {
		suffix = suffix[:6]
	}
	return "P" + now.Format("20060102150405") + suffix
}
