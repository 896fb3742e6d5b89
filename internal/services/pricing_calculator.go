package services

import (
	"fmt"
	"time"

	"github.com/urfit-tech/lodestar-contract-api/internal/types/business"
)

// PricingCalculator derives the service window and itemized totals for a
// contract draft. It is a pure function of the draft and the catalog
// snapshot: no clock, no storage, no side effects.
type PricingCalculator struct{}

// NewPricingCalculator creates a new pricing calculator
func NewPricingCalculator() *PricingCalculator {
	return &PricingCalculator{}
}

// Compute resolves every selection against the catalog and builds the priced
// order. Unresolvable ids and period mismatches are input errors; a negative
// total is not an error here, it is surfaced to the validation gate.
func (pc *PricingCalculator) Compute(draft business.ContractDraft, catalog *business.CatalogSnapshot) (*business.PricedOrder, error) {
	plan, ok := catalog.FindPlan(draft.PlanID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlan, draft.PlanID)
	}

	order := &business.PricedOrder{
		Window: pc.ServiceWindow(plan, draft.StartedAt, draft.GraceDays),
	}

	for _, item := range draft.Items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: product %s has quantity %d", ErrInvalidQuantity, item.ProductID, item.Quantity)
		}
		product, ok := catalog.FindProduct(item.ProductID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, item.ProductID)
		}
		if !periodMatches(plan, product) {
			return nil, fmt.Errorf("%w: product %s", ErrPeriodMismatch, item.ProductID)
		}

		order.Items = append(order.Items, business.LineItem{
			Name:      product.Title,
			UnitPrice: product.Price(),
			Quantity:  item.Quantity,
			Kind:      business.LineItemProduct,
		})
		order.Appointments += product.Appointments * item.Quantity
		order.Coins += product.Coins * int64(item.Quantity)
	}

	for _, discountID := range draft.DiscountIDs {
		discount, ok := catalog.FindDiscount(discountID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownDiscount, discountID)
		}

		// Definitions store the magnitude positive; the sign convention is
		// owned here, not at the call site.
		order.Items = append(order.Items, business.LineItem{
			Name:         discount.Name,
			UnitPrice:    -discount.Amount,
			Quantity:     1,
			Kind:         business.LineItemDiscount,
			CouponPlanID: discount.CouponPlanID,
		})
	}

	for _, item := range order.Items {
		order.FinalPrice += item.Total()
	}

	return order, nil
}

// ServiceWindow computes the entitlement period: one plan period from the
// start date, extended by the grace days. Grace days never move the start.
// Plans without a period unit are perpetual and have no end date.
func (pc *PricingCalculator) ServiceWindow(plan business.Plan, startedAt time.Time, graceDays int) business.ServiceWindow {
	window := business.ServiceWindow{StartedAt: startedAt}
	if plan.PeriodType == business.PeriodNone {
		return window
	}

	endedAt := pc.AddPeriod(startedAt, plan.PeriodAmount, plan.PeriodType).AddDate(0, 0, graceDays)
	window.EndedAt = &endedAt
	return window
}

// AddPeriod adds the given number of billing periods to a date.
func (pc *PricingCalculator) AddPeriod(start time.Time, amount int, periodType business.PeriodType) time.Time {
	switch periodType {
	case business.PeriodDay:
		return start.AddDate(0, 0, amount)
	case business.PeriodWeek:
		return start.AddDate(0, 0, 7*amount)
	case business.PeriodMonth:
		return start.AddDate(0, amount, 0)
	case business.PeriodYear:
		return start.AddDate(amount, 0, 0)
	default:
		return start
	}
}

// periodMatches reports whether a product may be offered with the plan: the
// product either has no period of its own or carries exactly the plan's
// period.
func periodMatches(plan business.Plan, product business.Product) bool {
	if product.PeriodType == business.PeriodNone || product.PeriodAmount == nil {
		return true
	}
	return product.PeriodType == plan.PeriodType && *product.PeriodAmount == plan.PeriodAmount
}
