package services

import (
	"fmt"
	"math"

	"github.com/urfit-tech/lodestar-contract-api/internal/types/business"
)

// GrantConfig tunes reward generation per deployment.
type GrantConfig struct {
	// CoinExchangeRate converts derived credit counters into coin units.
	CoinExchangeRate float64
	// OnboardingCoins, when positive, grants a flat coin amount on every
	// contract regardless of the selected products.
	OnboardingCoins int64
}

// GrantGenerator derives coupon batches and coin ledger entries from a
// priced order. Given the same order and the same id sequence, the output is
// byte-identical; nothing here touches the network or storage.
type GrantGenerator struct {
	cfg GrantConfig
}

// NewGrantGenerator creates a new grant generator
func NewGrantGenerator(cfg GrantConfig) *GrantGenerator {
	if cfg.CoinExchangeRate <= 0 {
		cfg.CoinExchangeRate = 1.0
	}
	return &GrantGenerator{cfg: cfg}
}

// Generate produces every reward entity for one contract. Every id is drawn
// from the source, never derived from content, so a retried submission with
// the same sequence reuses the same keys.
func (g *GrantGenerator) Generate(order *business.PricedOrder, memberID, contractID string, ids IDSource) business.Grants {
	grants := business.Grants{}
	window := order.Window

	// Bootstrap coin entry: no lower validity bound.
	if g.cfg.OnboardingCoins > 0 {
		grants.CoinLogs = append(grants.CoinLogs, business.CoinLogEntry{
			ID:          ids.NewID(),
			MemberID:    memberID,
			Title:       "Onboarding coins",
			Description: fmt.Sprintf("Welcome grant for contract %s", contractID),
			Amount:      g.cfg.OnboardingCoins,
			EndedAt:     window.EndedAt,
		})
	}

	// Plan-tied coin entry mirrors the contract's service window.
	if order.Coins > 0 {
		startedAt := window.StartedAt
		grants.CoinLogs = append(grants.CoinLogs, business.CoinLogEntry{
			ID:          ids.NewID(),
			MemberID:    memberID,
			Title:       "Contract coins",
			Description: fmt.Sprintf("Coins granted by contract %s", contractID),
			Amount:      int64(math.Round(float64(order.Coins) * g.cfg.CoinExchangeRate)),
			StartedAt:   &startedAt,
			EndedAt:     window.EndedAt,
		})
	}

	// One appointment coupon per derived appointment, all sharing a single
	// batch definition. Only the first instance creates the batch.
	if order.Appointments > 0 {
		batchID := ids.NewID()
		grants.Batches = append(grants.Batches, business.CouponBatch{
			ID:          batchID,
			Title:       fmt.Sprintf("Appointment coupons for contract %s", contractID),
			Description: fmt.Sprintf("Issued to member %s", memberID),
			StartedAt:   window.StartedAt,
			EndedAt:     window.EndedAt,
			Scope:       []string{"appointment"},
		})
		for i := 0; i < order.Appointments; i++ {
			grants.Coupons = append(grants.Coupons, business.CouponInstance{
				ID:          ids.NewID(),
				BatchID:     batchID,
				MemberID:    memberID,
				Code:        couponCode(ids),
				CreateBatch: i == 0,
			})
		}
	}

	// Discount lines backed by a coupon plan get one traceability coupon on
	// the existing batch, face value abs(unit price) x quantity.
	for _, item := range order.Items {
		if item.Kind != business.LineItemDiscount || item.CouponPlanID == nil {
			continue
		}
		amount := item.UnitPrice
		if amount < 0 {
			amount = -amount
		}
		grants.Coupons = append(grants.Coupons, business.CouponInstance{
			ID:       ids.NewID(),
			BatchID:  *item.CouponPlanID,
			MemberID: memberID,
			Code:     couponCode(ids),
			Amount:   amount * int64(item.Quantity),
		})
	}

	return grants
}
