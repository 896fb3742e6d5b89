package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfit-tech/lodestar-contract-api/internal/services"
	"github.com/urfit-tech/lodestar-contract-api/internal/types/business"
)

func testOrder() *business.PricedOrder {
	endedAt := time.Date(2024, 2, 8, 0, 0, 0, 0, time.UTC)
	return &business.PricedOrder{
		Items: []business.LineItem{
			{Name: "Coaching sessions", UnitPrice: 1000, Quantity: 2, Kind: business.LineItemProduct},
			{Name: "Referral discount", UnitPrice: -300, Quantity: 1, Kind: business.LineItemDiscount, CouponPlanID: ptrString("coupon-plan-referral")},
		},
		FinalPrice:   1700,
		Appointments: 5,
		Coins:        100,
		Window: business.ServiceWindow{
			StartedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndedAt:   &endedAt,
		},
	}
}

func TestGrantGenerator_Generate_AppointmentCouponBatch(t *testing.T) {
	generator := services.NewGrantGenerator(services.GrantConfig{})
	ids := services.NewSequenceIDSource("seq")

	grants := generator.Generate(testOrder(), "member-1", "contract-1", ids)

	// Five instances share exactly one batch, and only the first carries the
	// create-batch flag.
	require.Len(t, grants.Batches, 1)
	batch := grants.Batches[0]
	assert.Contains(t, batch.Title, "contract-1")
	assert.Contains(t, batch.Description, "member-1")
	assert.Equal(t, []string{"appointment"}, batch.Scope)
	assert.Equal(t, testOrder().Window.StartedAt, batch.StartedAt)
	require.NotNil(t, batch.EndedAt)
	assert.Equal(t, *testOrder().Window.EndedAt, *batch.EndedAt)

	appointmentCoupons := 0
	for i, coupon := range grants.Coupons {
		if coupon.BatchID != batch.ID {
			continue
		}
		appointmentCoupons++
		assert.Equal(t, "member-1", coupon.MemberID)
		assert.Equal(t, i == 0, coupon.CreateBatch)
		assert.NotEmpty(t, coupon.Code)
	}
	assert.Equal(t, 5, appointmentCoupons)
}

func TestGrantGenerator_Generate_DiscountBackedCoupon(t *testing.T) {
	generator := services.NewGrantGenerator(services.GrantConfig{})
	ids := services.NewSequenceIDSource("seq")

	grants := generator.Generate(testOrder(), "member-1", "contract-1", ids)

	var discountCoupons []business.CouponInstance
	for _, coupon := range grants.Coupons {
		if coupon.BatchID == "coupon-plan-referral" {
			discountCoupons = append(discountCoupons, coupon)
		}
	}

	// One traceability coupon on the existing plan, face value abs(-300) x 1,
	// never creating a new batch.
	require.Len(t, discountCoupons, 1)
	assert.Equal(t, int64(300), discountCoupons[0].Amount)
	assert.False(t, discountCoupons[0].CreateBatch)
}

func TestGrantGenerator_Generate_CoinEntries(t *testing.T) {
	generator := services.NewGrantGenerator(services.GrantConfig{
		CoinExchangeRate: 1.5,
		OnboardingCoins:  50,
	})
	ids := services.NewSequenceIDSource("seq")
	order := testOrder()

	grants := generator.Generate(order, "member-1", "contract-1", ids)

	require.Len(t, grants.CoinLogs, 2)

	bootstrap := grants.CoinLogs[0]
	assert.Equal(t, int64(50), bootstrap.Amount)
	assert.Nil(t, bootstrap.StartedAt, "bootstrap entry has no start bound")
	require.NotNil(t, bootstrap.EndedAt)

	planTied := grants.CoinLogs[1]
	assert.Equal(t, int64(150), planTied.Amount, "100 coins at rate 1.5")
	require.NotNil(t, planTied.StartedAt)
	assert.Equal(t, order.Window.StartedAt, *planTied.StartedAt)
	assert.Equal(t, *order.Window.EndedAt, *planTied.EndedAt)
}

func TestGrantGenerator_Generate_NoEntitlementsNoGrants(t *testing.T) {
	generator := services.NewGrantGenerator(services.GrantConfig{})
	ids := services.NewSequenceIDSource("seq")

	order := &business.PricedOrder{
		Items:      []business.LineItem{{Name: "Plain product", UnitPrice: 100, Quantity: 1, Kind: business.LineItemProduct}},
		FinalPrice: 100,
		Window:     business.ServiceWindow{StartedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	grants := generator.Generate(order, "member-1", "contract-1", ids)
	assert.Empty(t, grants.CoinLogs)
	assert.Empty(t, grants.Batches)
	assert.Empty(t, grants.Coupons)
}

func TestGrantGenerator_Generate_Idempotence(t *testing.T) {
	generator := services.NewGrantGenerator(services.GrantConfig{OnboardingCoins: 50})

	// Same id sequence yields identical grants.
	first := generator.Generate(testOrder(), "member-1", "contract-1", services.NewSequenceIDSource("retry"))
	second := generator.Generate(testOrder(), "member-1", "contract-1", services.NewSequenceIDSource("retry"))
	assert.Equal(t, first, second)

	// A different sequence yields disjoint ids for the same order.
	third := generator.Generate(testOrder(), "member-1", "contract-1", services.NewSequenceIDSource("fresh"))
	firstIDs := map[string]bool{}
	for _, entry := range first.CoinLogs {
		firstIDs[entry.ID] = true
	}
	for _, batch := range first.Batches {
		firstIDs[batch.ID] = true
	}
	for _, coupon := range first.Coupons {
		firstIDs[coupon.ID] = true
	}
	for _, entry := range third.CoinLogs {
		assert.False(t, firstIDs[entry.ID])
	}
	for _, batch := range third.Batches {
		assert.False(t, firstIDs[batch.ID])
	}
	for _, coupon := range third.Coupons {
		assert.False(t, firstIDs[coupon.ID])
	}
}
