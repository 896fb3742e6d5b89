package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfit-tech/lodestar-contract-api/internal/logger"
	"github.com/urfit-tech/lodestar-contract-api/internal/services"
	"github.com/urfit-tech/lodestar-contract-api/internal/types/business"
)

func init() {
	logger.InitLogger("test")
}

func ptrInt64(v int64) *int64    { return &v }
func ptrInt(v int) *int          { return &v }
func ptrString(v string) *string { return &v }

// testCatalog returns the reference snapshot shared by the service tests.
func testCatalog() *business.CatalogSnapshot {
	return &business.CatalogSnapshot{
		Member: business.Member{
			ID:    "member-1",
			Name:  "Alice Chen",
			Email: "alice@example.com",
		},
		Plans: []business.Plan{
			{ID: "plan-monthly", Title: "Monthly plan", PeriodAmount: 1, PeriodType: business.PeriodMonth},
			{ID: "plan-yearly", Title: "Yearly plan", PeriodAmount: 1, PeriodType: business.PeriodYear},
			{ID: "plan-biweekly", Title: "Biweekly plan", PeriodAmount: 2, PeriodType: business.PeriodWeek},
			{ID: "plan-tendays", Title: "Ten day plan", PeriodAmount: 10, PeriodType: business.PeriodDay},
			{ID: "plan-perpetual", Title: "Perpetual plan"},
			{ID: "plan-stalled", Title: "Stalled plan", PeriodAmount: 0, PeriodType: business.PeriodMonth},
		},
		Products: []business.Product{
			{
				ID:           "prod-coaching",
				Title:        "Coaching sessions",
				ListPrice:    1200,
				AddonPrice:   ptrInt64(1000),
				PeriodAmount: ptrInt(1),
				PeriodType:   business.PeriodMonth,
				Appointments: 5,
			},
			{
				ID:        "prod-coins",
				Title:     "Coin pack",
				ListPrice: 500,
				Coins:     100,
			},
			{
				ID:           "prod-weekly-only",
				Title:        "Weekly extra",
				ListPrice:    300,
				PeriodAmount: ptrInt(1),
				PeriodType:   business.PeriodWeek,
			},
		},
		Discounts: []business.DiscountDefinition{
			{ID: "disc-referral", Name: "Referral discount", Amount: 300, CouponPlanID: ptrString("coupon-plan-referral")},
			{ID: "disc-promo", Name: "Launch promo", Amount: 5000},
		},
		Executors: []business.Member{
			{ID: "staff-1", Name: "Bob Lin", Email: "bob@example.com"},
			{ID: "staff-2", Name: "Carol Wu", Email: "carol@example.com"},
		},
	}
}

func baseDraft() business.ContractDraft {
	return business.ContractDraft{
		MemberID:  "member-1",
		PlanID:    "plan-monthly",
		StartedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Executors: []business.ExecutorAssignment{
			{MemberID: "staff-1", Ratio: 10000},
		},
		Payment: business.PaymentInfo{Method: "card", Installments: 1},
	}
}

func TestPricingCalculator_Compute_LineItemsAndTotal(t *testing.T) {
	calculator := services.NewPricingCalculator()

	// One product priced 1000 with quantity 2 and one discount of magnitude
	// 300 folds to 1700.
	draft := baseDraft()
	draft.Items = []business.SelectedItem{{ProductID: "prod-coaching", Quantity: 2}}
	draft.DiscountIDs = []string{"disc-referral"}

	order, err := calculator.Compute(draft, testCatalog())
	require.NoError(t, err)

	require.Len(t, order.Items, 2)
	assert.Equal(t, business.LineItem{
		Name:      "Coaching sessions",
		UnitPrice: 1000,
		Quantity:  2,
		Kind:      business.LineItemProduct,
	}, order.Items[0])
	assert.Equal(t, "Referral discount", order.Items[1].Name)
	assert.Equal(t, int64(-300), order.Items[1].UnitPrice)
	assert.Equal(t, 1, order.Items[1].Quantity)
	assert.Equal(t, business.LineItemDiscount, order.Items[1].Kind)
	require.NotNil(t, order.Items[1].CouponPlanID)
	assert.Equal(t, "coupon-plan-referral", *order.Items[1].CouponPlanID)

	assert.Equal(t, int64(1700), order.FinalPrice)
	assert.Equal(t, 10, order.Appointments)
}

func TestPricingCalculator_Compute_FinalPriceIsAlwaysTheFold(t *testing.T) {
	calculator := services.NewPricingCalculator()

	draft := baseDraft()
	draft.Items = []business.SelectedItem{
		{ProductID: "prod-coaching", Quantity: 1},
		{ProductID: "prod-coins", Quantity: 3},
	}
	draft.DiscountIDs = []string{"disc-referral"}

	order, err := calculator.Compute(draft, testCatalog())
	require.NoError(t, err)

	var fold int64
	for _, item := range order.Items {
		fold += item.Total()
	}
	assert.Equal(t, fold, order.FinalPrice)
	assert.Equal(t, int64(300), order.Coins)
}

func TestPricingCalculator_Compute_NegativeTotalIsNotClamped(t *testing.T) {
	calculator := services.NewPricingCalculator()

	draft := baseDraft()
	draft.Items = []business.SelectedItem{{ProductID: "prod-coins", Quantity: 1}}
	draft.DiscountIDs = []string{"disc-promo"}

	order, err := calculator.Compute(draft, testCatalog())
	require.NoError(t, err)
	assert.Equal(t, int64(-4500), order.FinalPrice)
}

func TestPricingCalculator_Compute_ServiceWindow(t *testing.T) {
	calculator := services.NewPricingCalculator()
	startedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		planID    string
		graceDays int
		wantEnd   *time.Time
	}{
		{
			name:      "one month with seven grace days",
			planID:    "plan-monthly",
			graceDays: 7,
			wantEnd:   timePtr(time.Date(2024, 2, 8, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:    "one month no grace",
			planID:  "plan-monthly",
			wantEnd: timePtr(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:    "one year",
			planID:  "plan-yearly",
			wantEnd: timePtr(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:      "two weeks with fourteen grace days",
			planID:    "plan-biweekly",
			graceDays: 14,
			wantEnd:   timePtr(time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:    "ten days",
			planID:  "plan-tendays",
			wantEnd: timePtr(time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:    "perpetual plan has no end",
			planID:  "plan-perpetual",
			wantEnd: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := baseDraft()
			draft.PlanID = tt.planID
			draft.GraceDays = tt.graceDays

			order, err := calculator.Compute(draft, testCatalog())
			require.NoError(t, err)

			assert.Equal(t, startedAt, order.Window.StartedAt)
			if tt.wantEnd == nil {
				assert.Nil(t, order.Window.EndedAt)
			} else {
				require.NotNil(t, order.Window.EndedAt)
				assert.Equal(t, *tt.wantEnd, *order.Window.EndedAt)
			}
		})
	}
}

func TestPricingCalculator_Compute_InputErrors(t *testing.T) {
	calculator := services.NewPricingCalculator()

	tests := []struct {
		name    string
		mutate  func(*business.ContractDraft)
		wantErr error
	}{
		{
			name:    "unknown plan",
			mutate:  func(d *business.ContractDraft) { d.PlanID = "plan-missing" },
			wantErr: services.ErrUnknownPlan,
		},
		{
			name: "unknown product",
			mutate: func(d *business.ContractDraft) {
				d.Items = []business.SelectedItem{{ProductID: "prod-missing", Quantity: 1}}
			},
			wantErr: services.ErrUnknownProduct,
		},
		{
			name: "unknown discount",
			mutate: func(d *business.ContractDraft) {
				d.DiscountIDs = []string{"disc-missing"}
			},
			wantErr: services.ErrUnknownDiscount,
		},
		{
			name: "period mismatch",
			mutate: func(d *business.ContractDraft) {
				d.Items = []business.SelectedItem{{ProductID: "prod-weekly-only", Quantity: 1}}
			},
			wantErr: services.ErrPeriodMismatch,
		},
		{
			name: "zero quantity",
			mutate: func(d *business.ContractDraft) {
				d.Items = []business.SelectedItem{{ProductID: "prod-coaching", Quantity: 0}}
			},
			wantErr: services.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := baseDraft()
			tt.mutate(&draft)

			_, err := calculator.Compute(draft, testCatalog())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, services.IsInputError(err))
		})
	}
}

func TestPricingCalculator_Compute_ProductWithoutPeriodIsAlwaysOfferable(t *testing.T) {
	calculator := services.NewPricingCalculator()

	draft := baseDraft()
	draft.PlanID = "plan-yearly"
	draft.Items = []business.SelectedItem{{ProductID: "prod-coins", Quantity: 1}}

	_, err := calculator.Compute(draft, testCatalog())
	assert.NoError(t, err)
}

func TestPricingCalculator_Compute_ListPriceWhenNoAddonPrice(t *testing.T) {
	calculator := services.NewPricingCalculator()

	draft := baseDraft()
	draft.Items = []business.SelectedItem{{ProductID: "prod-coins", Quantity: 1}}

	order, err := calculator.Compute(draft, testCatalog())
	require.NoError(t, err)
	assert.Equal(t, int64(500), order.Items[0].UnitPrice)
}

func timePtr(t time.Time) *time.Time { return &t }
