package business

// Product is a catalog add-on that can be attached to a contract draft.
// Prices are integer currency units. AddonPrice, when present, is the price
// charged for selecting the product alongside a plan; otherwise ListPrice
// applies.
type Product struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	ListPrice    int64      `json:"list_price"`
	AddonPrice   *int64     `json:"addon_price,omitempty"`
	PeriodAmount *int       `json:"period_amount,omitempty"`
	PeriodType   PeriodType `json:"period_type,omitempty"`
	Appointments int        `json:"appointments,omitempty"`
	Coins        int64      `json:"coins,omitempty"`
	CouponPlanID *string    `json:"coupon_plan_id,omitempty"`
}

// Price returns the effective unit price for the product when sold as a
// contract add-on.
func (p Product) Price() int64 {
	if p.AddonPrice != nil {
		return *p.AddonPrice
	}
	return p.ListPrice
}

// SelectedItem is an operator-chosen (product, quantity) pair.
type SelectedItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}
