package business

// LineItemKind distinguishes priced product lines from discount lines.
type LineItemKind string

const (
	LineItemProduct  LineItemKind = "product"
	LineItemDiscount LineItemKind = "discount"
)

// LineItem is one priced row of the order. Discount lines carry a negative
// UnitPrice; CouponPlanID links a discount line back to the coupon plan that
// backs it, for redemption traceability.
type LineItem struct {
	Name         string       `json:"name"`
	UnitPrice    int64        `json:"unit_price"`
	Quantity     int          `json:"quantity"`
	Kind         LineItemKind `json:"kind"`
	CouponPlanID *string      `json:"coupon_plan_id,omitempty"`
}

// Total is the line's contribution to the order price.
func (li LineItem) Total() int64 {
	return li.UnitPrice * int64(li.Quantity)
}

// PricedOrder is the pricing calculator's result: the itemized lines, the
// folded total, the derived entitlement counters, and the service window.
// FinalPrice is always the fold over Items and is never entered
// independently.
type PricedOrder struct {
	Items        []LineItem    `json:"items"`
	FinalPrice   int64         `json:"final_price"`
	Appointments int           `json:"appointments"`
	Coins        int64         `json:"coins"`
	Window       ServiceWindow `json:"window"`
}
