package business

// DiscountDefinition is a named adjustment (referral or promotional). Amount
// is always stored positive; the pricing calculator owns the sign convention
// and negates it when building the line item.
type DiscountDefinition struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Amount       int64   `json:"amount"`
	CouponPlanID *string `json:"coupon_plan_id,omitempty"`
}
