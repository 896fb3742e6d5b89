package business

import "time"

// CoinLogEntry is a generated store-credit grant. A nil StartedAt marks a
// bootstrap entry with no lower validity bound.
type CoinLogEntry struct {
	ID          string     `json:"id"`
	MemberID    string     `json:"member_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Amount      int64      `json:"amount"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
}

// CouponBatch groups coupon instances under one plan definition.
type CouponBatch struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartedAt   time.Time  `json:"started_at"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
	Scope       []string   `json:"scope,omitempty"`
}

// CouponInstance is an individually redeemable coupon. CreateBatch is set on
// exactly the first instance of a newly generated batch; later instances
// reference the existing batch id so one submission never redefines the same
// batch twice. Amount is the face value for discount-backed coupons and zero
// for entitlement coupons whose value lives on the batch scope.
type CouponInstance struct {
	ID          string `json:"id"`
	BatchID     string `json:"batch_id"`
	MemberID    string `json:"member_id"`
	Code        string `json:"code"`
	Amount      int64  `json:"amount,omitempty"`
	CreateBatch bool   `json:"create_batch"`
}

// Grants bundles every reward entity derived from one priced order.
type Grants struct {
	CoinLogs []CoinLogEntry   `json:"coin_logs"`
	Batches  []CouponBatch    `json:"batches"`
	Coupons  []CouponInstance `json:"coupons"`
}
