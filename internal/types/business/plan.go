package business

// PeriodType is the billing period unit for plans and add-on products.
type PeriodType string

const (
	PeriodDay   PeriodType = "day"
	PeriodWeek  PeriodType = "week"
	PeriodMonth PeriodType = "month"
	PeriodYear  PeriodType = "year"
	// PeriodNone marks a perpetual plan with no service end date.
	PeriodNone PeriodType = ""
)

// Valid reports whether pt is a supported period unit.
func (pt PeriodType) Valid() bool {
	switch pt {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear, PeriodNone:
		return true
	}
	return false
}

// Plan is the base subscription selected for a contract. Exactly one active
// plan exists per draft.
type Plan struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	PeriodAmount int        `json:"period_amount,omitempty"`
	PeriodType   PeriodType `json:"period_type,omitempty"`
}
