package business

import "time"

// ServiceWindow is the entitlement period of a contract. A nil EndedAt means
// the plan is perpetual.
type ServiceWindow struct {
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

// SupportedGraceDays is the fixed set of gift/grace day extensions an
// operator may pick.
var SupportedGraceDays = []int{0, 7, 14}

// GraceDaysSupported reports whether days is one of the allowed extensions.
func GraceDaysSupported(days int) bool {
	for _, d := range SupportedGraceDays {
		if d == days {
			return true
		}
	}
	return false
}
