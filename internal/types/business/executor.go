package business

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RatioScale is the fixed-point denominator for revenue-share ratios. Ratios
// are carried as basis points so the sum-to-one invariant is an exact integer
// comparison, never a float tolerance.
const RatioScale = 10000

// Ratio is a revenue-share fraction in units of 1/RatioScale.
type Ratio int64

// ParseRatio parses a decimal string such as "0.6" or "0.3333" into a Ratio.
// At most four decimal places are accepted; anything finer would be silently
// rounded, which is exactly what this representation exists to prevent.
func ParseRatio(s string) (Ratio, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty ratio")
	}
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("ratio %q must not be negative", s)
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > 4 {
		return 0, fmt.Errorf("ratio %q has more than 4 decimal places", s)
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ratio %q: %w", s, err)
	}

	var frac int64
	if fracPart != "" {
		padded := fracPart + strings.Repeat("0", 4-len(fracPart))
		frac, err = strconv.ParseInt(padded, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid ratio %q: %w", s, err)
		}
	}

	return Ratio(whole*RatioScale + frac), nil
}

// String renders the ratio as a minimal decimal string ("0.6", "1", "0.3333").
func (r Ratio) String() string {
	whole := int64(r) / RatioScale
	frac := int64(r) % RatioScale
	if frac == 0 {
		return strconv.FormatInt(whole, 10)
	}
	s := fmt.Sprintf("%d.%04d", whole, frac)
	return strings.TrimRight(s, "0")
}

// MarshalJSON encodes the ratio as its decimal string form.
func (r Ratio) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON accepts either a JSON string ("0.6") or a bare JSON number
// (0.6); both are parsed from their literal text so no float conversion ever
// happens.
func (r *Ratio) UnmarshalJSON(data []byte) error {
	text := strings.Trim(string(data), `"`)
	parsed, err := ParseRatio(text)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ExecutorAssignment pairs a staff member with their revenue-share ratio.
type ExecutorAssignment struct {
	MemberID string `json:"member_id"`
	Ratio    Ratio  `json:"ratio"`
}

// SumRatios folds the ratios of all assignments.
func SumRatios(assignments []ExecutorAssignment) Ratio {
	var sum Ratio
	for _, a := range assignments {
		sum += a.Ratio
	}
	return sum
}
