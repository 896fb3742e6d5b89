package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// IDSource supplies the unique ids stamped on contracts, coupon batches,
// coupons and coin log entries. Grants are keyed by these ids rather than by
// content, so a resubmission after a transient failure can safely retry
// without duplicating rewards. Injecting the source keeps grant generation
// deterministic under test.
type IDSource interface {
	NewID() string
}

// RandomIDSource is the production source, backed by random UUIDs.
type RandomIDSource struct{}

// NewRandomIDSource creates the production id source.
func NewRandomIDSource() *RandomIDSource {
	return &RandomIDSource{}
}

// NewID returns a fresh random UUID string.
func (s *RandomIDSource) NewID() string {
	return uuid.New().String()
}

// SequenceIDSource hands out ids from a deterministic counter. Two sources
// with the same prefix yield identical sequences; different prefixes never
// collide.
type SequenceIDSource struct {
	prefix string
	next   int
}

// NewSequenceIDSource creates a deterministic id source.
func NewSequenceIDSource(prefix string) *SequenceIDSource {
	return &SequenceIDSource{prefix: prefix}
}

// NewID returns the next id in the sequence.
func (s *SequenceIDSource) NewID() string {
	s.next++
	return fmt.Sprintf("%s-%04d", s.prefix, s.next)
}

// couponCode derives a short redeemable code from a fresh id. Codes consume
// one id from the source so they stay reproducible under a fixed sequence.
func couponCode(ids IDSource) string {
	code := strings.ToUpper(strings.ReplaceAll(ids.NewID(), "-", ""))
	if len(code) > 8 {
		code = code[:8]
	}
	return code
}
