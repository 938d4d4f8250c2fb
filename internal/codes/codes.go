// Package codes generates and validates the human-presented transaction
// codes that identify pending deposits, withdrawals and escrows.
package codes

import (
	"fmt"
	"strings"
	"time"

	"github.com/AfriTokeni/afritokeni-core/internal/errs"
)

// segments is the structural contract: {PREFIX}-{tag}-{sequence}-{timestamp}.
const segments = 4

// tagLength caps the party-derived tag so codes stay dictatable over a call.
const tagLength = 8

// Generate builds a code like DEP-AGT001-42-1714070400000. The tag is
// truncated to eight characters; the timestamp is unix milliseconds.
func Generate(prefix, tag string, sequence uint64, now time.Time) string {
	if len(tag) > tagLength {
		tag = tag[:tagLength]
	}
	return fmt.Sprintf("%s-%s-%d-%d", prefix, tag, sequence, now.UnixMilli())
}

// Validate checks the structure of a code before any store lookup: the
// expected prefix and exactly four dash-separated segments. Malformed codes
// fail fast with an InvalidInput error.
func Validate(code, prefix string) error {
	if !strings.HasPrefix(code, prefix+"-") {
		return errs.InvalidInput("Invalid code format. Must start with %s", prefix)
	}
	if len(strings.Split(code, "-")) != segments {
		return errs.InvalidInput("Invalid code format. Expected format: %s-{tag}-{sequence}-{timestamp}", prefix)
	}
	return nil
}
