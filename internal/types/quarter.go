package types

import (
	"fmt"
	"regexp"
	"time"

	ierr "github.com/Caesar-design242/beacongen/internal/errors"
)

// QuarterlyCodeLimit is the maximum number of beacon codes a single surveyor
// may be issued within one calendar quarter. The limit is a regulatory figure
// and is not configurable per deployment.
const QuarterlyCodeLimit = 200

// Quarter labels a fixed three-month calendar window, e.g. "2026-Q3".
// It is the quota reset boundary for beacon issuance.
type Quarter string

var quarterPattern = regexp.MustCompile(`^\d{4}-Q[1-4]$`)

// CurrentQuarter derives the quarter label from the given civil time.
// Callers compute it once at request start so a batch never straddles
// a quarter rollover.
func CurrentQuarter(now time.Time) Quarter {
	q := (int(now.Month())-1)/3 + 1
	return Quarter(fmt.Sprintf("%d-Q%d", now.Year(), q))
}

func (q Quarter) String() string {
	return string(q)
}

func (q Quarter) Validate() error {
	if !quarterPattern.MatchString(string(q)) {
		return ierr.NewError("invalid quarter label").
			WithHintf("Quarter must be formatted as YYYY-Qn, got %q", string(q)).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// RemainingQuota returns how many codes are still available for a surveyor
// given their current quarterly usage. Never negative.
func RemainingQuota(usage int) int {
	if usage >= QuarterlyCodeLimit {
		return 0
	}
	return QuarterlyCodeLimit - usage
}
