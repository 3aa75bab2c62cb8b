package quota

import (
	"time"

	"github.com/Caesar-design242/beacongen/internal/types"
)

// Entry tracks how many beacon codes one surveyor has consumed in one
// quarter. Entries are created lazily on first allocation and never
// deleted so historical quarters stay queryable; Get returns a zero-usage
// Entry for a key that has no row yet.
type Entry struct {
	ID             string        `db:"id" json:"id"`
	SurveyorPrefix string        `db:"surveyor_prefix" json:"surveyor_prefix"`
	Quarter        types.Quarter `db:"quarter" json:"quarter"`
	UsageCount     int           `db:"usage_count" json:"usage_count"`
	CreatedAt      time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at" json:"updated_at"`
}
