package issuance

import (
	"time"

	ierr "github.com/Caesar-design242/beacongen/internal/errors"
	"github.com/Caesar-design242/beacongen/internal/types"
)

// Record is one immutable allocation event: who was issued which codes,
// when, and against which quarter. Records are append-only; ordering by
// IssuedAt is the canonical history order.
type Record struct {
	ID             string        `db:"id" json:"id"`
	SurveyorPrefix string        `db:"surveyor_prefix" json:"surveyor_prefix"`
	SurveyorName   string        `db:"surveyor_name" json:"surveyor_name"`
	Codes          []string      `db:"-" json:"codes"`
	Quantity       int           `db:"quantity" json:"quantity"`
	Quarter        types.Quarter `db:"quarter" json:"quarter"`
	IssuedAt       time.Time     `db:"issued_at" json:"issued_at"`
}

func (r *Record) Validate() error {
	if r.SurveyorPrefix == "" {
		return ierr.NewError("surveyor prefix is required").
			WithHint("Issuance records must carry the surveyor prefix").
			Mark(ierr.ErrValidation)
	}
	if r.Quantity != len(r.Codes) {
		return ierr.NewError("quantity does not match code count").
			WithHintf("Record quantity %d but %d codes", r.Quantity, len(r.Codes)).
			Mark(ierr.ErrValidation)
	}
	if err := r.Quarter.Validate(); err != nil {
		return err
	}
	return nil
}
