package surveyor

import (
	"strings"

	ierr "github.com/Caesar-design242/beacongen/internal/errors"
	"github.com/Caesar-design242/beacongen/internal/types"
)

// Surveyor is a registered land surveyor. Prefix is unique
// case-insensitively; the allocation core treats it as an opaque quota and
// sequence key and embeds it verbatim in generated codes.
type Surveyor struct {
	ID      string `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	Prefix  string `db:"prefix" json:"prefix"`
	Company string `db:"company" json:"company,omitempty"`
	Address string `db:"address" json:"address,omitempty"`
	Phone   string `db:"phone" json:"phone,omitempty"`
	Email   string `db:"email" json:"email,omitempty"`
	types.BaseModel
}

func (s *Surveyor) Validate() error {
	if s.Name == "" {
		return ierr.NewError("name is required").
			WithHint("Surveyor name is required").
			Mark(ierr.ErrValidation)
	}
	if s.Prefix == "" {
		return ierr.NewError("prefix is required").
			WithHint("Surveyor prefix is required").
			Mark(ierr.ErrValidation)
	}
	if s.Prefix != strings.ToUpper(s.Prefix) {
		return ierr.NewError("prefix must be uppercase").
			WithHintf("Surveyor prefix %q must be stored uppercase", s.Prefix).
			Mark(ierr.ErrValidation)
	}
	return nil
}
