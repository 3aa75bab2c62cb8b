package sequence

import (
	"fmt"
	"time"

	ierr "github.com/Caesar-design242/beacongen/internal/errors"
)

const (
	// CodePrefix is the fixed leading segment of every issued beacon code.
	// It is part of the audit log's self-consistency and must never change
	// for the life of the deployed sequence.
	CodePrefix = "SC/ED"

	alphaStart = "AA"
	alphaEnd   = "ZZ"

	numberMax = 9999
	// numberStart is the value the numeric segment resets to when it rolls
	// over past numberMax. The deployed counter history uses 1.
	numberStart = 1
)

// Cursor is the singleton state describing the next beacon code to be issued.
// Alpha is a two-letter base-26 counter ("AA".."ZZ"); Number is the last
// issued numeric segment, 0 only before the very first allocation.
type Cursor struct {
	Alpha     string    `db:"current_alpha" json:"alpha"`
	Number    int       `db:"current_number" json:"number"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// NewCursor returns the cursor a fresh deployment starts from.
func NewCursor() *Cursor {
	return &Cursor{Alpha: alphaStart, Number: 0}
}

func (c *Cursor) Validate() error {
	if len(c.Alpha) != 2 || c.Alpha[0] < 'A' || c.Alpha[0] > 'Z' || c.Alpha[1] < 'A' || c.Alpha[1] > 'Z' {
		return ierr.NewError("invalid cursor alpha segment").
			WithHintf("Alpha segment must be two uppercase letters, got %q", c.Alpha).
			Mark(ierr.ErrValidation)
	}
	if c.Number < 0 || c.Number > numberMax {
		return ierr.NewError("invalid cursor number segment").
			WithHintf("Number segment must be in [0,%d], got %d", numberMax, c.Number).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Next advances the cursor by quantity steps and returns the raw codes in
// issue order, formatted "{alpha} {number:04d}". The whole batch delta is
// applied to the receiver in one step; callers persist the cursor only after
// a successful return so no intermediate state is ever observable.
func (c *Cursor) Next(quantity int) ([]string, error) {
	if quantity <= 0 {
		return nil, ierr.NewError("quantity must be positive").
			WithHintf("Requested quantity %d is not a positive integer", quantity).
			Mark(ierr.ErrInvalidQuantity)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	alpha, number := c.Alpha, c.Number
	codes := make([]string, 0, quantity)
	for i := 0; i < quantity; i++ {
		number++
		if number > numberMax {
			number = numberStart
			next, err := nextAlpha(alpha)
			if err != nil {
				return nil, err
			}
			alpha = next
		}
		codes = append(codes, fmt.Sprintf("%s %04d", alpha, number))
	}

	c.Alpha = alpha
	c.Number = number
	return codes, nil
}

// nextAlpha increments the two-letter base-26 counter. Overflow past "ZZ"
// fails loudly; wrapping back to "AA" would collide with already issued codes.
func nextAlpha(alpha string) (string, error) {
	if alpha == alphaEnd {
		return "", ierr.NewError("alpha counter overflow").
			WithHint("The beacon code sequence is exhausted; no further codes can be issued safely").
			Mark(ierr.ErrSequenceExhausted)
	}
	if alpha[1] == 'Z' {
		return string([]byte{alpha[0] + 1, 'A'}), nil
	}
	return string([]byte{alpha[0], alpha[1] + 1}), nil
}

// FormatCode builds the canonical public beacon code string from a raw code
// and the surveyor prefix, e.g. "SC/ED AA 0001 ZG".
func FormatCode(rawCode, surveyorPrefix string) string {
	return fmt.Sprintf("%s %s %s", CodePrefix, rawCode, surveyorPrefix)
}
