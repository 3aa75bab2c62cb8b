package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrentQuarter(t *testing.T) {
	tests := []struct {
		date string
		want Quarter
	}{
		{"2026-01-01", "2026-Q1"},
		{"2026-03-31", "2026-Q1"},
		{"2026-04-01", "2026-Q2"},
		{"2026-06-30", "2026-Q2"},
		{"2026-07-15", "2026-Q3"},
		{"2026-09-30", "2026-Q3"},
		{"2026-10-01", "2026-Q4"},
		{"2026-12-31", "2026-Q4"},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			now, err := time.Parse("2006-01-02", tt.date)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, CurrentQuarter(now))
		})
	}
}

func TestQuarterValidate(t *testing.T) {
	assert.NoError(t, Quarter("2026-Q3").Validate())
	assert.Error(t, Quarter("2026-Q5").Validate())
	assert.Error(t, Quarter("2026Q3").Validate())
	assert.Error(t, Quarter("").Validate())
}

func TestRemainingQuota(t *testing.T) {
	assert.Equal(t, QuarterlyCodeLimit, RemainingQuota(0))
	assert.Equal(t, 2, RemainingQuota(198))
	assert.Equal(t, 0, RemainingQuota(QuarterlyCodeLimit))
	assert.Equal(t, 0, RemainingQuota(QuarterlyCodeLimit+10))
}
