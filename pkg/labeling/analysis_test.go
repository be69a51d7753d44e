package labeling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrequencyLabel(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	every := func(gap time.Duration, n int) []time.Time {
		out := make([]time.Time, n)
		for i := range out {
			out[i] = base.Add(time.Duration(i) * gap)
		}
		return out
	}

	tests := []struct {
		name     string
		dates    []time.Time
		expected string
	}{
		{"no dates", nil, "yearly"},
		{"single date", every(0, 1), "yearly"},
		{"daily", every(24*time.Hour, 5), "daily"},
		{"weekly", every(7*24*time.Hour, 5), "weekly"},
		{"monthly", every(30*24*time.Hour, 5), "monthly"},
		{"quarterly", every(90*24*time.Hour, 4), "quarterly"},
		{"yearly", every(365*24*time.Hour, 3), "yearly"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FrequencyLabel(tt.dates))
		})
	}

	// Order does not matter.
	shuffled := []time.Time{base.Add(48 * time.Hour), base, base.Add(24 * time.Hour)}
	assert.Equal(t, "daily", FrequencyLabel(shuffled))
}

func TestUnreadRatioLabel(t *testing.T) {
	flags := func(unread, read int) []bool {
		out := make([]bool, 0, unread+read)
		for i := 0; i < unread; i++ {
			out = append(out, true)
		}
		for i := 0; i < read; i++ {
			out = append(out, false)
		}
		return out
	}

	tests := []struct {
		name     string
		flags    []bool
		expected string
	}{
		{"empty", nil, "none"},
		{"all unread", flags(10, 0), "all"},
		{"nearly all unread", flags(19, 1), "almost all"},
		{"exactly 90 percent", flags(9, 1), "almost all"},
		{"none unread", flags(0, 10), "none"},
		{"exactly 10 percent", flags(1, 9), "almost none"},
		{"mixed", flags(5, 5), "some"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UnreadRatioLabel(tt.flags))
		})
	}
}
