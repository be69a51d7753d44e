package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDomainOf(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"alice@example.com", "example.com"},
		{"ALICE@Example.COM", "example.com"},
		{"  bob@mail.example.org  ", "mail.example.org"},
		{"no-at-sign", "no-at-sign"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, DomainOf(tt.input))
		})
	}
}

func TestFormatWatermark(t *testing.T) {
	ts := time.Date(2026, 3, 2, 15, 4, 5, 0, time.FixedZone("CET", 3600))
	assert.Equal(t, "2026-03-02T14:04:05Z", formatWatermark(ts, true))
	assert.Empty(t, formatWatermark(ts, false))
}

func TestFormatCheckpoint(t *testing.T) {
	ts := time.Date(2026, 3, 2, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "2026-03-02T15:04:05Z", formatCheckpoint(&ts))
	assert.Empty(t, formatCheckpoint(nil))
}
