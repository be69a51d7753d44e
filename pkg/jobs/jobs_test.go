package jobs

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewJobID(t *testing.T) {
	id := NewJobID(KindIngestFull)
	assert.Regexp(t, regexp.MustCompile(`^job-\d{8}-\d{6}-ingest-full-[0-9a-f]{6}$`), id)

	// Collision-resistant within a second.
	assert.NotEqual(t, id, NewJobID(KindIngestFull))
}

func TestStateTerminal(t *testing.T) {
	assert.False(t, StateQueued.Terminal())
	assert.False(t, StateRunning.Terminal())
	assert.True(t, StateSucceeded.Terminal())
	assert.True(t, StateFailed.Terminal())
}

func TestETAHint(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		processed int
		elapsed   time.Duration
		expected  string
	}{
		{"unknown total", 0, 50, time.Minute, ""},
		{"no progress", 100, 0, time.Minute, ""},
		{"already done", 100, 100, time.Minute, ""},
		{"no elapsed time", 100, 50, 0, ""},
		{"halfway", 100, 50, time.Minute, "~1m0s"},
		{"quarter done", 100, 25, time.Minute, "~3m0s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ETAHint(tt.total, tt.processed, tt.elapsed))
		})
	}
}

func TestPercentOf(t *testing.T) {
	assert.Nil(t, percentOf(0, 10))
	assert.Nil(t, percentOf(-1, 10))

	p := percentOf(200, 50)
	if assert.NotNil(t, p) {
		assert.InDelta(t, 25.0, *p, 0.001)
	}
}
