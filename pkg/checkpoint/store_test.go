package checkpoint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWatermark(t *testing.T) {
	t.Run("rfc3339 utc", func(t *testing.T) {
		got, err := ParseWatermark("2026-03-02T15:04:05Z")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 2, 15, 4, 5, 0, time.UTC), got)
	})

	t.Run("rfc3339 with offset normalizes to utc", func(t *testing.T) {
		got, err := ParseWatermark("2026-03-02T15:04:05+01:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 2, 14, 4, 5, 0, time.UTC), got)
	})

	t.Run("bare timestamp is read as utc", func(t *testing.T) {
		got, err := ParseWatermark("2026-03-02T15:04:05")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 2, 15, 4, 5, 0, time.UTC), got)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseWatermark("yesterday")
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseWatermark("")
		assert.Error(t, err)
	})
}
