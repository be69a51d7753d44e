package labeling

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClusterID(t *testing.T) {
	id := ClusterID("msg-1", 0.83, "v1")

	// Deterministic and a valid UUID.
	assert.Equal(t, id, ClusterID("msg-1", 0.83, "v1"))
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	// Any input change produces a different cluster identity.
	assert.NotEqual(t, id, ClusterID("msg-2", 0.83, "v1"))
	assert.NotEqual(t, id, ClusterID("msg-1", 0.85, "v1"))
	assert.NotEqual(t, id, ClusterID("msg-1", 0.83, "v2"))
}

func TestSampleCount(t *testing.T) {
	tests := []struct {
		size     int
		expected int
	}{
		{1, 1},
		{4, 1},
		{5, 2},
		{9, 2},
		{10, 3},
		{50, 3},
		{51, 4},
		{500, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, SampleCount(tt.size), "cluster size %d", tt.size)
	}
}

func TestClusterRNGDeterministic(t *testing.T) {
	id := ClusterID("msg-1", 0.83, "v1")
	a := clusterRNG(id)
	b := clusterRNG(id)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}
