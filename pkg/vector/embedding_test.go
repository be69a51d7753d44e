package vector

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddingText(t *testing.T) {
	got := EmbeddingText("your order has shipped", "shop.example.com", true)
	assert.Equal(t,
		"subject: your order has shipped\nfrom_domain: shop.example.com\nis_unread: true",
		got)

	got = EmbeddingText("", "", false)
	assert.Equal(t, "subject: \nfrom_domain: \nis_unread: false", got)
}

func TestPointID(t *testing.T) {
	id := PointID("msg-1")

	// Deterministic so re-ingestion overwrites instead of duplicating.
	assert.Equal(t, id, PointID("msg-1"))
	assert.NotEqual(t, id, PointID("msg-2"))

	_, err := uuid.Parse(id)
	require.NoError(t, err)
}
