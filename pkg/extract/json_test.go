package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstJSONObject(t *testing.T) {
	t.Run("direct object", func(t *testing.T) {
		obj, err := firstJSONObject(`{"event_name": "Hamlet", "confidence": 0.9}`)
		require.NoError(t, err)
		assert.Equal(t, "Hamlet", obj["event_name"])
	})

	t.Run("code fence around object", func(t *testing.T) {
		obj, err := firstJSONObject("```json\n{\"event_name\": \"Hamlet\"}\n```")
		require.NoError(t, err)
		assert.Equal(t, "Hamlet", obj["event_name"])
	})

	t.Run("prose around object", func(t *testing.T) {
		obj, err := firstJSONObject(`Sure! Here is the result: {"vendor_name": "Acme"} Hope that helps.`)
		require.NoError(t, err)
		assert.Equal(t, "Acme", obj["vendor_name"])
	})

	t.Run("empty response", func(t *testing.T) {
		_, err := firstJSONObject("   ")
		assert.Error(t, err)
	})

	t.Run("no object present", func(t *testing.T) {
		_, err := firstJSONObject("I could not find an event.")
		assert.Error(t, err)
	})

	t.Run("malformed object", func(t *testing.T) {
		_, err := firstJSONObject(`{"event_name": }`)
		assert.Error(t, err)
	})
}

func TestStringField(t *testing.T) {
	m := map[string]any{
		"name":    "  Hamlet  ",
		"blank":   "   ",
		"null":    nil,
		"numeric": 42.0,
	}

	got := stringField(m, "name")
	require.NotNil(t, got)
	assert.Equal(t, "Hamlet", *got)

	assert.Nil(t, stringField(m, "blank"))
	assert.Nil(t, stringField(m, "null"))
	assert.Nil(t, stringField(m, "missing"))

	// Non-strings are stringified rather than dropped.
	got = stringField(m, "numeric")
	require.NotNil(t, got)
	assert.Equal(t, "42", *got)
}

func TestFloatField(t *testing.T) {
	m := map[string]any{
		"number":  0.85,
		"string":  " 0.5 ",
		"garbage": "high",
	}

	got := floatField(m, "number")
	require.NotNil(t, got)
	assert.Equal(t, 0.85, *got)

	got = floatField(m, "string")
	require.NotNil(t, got)
	assert.Equal(t, 0.5, *got)

	assert.Nil(t, floatField(m, "garbage"))
	assert.Nil(t, floatField(m, "missing"))
}

func TestBoolField(t *testing.T) {
	m := map[string]any{
		"yes": true,
		"no":  false,
		"str": "true",
	}

	got := boolField(m, "yes")
	require.NotNil(t, got)
	assert.True(t, *got)

	got = boolField(m, "no")
	require.NotNil(t, got)
	assert.False(t, *got)

	assert.Nil(t, boolField(m, "str"))
	assert.Nil(t, boolField(m, "missing"))
}
