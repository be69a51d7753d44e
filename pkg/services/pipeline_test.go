package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailedRows(t *testing.T) {
	assert.NoError(t, failedRows(0, 10))
	assert.NoError(t, failedRows(0, 0))

	err := failedRows(3, 10)
	require.Error(t, err)
	assert.EqualError(t, err, "3 of 10 row(s) failed")

	var rf *failedRowsError
	assert.ErrorAs(t, err, &rf)
}

func TestRowFailuresAbsorb(t *testing.T) {
	var tally rowFailures

	assert.True(t, tally.absorb(failedRows(2, 5)))
	assert.True(t, tally.absorb(failedRows(1, 4)))

	// Stage-fatal errors are not absorbed; they abort the sequence.
	assert.False(t, tally.absorb(errors.New("provider unreachable")))

	assert.EqualError(t, tally.err(), "3 of 9 row(s) failed")
}

func TestRowFailuresEmpty(t *testing.T) {
	var tally rowFailures
	assert.NoError(t, tally.err())
}
