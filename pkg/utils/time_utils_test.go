package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	d, err := ParseDate("2024-02-14", madrid)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-14T00:00:00+01:00", d.Format(time.RFC3339))

	d, err = ParseDate("2024-02-14T10:00:00Z", madrid)
	require.NoError(t, err)
	assert.Equal(t, 10, d.Hour())

	_, err = ParseDate("14/02/2024", madrid)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseOptionalDate(t *testing.T) {
	d, err := ParseOptionalDate("", time.UTC)
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = ParseOptionalDate("2025-06-01", time.UTC)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, time.June, d.Month())
}

func TestDisplayNameFor(t *testing.T) {
	assert.Equal(t, "Vale", DisplayNameFor("  Vale ", "v@example.com"))
	assert.Equal(t, "v.lopez", DisplayNameFor("", "v.lopez@example.com"))
	assert.Equal(t, "noatsign", DisplayNameFor("", "noatsign"))
}
