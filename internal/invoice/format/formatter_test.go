package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_DefaultTemplate(t *testing.T) {
	issuedAt := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	got, err := Number(DefaultNumberTemplate, issuedAt, 1)
	require.NoError(t, err)
	assert.Equal(t, "001/2024", got)

	got, err = Number(DefaultNumberTemplate, issuedAt, 42)
	require.NoError(t, err)
	assert.Equal(t, "042/2024", got)

	// Sequences wider than the pad keep all digits.
	got, err = Number(DefaultNumberTemplate, issuedAt, 1234)
	require.NoError(t, err)
	assert.Equal(t, "1234/2024", got)
}

func TestNumber_Placeholders(t *testing.T) {
	issuedAt := time.Date(2024, time.December, 9, 0, 0, 0, 0, time.UTC)

	got, err := Number("NF-{YYYY}{MM}{DD}-{SEQ5}", issuedAt, 7)
	require.NoError(t, err)
	assert.Equal(t, "NF-20241209-00007", got)

	got, err = Number("{SEQ}/{YY}", issuedAt, 7)
	require.NoError(t, err)
	assert.Equal(t, "7/24", got)
}

func TestNumber_Invalid(t *testing.T) {
	issuedAt := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	_, err := Number("", issuedAt, 1)
	assert.Error(t, err)

	_, err = Number(DefaultNumberTemplate, issuedAt, 0)
	assert.Error(t, err)
}
