package shared

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateOnly(t *testing.T) {
	d, err := ParseDateOnly("2025-03-09")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-09", d.String())

	_, err = ParseDateOnly("09.03.2025")
	assert.Error(t, err)

	_, err = ParseDateOnly("not-a-date")
	assert.Error(t, err)

	// Surrounding whitespace is tolerated.
	d, err = ParseDateOnly("  2025-03-09 ")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-09", d.String())
}

func TestNewDateOnlyTruncates(t *testing.T) {
	ts := time.Date(2025, 3, 9, 17, 45, 12, 999, time.UTC)
	d := NewDateOnly(ts)

	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, 0, d.Minute())
	assert.Equal(t, "2025-03-09", d.String())
}

func TestDateOnlyBefore(t *testing.T) {
	earlier, _ := ParseDateOnly("2025-01-01")
	later, _ := ParseDateOnly("2025-01-02")

	assert.True(t, earlier.Before(later))
	assert.False(t, later.Before(earlier))
	assert.False(t, earlier.Before(earlier))
}

func TestDateOnlyJSON(t *testing.T) {
	d, _ := ParseDateOnly("2025-03-09")

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-09"`, string(data))

	var parsed DateOnly
	require.NoError(t, json.Unmarshal([]byte(`"2025-06-30"`), &parsed))
	assert.Equal(t, "2025-06-30", parsed.String())

	// null and empty reset to the zero value.
	require.NoError(t, json.Unmarshal([]byte(`null`), &parsed))
	assert.True(t, parsed.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"30/06/2025"`), &parsed))
}
