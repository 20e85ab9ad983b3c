package utils

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"valid number", "10", 10},
		{"padded", " 7 ", 7},
		{"zero", "0", 0},
		{"negative number", "-5", 0},
		{"not a number", "abc", 0},
		{"empty string", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := ParseLimit(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseList(t *testing.T) {
	t.Parallel()

	values, err := url.ParseQuery("tags=Urgent,Draft&tags=Final&tags=&type=pdf")
	require.NoError(t, err)

	assert.Equal(t, []string{"Urgent", "Draft", "Final"}, ParseList(values, "tags"))
	assert.Equal(t, []string{"pdf"}, ParseList(values, "type"))
	assert.Empty(t, ParseList(values, "category"))
}

func TestParseBool(t *testing.T) {
	t.Parallel()

	assert.True(t, ParseBool("true"))
	assert.True(t, ParseBool("1"))
	assert.False(t, ParseBool("yes"))
	assert.False(t, ParseBool(""))
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	from := ParseDate("2024-02-01", false)
	require.NotNil(t, from)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *from)

	to := ParseDate("2024-02-01", true)
	require.NotNil(t, to)
	assert.Equal(t, time.Date(2024, 2, 1, 23, 59, 59, 999999999, time.UTC), *to)

	exact := ParseDate("2024-02-01T10:30:00Z", true)
	require.NotNil(t, exact)
	assert.Equal(t, time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC), *exact)

	assert.Nil(t, ParseDate("", false))
	assert.Nil(t, ParseDate("01/02/2024", false))
}

func TestParseID(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ParseID("  "))
	assert.Equal(t, "hr", *ParseID(" hr "))
}
