package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDrawDate(t *testing.T) {
	want := time.Date(2025, time.January, 14, 0, 0, 0, 0, time.UTC)
	for _, input := range []string{"2025-01-14", "14-01-2025", "14/01/2025", "14 Jan 2025", "Jan 14, 2025", " 2025-01-14 "} {
		t.Run(input, func(t *testing.T) {
			got, err := ParseDrawDate(input)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	t.Run("day first wins for ambiguous dates", func(t *testing.T) {
		got, err := ParseDrawDate("03/04/2025")
		require.NoError(t, err)
		assert.Equal(t, time.April, got.Month())
		assert.Equal(t, 3, got.Day())
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseDrawDate("next tuesday")
		assert.Error(t, err)
	})
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "14-01-2025", DisplayDate("2025-01-14"))
	assert.Equal(t, "soon", DisplayDate("soon"))
}

func TestParseLooseBool(t *testing.T) {
	for _, v := range []string{"yes", "Y", "TRUE", "1", " true "} {
		assert.True(t, ParseLooseBool(v), v)
	}
	for _, v := range []string{"", "no", "0", "false", "maybe"} {
		assert.False(t, ParseLooseBool(v), v)
	}
}
