package intervention

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intervia/internal/shared/biztime"
)

// Wednesday 26 August 2026, mid-afternoon.
func presetNow() time.Time {
	return time.Date(2026, time.August, 26, 15, 30, 0, 0, biztime.Location())
}

func TestResolvePreset(t *testing.T) {
	now := presetNow()

	tests := []struct {
		preset    string
		wantStart string
		wantEnd   string
	}{
		{"today", "26/08/2026", "26/08/2026"},
		{"yesterday", "25/08/2026", "25/08/2026"},
		{"this-week", "24/08/2026", "30/08/2026"},
		{"last-week", "17/08/2026", "23/08/2026"},
		{"this-month", "01/08/2026", "31/08/2026"},
		{"last-month", "01/07/2026", "31/07/2026"},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			r, err := ResolvePreset(tt.preset, now)
			require.NoError(t, err)
			start, end := r.StorageStrings()
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}

	_, err := ResolvePreset("next-year", now)
	assert.Error(t, err)
}

func TestDateRange_InputStrings(t *testing.T) {
	r, err := ResolvePreset("this-week", presetNow())
	require.NoError(t, err)

	start, end := r.InputStrings()
	assert.Equal(t, "2026-08-24", start)
	assert.Equal(t, "2026-08-30", end)
}

func TestParseDateFilter(t *testing.T) {
	t.Run("single storage-format date", func(t *testing.T) {
		r, err := ParseDateFilter("26/08/2026")
		require.NoError(t, err)
		assert.Equal(t, r.Start, r.End)
		start, _ := r.StorageStrings()
		assert.Equal(t, "26/08/2026", start)
	})

	t.Run("single input-format date", func(t *testing.T) {
		r, err := ParseDateFilter("2026-08-26")
		require.NoError(t, err)
		start, _ := r.StorageStrings()
		assert.Equal(t, "26/08/2026", start)
	})

	t.Run("range", func(t *testing.T) {
		r, err := ParseDateFilter("24/08/2026 - 30/08/2026")
		require.NoError(t, err)
		start, end := r.StorageStrings()
		assert.Equal(t, "24/08/2026", start)
		assert.Equal(t, "30/08/2026", end)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		_, err := ParseDateFilter("30/08/2026 - 24/08/2026")
		assert.Error(t, err)
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := ParseDateFilter("pas une date")
		assert.Error(t, err)
		_, err = ParseDateFilter("")
		assert.Error(t, err)
	})
}
