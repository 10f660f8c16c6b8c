package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaisonCoiffure01/salon-scheduler/internal/httperr"
)

// lundi 1er janvier 2024
func monday(hour, min int) time.Time {
	return time.Date(2024, time.January, 1, hour, min, 0, 0, time.UTC)
}

func TestClampKeepsFittingDuration(t *testing.T) {
	res, err := ClampToClose(monday(10, 0), 60)

	require.NoError(t, err)
	assert.Equal(t, 60, res.DurationMin)
	assert.False(t, res.Clamped)
}

func TestClampAllowsEndExactlyAtClose(t *testing.T) {
	res, err := ClampToClose(monday(20, 0), 60)

	require.NoError(t, err)
	assert.Equal(t, 60, res.DurationMin)
	assert.False(t, res.Clamped)
}

func TestClampShortensPastClose(t *testing.T) {
	tests := []struct {
		name      string
		start     time.Time
		requested int
	}{
		{"deux heures a 20h", monday(20, 0), 120},
		{"coupe de 30min a 20h50", monday(20, 50), 30},
		{"journee entiere a 9h", monday(9, 0), 24 * 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ClampToClose(tt.start, tt.requested)

			require.NoError(t, err)
			assert.True(t, res.Clamped)
			assert.LessOrEqual(t, res.DurationMin, tt.requested)

			// la fin tombe exactement sur 21:00:00.000
			end := tt.start.Add(time.Duration(res.DurationMin) * time.Minute)
			assert.Equal(t, CloseOfDay(tt.start), end)
		})
	}
}

func TestClampCoupeAt2050YieldsTenMinutes(t *testing.T) {
	res, err := ClampToClose(monday(20, 50), 30)

	require.NoError(t, err)
	assert.Equal(t, 10, res.DurationMin)
	assert.True(t, res.Clamped)
}

func TestStartAtOrAfterCloseIsRejected(t *testing.T) {
	for _, start := range []time.Time{monday(21, 0), monday(21, 30), monday(23, 59)} {
		_, err := ClampToClose(start, 30)

		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "past_closing_time"))
	}
}

func TestNonPositiveDurationIsRejected(t *testing.T) {
	for _, minutes := range []int{0, -5} {
		_, err := ClampToClose(monday(10, 0), minutes)

		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "non_positive_duration"))
	}
}

func TestIsOpenAt(t *testing.T) {
	assert.False(t, IsOpenAt(monday(7, 59)))
	assert.True(t, IsOpenAt(monday(8, 0)))
	assert.True(t, IsOpenAt(monday(20, 59)))
	assert.False(t, IsOpenAt(monday(21, 0)))

	// dimanche fermé
	sunday := time.Date(2024, time.January, 7, 10, 0, 0, 0, time.UTC)
	assert.False(t, IsOpenAt(sunday))
}
