//go:build unit

package pharmacy_test

import (
	"testing"

	"phantom-mask/internal/domain/pharmacy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in      string
		want    pharmacy.Weekday
		wantErr bool
	}{
		{in: "Mon", want: pharmacy.Monday},
		{in: "thur", want: pharmacy.Thursday},
		{in: "Thu", want: pharmacy.Thursday},
		{in: "Sunday", want: pharmacy.Sunday},
		{in: " Sat ", want: pharmacy.Saturday},
		{in: "Funday", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := pharmacy.ParseWeekday(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, pharmacy.ErrInvalidWeekday)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeekdayOrder(t *testing.T) {
	assert.Less(t, pharmacy.Monday.Order(), pharmacy.Thursday.Order())
	assert.Less(t, pharmacy.Saturday.Order(), pharmacy.Sunday.Order())
	assert.False(t, pharmacy.Weekday("Thu").IsValid())
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "08:00", want: "08:00"},
		{in: "23:59:59", want: "23:59"},
		{in: "24:00", want: "00:00"},
		{in: "24:00:00", want: "00:00"},
		{in: "25:00", wantErr: true},
		{in: "8:00", wantErr: true},
		{in: "noon", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := pharmacy.ParseTimeOfDay(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, pharmacy.ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}

	assert.True(t, pharmacy.MustTimeOfDay("08:00").Before(pharmacy.MustTimeOfDay("08:01")))
	assert.Panics(t, func() { pharmacy.MustTimeOfDay("bogus") })
}

func TestParseSchedule(t *testing.T) {
	t.Run("fixture format", func(t *testing.T) {
		shifts, err := pharmacy.ParseSchedule("Mon 08:00 - 12:00, Tue 14:00 - 18:00 / Thur 20:00 - 24:00")

		require.NoError(t, err)
		want := []pharmacy.Shift{
			{Weekday: pharmacy.Monday, Start: pharmacy.MustTimeOfDay("08:00"), End: pharmacy.MustTimeOfDay("12:00")},
			{Weekday: pharmacy.Tuesday, Start: pharmacy.MustTimeOfDay("14:00"), End: pharmacy.MustTimeOfDay("18:00")},
			{Weekday: pharmacy.Thursday, Start: pharmacy.MustTimeOfDay("20:00"), End: pharmacy.MustTimeOfDay("00:00")},
		}
		assert.Equal(t, want, shifts)
	})

	t.Run("blank schedule", func(t *testing.T) {
		shifts, err := pharmacy.ParseSchedule("  ")
		require.NoError(t, err)
		assert.Empty(t, shifts)
	})

	t.Run("no entries", func(t *testing.T) {
		_, err := pharmacy.ParseSchedule("open on weekdays")
		require.ErrorIs(t, err, pharmacy.ErrInvalidSchedule)
	})

	t.Run("unknown weekday", func(t *testing.T) {
		_, err := pharmacy.ParseSchedule("Mon 08:00 - 12:00, Xyz 08:00 - 12:00")
		require.ErrorIs(t, err, pharmacy.ErrInvalidWeekday)
		assert.Contains(t, err.Error(), "Xyz 08:00 - 12:00")
	})

	t.Run("out of range time", func(t *testing.T) {
		_, err := pharmacy.ParseSchedule("Mon 08:00 - 25:00")
		require.ErrorIs(t, err, pharmacy.ErrInvalidTimeOfDay)
	})
}
