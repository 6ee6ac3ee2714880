package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	t.Parallel()

	ts := NewTimeString(time.Date(2025, 6, 10, 9, 5, 42, 0, time.UTC))
	assert.Equal(t, "09:05", ts.String())
}

func TestNewTimeStringFromString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid morning", input: "09:00"},
		{name: "valid evening", input: "18:00"},
		{name: "valid midnight", input: "00:00"},
		{name: "missing leading zero", input: "9:00", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "out of range minute", input: "10:61", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ts, err := NewTimeStringFromString(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, ts.String())
		})
	}
}

func TestTimeStringHourMinute(t *testing.T) {
	t.Parallel()

	ts := TimeString("14:45")

	hour, err := ts.Hour()
	require.NoError(t, err)
	assert.Equal(t, 14, hour)

	minute, err := ts.Minute()
	require.NoError(t, err)
	assert.Equal(t, 45, minute)
}

func TestTimeStringAddMinutes(t *testing.T) {
	t.Parallel()

	ts := TimeString("09:30")

	shifted, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, "10:15", shifted.String())

	_, err = ts.AddMinutes(-15)
	require.ErrorIs(t, err, ErrInvalidMinutes)
}

func TestTimeStringOrdering(t *testing.T) {
	t.Parallel()

	assert.True(t, TimeString("09:00").IsBefore("09:15"))
	assert.True(t, TimeString("18:00").IsAfter("17:45"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeStringIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("09:00").IsZero())
}
