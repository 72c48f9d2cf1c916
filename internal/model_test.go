package internal

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{"20:00", NewTimeOfDay(20, 0), false},
		{"07:05", NewTimeOfDay(7, 5), false},
		{"00:00", 0, false},
		{"23:59", NewTimeOfDay(23, 59), false},
		{"8pm", 0, true},
		{"24:00", 0, true},
		{"", 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTimeOfDay_Formatting(t *testing.T) {
	assert.Equal(t, "21:00", NewTimeOfDay(21, 0).String())
	assert.Equal(t, "09:00 PM", NewTimeOfDay(21, 0).Clock())
	assert.Equal(t, "07:30 AM", NewTimeOfDay(7, 30).Clock())
	assert.Equal(t, "12:00 AM", NewTimeOfDay(0, 0).Clock())
}

func TestTimeOfDay_On(t *testing.T) {
	day := time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC)
	got := NewTimeOfDay(20, 15).On(day)
	assert.Equal(t, time.Date(2024, 1, 1, 20, 15, 0, 0, time.UTC), got)
}

func TestSleepEntry_JSON(t *testing.T) {
	e := SleepEntry{ID: "e1", Date: "2024-01-01", Bedtime: NewTimeOfDay(20, 0), WakeupTime: NewTimeOfDay(7, 0), NapDuration: 1.5}
	b, err := json.Marshal(e)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"bedtime":"20:00"`)
	assert.Contains(t, string(b), `"wakeup_time":"07:00"`)

	var back SleepEntry
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, e.Bedtime, back.Bedtime)
	assert.Equal(t, e.WakeupTime, back.WakeupTime)

	assert.Error(t, json.Unmarshal([]byte(`{"bedtime":"late"}`), &back))
}

func TestRecommendation_NapHours(t *testing.T) {
	assert.Equal(t, "1.5", Recommendation{NapDuration: 1.5}.NapHours())
	assert.Equal(t, "1.7", Recommendation{NapDuration: 5.0 / 3}.NapHours())
}
