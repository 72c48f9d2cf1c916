package internal

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used for entry dates.
const DateLayout = "2006-01-02"

// TimeOfDay is a wall-clock time stored as an offset from midnight.
type TimeOfDay time.Duration

const (
	timeOfDayLayout = "15:04"
	clockLayout     = "03:04 PM"
)

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// ParseTimeOfDay parses a 24-hour "HH:MM" value as submitted by an HTML time input.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return 0, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	return NewTimeOfDay(t.Hour(), t.Minute()), nil
}

// On places the time of day on the given calendar date.
func (t TimeOfDay) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, date.Location()).Add(time.Duration(t))
}

func (t TimeOfDay) String() string {
	return t.On(time.Time{}).Format(timeOfDayLayout)
}

// Clock renders the time on a 12-hour clock, e.g. "09:00 PM".
func (t TimeOfDay) Clock() string {
	return t.On(time.Time{}).Format(clockLayout)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

type SleepEntry struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Bedtime     TimeOfDay `json:"bedtime"`
	WakeupTime  TimeOfDay `json:"wakeup_time"`
	NapDuration float64   `json:"nap_duration"` // hours
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

type MilestoneEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Recommendation is the averaged sleep plan derived from a sleep log.
type Recommendation struct {
	Bedtime     TimeOfDay `json:"recommended_bedtime"`
	Wakeup      TimeOfDay `json:"recommended_wakeup"`
	NapDuration float64   `json:"recommended_nap_duration"`
	EntryCount  int       `json:"entry_count"`

	// Set when the averaged times range over more than 12 hours, which is
	// how entries on both sides of midnight show up. The mean is still the
	// plain arithmetic mean.
	BedtimeSpansMidnight bool `json:"bedtime_spans_midnight"`
	WakeupSpansMidnight  bool `json:"wakeup_spans_midnight"`
}

// NapHours renders the nap duration with one decimal place.
func (r Recommendation) NapHours() string {
	return fmt.Sprintf("%.1f", r.NapDuration)
}
