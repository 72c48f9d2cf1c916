package service

import (
	"time"

	"github.com/mukundan1989/baebyzleep/internal"
)

// NoSleepDataMessage is shown in place of a sleep plan when nothing has been logged.
const NoSleepDataMessage = "No sleep data available. Please log some sleep entries first."

// ComputeRecommendation averages bedtime, wakeup time and nap duration over
// entries. ok is false when entries is empty.
//
// Times of day are averaged as offsets since midnight, so values
// on both sides of midnight pull the mean toward noon. The SpansMidnight
// flags report when that may have happened; the mean itself is left as is.
func ComputeRecommendation(entries []internal.SleepEntry) (rec internal.Recommendation, ok bool) {
	if len(entries) == 0 {
		return internal.Recommendation{}, false
	}

	bedtimes := make([]internal.TimeOfDay, len(entries))
	wakeups := make([]internal.TimeOfDay, len(entries))
	var napTotal float64
	for i, e := range entries {
		bedtimes[i] = e.Bedtime
		wakeups[i] = e.WakeupTime
		napTotal += e.NapDuration
	}

	rec.EntryCount = len(entries)
	rec.Bedtime, rec.BedtimeSpansMidnight = meanTimeOfDay(bedtimes)
	rec.Wakeup, rec.WakeupSpansMidnight = meanTimeOfDay(wakeups)
	rec.NapDuration = napTotal / float64(len(entries))
	return rec, true
}

// meanTimeOfDay sums offsets of under 24h each; int64 nanoseconds hold about
// 100k of them, far more than one session logs.
func meanTimeOfDay(values []internal.TimeOfDay) (internal.TimeOfDay, bool) {
	var sum time.Duration
	earliest, latest := values[0], values[0]
	for _, v := range values {
		sum += time.Duration(v)
		if v < earliest {
			earliest = v
		}
		if v > latest {
			latest = v
		}
	}
	mean := (sum / time.Duration(len(values))).Truncate(time.Second)
	return internal.TimeOfDay(mean), time.Duration(latest-earliest) > 12*time.Hour
}
