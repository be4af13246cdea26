// Package age computes display ages for stored timestamps.
package age

import "time"

// AgeData returns how long ago then was, and whether then is known.
// Times in the future report a zero age.
func AgeData(then time.Time, now time.Time) (time.Duration, bool) {
	if then.IsZero() {
		return 0, false
	}
	if now.Before(then) {
		return 0, true
	}
	return now.Sub(then), true
}

// Between returns the elapsed time from start to end, and whether both are
// known. A negative span, possible after a clock change, reports zero.
func Between(start time.Time, end time.Time) (time.Duration, bool) {
	if start.IsZero() || end.IsZero() {
		return 0, false
	}
	if end.Before(start) {
		return 0, true
	}
	return end.Sub(start), true
}
