package timefmt

import (
	"strconv"
	"strings"
)

// Time is the mutable clock accumulator. Each field holds two digits.
// An empty Hours means the hours segment is not shown.
type Time struct {
	Hours   string
	Minutes string
	Seconds string
}

// NewTime returns a zeroed clock.
func NewTime(withHours bool) *Time {
	t := &Time{}
	t.Reset(withHours)
	return t
}

// Reset zeroes the clock. Hours are kept as a segment only when withHours is set.
func (t *Time) Reset(withHours bool) {
	t.Seconds = "00"
	t.Minutes = "00"
	t.Hours = ""
	if withHours {
		t.Hours = "00"
	}
}

// Advance moves the clock forward by delta seconds and returns its string form.
// delta must not be negative; backward jumps go through Set. A seconds
// overflow carries exactly one minute, and a minutes overflow one hour.
func (t *Time) Advance(delta int) string {
	secs := atoi(t.Seconds) + delta
	if secs > 59 {
		t.Seconds = pad(secs % 60)
		if t.Minutes == "59" {
			t.Minutes = "00"
			t.Hours = pad(atoi(t.Hours) + 1)
		} else {
			t.Minutes = pad(atoi(t.Minutes) + 1)
		}
	} else {
		t.Seconds = pad(secs)
	}
	return t.String()
}

// Set parses a Format result back into the clock. A two-segment value clears
// the hours segment. Malformed input leaves the clock untouched.
func (t *Time) Set(formatted string) {
	parts := strings.Split(formatted, ":")
	switch len(parts) {
	case 3:
		t.Hours, t.Minutes, t.Seconds = parts[0], parts[1], parts[2]
	case 2:
		t.Hours, t.Minutes, t.Seconds = "", parts[0], parts[1]
	}
}

// HasHours reports whether the hours segment is shown.
func (t *Time) HasHours() bool {
	return t.Hours != ""
}

func (t *Time) String() string {
	if t.Hours != "" {
		return t.Hours + ":" + t.Minutes + ":" + t.Seconds
	}
	return t.Minutes + ":" + t.Seconds
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
