// Package timefmt formats playback positions and keeps the incrementally
// updated clock shown next to the seek bar.
package timefmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unavailable is shown when a duration is not known yet.
const Unavailable = "N/A"

const (
	secondsInMinute = 60
	secondsInHour   = 60 * 60
)

// Format renders a number of seconds as HH:MM:SS, or MM:SS when the value is
// under an hour. The fractional part is dropped. NaN and infinities yield
// Unavailable.
func Format(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return Unavailable
	}
	total := int(math.Floor(seconds))
	if total < 0 {
		total = 0
	}

	hours := total / secondsInHour
	minutes := (total % secondsInHour) / secondsInMinute
	secs := total % secondsInMinute

	if hours == 0 {
		return pad(minutes) + ":" + pad(secs)
	}
	return pad(hours) + ":" + pad(minutes) + ":" + pad(secs)
}

// ParseSeconds is the inverse of Format.
func ParseSeconds(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("parse time %q: want MM:SS or HH:MM:SS", s)
	}
	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("parse time %q: %w", s, err)
		}
		total = total*60 + n
	}
	return total, nil
}

// pad zero-pads a time unit to two digits. Values of 100 or more are left as is.
func pad(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
