package timefmt

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "00:00"},
		{0.9, "00:00"},
		{5, "00:05"},
		{59.99, "00:59"},
		{60, "01:00"},
		{100, "01:40"},
		{200, "03:20"},
		{3599, "59:59"},
		{3600, "01:00:00"},
		{3661.5, "01:01:01"},
		{36000, "10:00:00"},
		{359999, "99:59:59"},
	}
	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatUnavailable(t *testing.T) {
	for _, in := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := Format(in); got != Unavailable {
			t.Errorf("Format(%v) = %q, want %q", in, got, Unavailable)
		}
	}
	if Unavailable != "N/A" {
		t.Errorf("Unavailable = %q", Unavailable)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for s := 0; s <= 359999; s++ {
		got, err := ParseSeconds(Format(float64(s) + 0.25))
		if err != nil {
			t.Fatalf("ParseSeconds(Format(%d)): %v", s, err)
		}
		if got != s {
			t.Fatalf("ParseSeconds(Format(%d)) = %d", s, got)
		}
	}
}

func TestParseSecondsRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "12", "a:b", "1:2:3:4"} {
		if _, err := ParseSeconds(in); err == nil {
			t.Errorf("ParseSeconds(%q) returned no error", in)
		}
	}
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name  string
		start Time
		delta int
		want  string
	}{
		{"no carry", Time{Minutes: "00", Seconds: "10"}, 5, "00:15"},
		{"zero delta", Time{Minutes: "03", Seconds: "20"}, 0, "03:20"},
		{"seconds carry", Time{Minutes: "01", Seconds: "58"}, 3, "02:01"},
		{"minutes carry into hours", Time{Minutes: "59", Seconds: "59"}, 1, "01:00:00"},
		{"hours kept", Time{Hours: "02", Minutes: "10", Seconds: "59"}, 1, "02:11:00"},
		{"hours carry", Time{Hours: "09", Minutes: "59", Seconds: "30"}, 45, "10:00:15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := tt.start
			if got := tm.Advance(tt.delta); got != tt.want {
				t.Errorf("Advance(%d) = %q, want %q", tt.delta, got, tt.want)
			}
		})
	}
}

func TestAdvanceDecomposes(t *testing.T) {
	for start := 0; start < 3600-120; start += 7 {
		for d := 0; d <= 59; d++ {
			a := &Time{}
			a.Set(Format(float64(start)))
			b := *a

			for i := 0; i < d; i++ {
				a.Advance(1)
			}
			b.Advance(d)

			if a.String() != b.String() {
				t.Fatalf("start %d, d %d: stepwise %q, single %q", start, d, a.String(), b.String())
			}
			if want := Format(float64(start + d)); b.String() != want {
				t.Fatalf("start %d, d %d: got %q, want %q", start, d, b.String(), want)
			}
		}
	}
}

func TestSet(t *testing.T) {
	tm := NewTime(true)
	tm.Set("01:02:03")
	if tm.Hours != "01" || tm.Minutes != "02" || tm.Seconds != "03" {
		t.Errorf("Set three segments: %+v", *tm)
	}
	tm.Set("04:05")
	if tm.HasHours() {
		t.Errorf("Set two segments kept hours %q", tm.Hours)
	}
	if got := tm.String(); got != "04:05" {
		t.Errorf("String() = %q", got)
	}
	tm.Set("bogus")
	if got := tm.String(); got != "04:05" {
		t.Errorf("malformed Set changed clock to %q", got)
	}
}

func TestReset(t *testing.T) {
	tm := &Time{Hours: "03", Minutes: "04", Seconds: "05"}
	tm.Reset(false)
	if got := tm.String(); got != "00:00" {
		t.Errorf("Reset(false) = %q", got)
	}
	tm.Reset(true)
	if got := tm.String(); got != "00:00:00" {
		t.Errorf("Reset(true) = %q", got)
	}
}
