package ui

import "testing"

func TestThemeByName(t *testing.T) {
	tests := []struct {
		name    string
		want    Theme
		wantErr bool
	}{
		{"", Dark, false},
		{"dark", Dark, false},
		{"purple", Purple, false},
		{"white", White, false},
		{"neon", Theme{}, true},
	}
	for _, tt := range tests {
		got, err := ThemeByName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ThemeByName(%q) error = %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ThemeByName(%q) returned the wrong palette", tt.name)
		}
	}
}

func TestEllipsize(t *testing.T) {
	tests := []struct {
		in    string
		width float64
		want  string
	}{
		{"Song", 70, "Song"},
		{"A very long title", 70, "A very ..."},
		{"abcdef", 21, "abc"},
		{"abcdef", 0, ""},
	}
	for _, tt := range tests {
		if got := Ellipsize(tt.in, tt.width); got != tt.want {
			t.Errorf("Ellipsize(%q, %v) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestClampPercent(t *testing.T) {
	for in, want := range map[float64]float64{-5: 0, 0: 0, 42.5: 42.5, 100: 100, 130: 100} {
		if got := clampPercent(in); got != want {
			t.Errorf("clampPercent(%v) = %v, want %v", in, got, want)
		}
	}
}
