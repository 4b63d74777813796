package generator

import "testing"

func TestAdjustColor(t *testing.T) {
	tests := []struct {
		name    string
		color   string
		percent float64
		want    string
	}{
		{"darken", "#808080", -50, "#404040"},
		{"lighten", "#808080", 50, "#c0c0c0"},
		{"clamp high", "#ffffff", 50, "#ffffff"},
		{"clamp low", "#000000", -50, "#000000"},
		{"short form", "#fff", -50, "#7f7f7f"},
		{"zero percent", "#1a2b3c", 0, "#1a2b3c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdjustColor(tt.color, tt.percent); got != tt.want {
				t.Errorf("AdjustColor(%q, %v) = %q, want %q", tt.color, tt.percent, got, tt.want)
			}
		})
	}
}

func TestAdjustColorPassthrough(t *testing.T) {
	// Non-hex values pass through untouched so generation never fails
	// on a color.
	for _, c := range []string{"red", "rgb(1,2,3)", "", "#12345", "#gggggg", "not a color"} {
		if got := AdjustColor(c, -15); got != c {
			t.Errorf("AdjustColor(%q) = %q, want passthrough", c, got)
		}
	}
}
