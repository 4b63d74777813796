package generator

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Garlic Bread", "garlic-bread"},
		{"  Spicy   Wings  ", "spicy-wings"},
		{"Crème Brûlée", "crme-brle"},
		{"100% Beef!", "100-beef"},
		{"---", ""},
		{"", ""},
		{"already-a-slug", "already-a-slug"},
		{"Tabs\tand\nnewlines", "tabs-and-newlines"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSlugifyStable(t *testing.T) {
	a := Slugify("Chef's Specials")
	b := Slugify("Chef's Specials")
	if a != b {
		t.Errorf("same input produced %q and %q", a, b)
	}
}
