package generator

import (
	"fmt"
	"strconv"
	"strings"
)

// AdjustColor lightens (positive percent) or darkens (negative percent)
// a hex color by scaling each RGB channel relative to its own value and
// clamping to [0,255]. Anything that is not a 3- or 6-digit hex color —
// named CSS colors, rgb() expressions, garbage — passes through
// unchanged so generation never fails on a color value.
func AdjustColor(color string, percent float64) string {
	hex, ok := normalizeHex(color)
	if !ok {
		return color
	}

	var out strings.Builder
	out.WriteByte('#')
	for i := 0; i < 6; i += 2 {
		c, err := strconv.ParseUint(hex[i:i+2], 16, 8)
		if err != nil {
			return color
		}
		scaled := float64(c) * (100 + percent) / 100
		if scaled < 0 {
			scaled = 0
		}
		if scaled > 255 {
			scaled = 255
		}
		fmt.Fprintf(&out, "%02x", int(scaled))
	}
	return out.String()
}

// normalizeHex returns the 6 hex digits of a #rgb or #rrggbb color.
func normalizeHex(color string) (string, bool) {
	s := strings.TrimPrefix(strings.TrimSpace(color), "#")
	if s == color {
		return "", false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return "", false
		}
	}
	switch len(s) {
	case 3:
		var b strings.Builder
		for _, r := range s {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		return b.String(), true
	case 6:
		return s, true
	default:
		return "", false
	}
}
