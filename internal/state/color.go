package state

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor resolves a color token: "#rgb", "#rrggbb", "#rrggbbaa" or an SVG
// color name. Anything else is black.
func ParseColor(token string) color.Color {
	token = strings.ToLower(strings.TrimSpace(token))
	if c, ok := colornames.Map[token]; ok {
		return c
	}
	if !strings.HasPrefix(token, "#") {
		return color.Black
	}
	hex := token[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.Black
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.Black
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}
