package colorparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/recolor/internal/imaging"
)

// ErrInvalidFormat indicates a color string matching neither the HEX nor
// the RGB grammar, or an RGB component outside [0,255].
var ErrInvalidFormat = errors.New("invalid color format")

// ErrInvalidHexDigits indicates a HEX string with the wrong digit count
// (not 3 or 6) or non-hex characters. It is a specialization of
// ErrInvalidFormat: errors.Is(err, ErrInvalidFormat) also holds.
var ErrInvalidHexDigits = fmt.Errorf("%w: invalid hex digits", ErrInvalidFormat)

// Parse converts a color string into an 8-bit RGB color.
//
// A string that starts with "#", or consists solely of hex digits once
// commas are removed, is tried as HEX first; anything else is tried as the
// RGB textual form. When both interpretations fail the returned error names
// the offending input and wraps ErrInvalidFormat (and ErrInvalidHexDigits
// when the HEX interpretation was attempted).
func Parse(input string) (imaging.RGBColor, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if s == "" {
		return imaging.RGBColor{}, fmt.Errorf("%w: empty string", ErrInvalidFormat)
	}

	var hexErr error
	if strings.HasPrefix(s, "#") || isHexDigits(s) {
		c, err := parseHex(s)
		if err == nil {
			return c, nil
		}
		hexErr = err
	}

	if c, err := parseRGB(s); err == nil {
		return c, nil
	}

	if hexErr != nil {
		return imaging.RGBColor{}, hexErr
	}
	return imaging.RGBColor{}, fmt.Errorf("%w: %q (use HEX like #FF0000 or RGB like 255,0,0)", ErrInvalidFormat, input)
}

// isHexDigits reports whether s contains only hex digits, ignoring commas.
// Commas are ignored so that comma-separated decimal forms like "255,0,0"
// fall through to the RGB grammar via the length check in parseHex.
func isHexDigits(s string) bool {
	for _, r := range s {
		if r == ',' {
			continue
		}
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}

// parseHex parses a 3- or 6-digit hex color with optional leading "#".
// The 3-digit form expands each digit by duplication before decoding.
func parseHex(s string) (imaging.RGBColor, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	}
	if len(h) != 6 {
		return imaging.RGBColor{}, fmt.Errorf("%w: %q is not 3 or 6 digits", ErrInvalidHexDigits, s)
	}

	c, err := colorful.Hex("#" + h)
	if err != nil {
		return imaging.RGBColor{}, fmt.Errorf("%w: %q", ErrInvalidHexDigits, s)
	}
	r, g, b := c.RGB255()
	return imaging.RGBColor{R: r, G: g, B: b}, nil
}

// parseRGB parses the textual RGB forms "rgb(r,g,b)", "(r,g,b)" and
// "r,g,b", tolerating whitespace around the components.
func parseRGB(s string) (imaging.RGBColor, error) {
	cleaned := strings.NewReplacer("rgb", "", "(", "", ")", "", " ", "", "\t", "").Replace(s)
	parts := strings.Split(cleaned, ",")
	if len(parts) != 3 {
		return imaging.RGBColor{}, fmt.Errorf("%w: %q needs 3 comma-separated components", ErrInvalidFormat, s)
	}

	var vals [3]uint8
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return imaging.RGBColor{}, fmt.Errorf("%w: %q component %q is not an integer", ErrInvalidFormat, s, p)
		}
		if n < 0 || n > 255 {
			return imaging.RGBColor{}, fmt.Errorf("%w: %q component %d out of range [0,255]", ErrInvalidFormat, s, n)
		}
		vals[i] = uint8(n)
	}
	return imaging.RGBColor{R: vals[0], G: vals[1], B: vals[2]}, nil
}
