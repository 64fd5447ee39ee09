package imaging

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultSuffix is the token inserted between the input stem and the color
// hex digits in derived output names.
const DefaultSuffix = "recolored"

// DeriveOutputPath returns the default destination for a recolored copy of
// inputPath: "<dir>/<stem>_recolored_<rrggbb>.png", alongside the input.
// The result is deterministic for a given input path and color.
func DeriveOutputPath(inputPath string, target RGBColor) string {
	return DeriveOutputPathSuffix(inputPath, target, DefaultSuffix)
}

// DeriveOutputPathSuffix is DeriveOutputPath with a custom suffix token.
// The extension is always ".png" so the derived destination stays lossless.
func DeriveOutputPathSuffix(inputPath string, target RGBColor, suffix string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	name := fmt.Sprintf("%s_%s_%s.png", stem, suffix, target.Hex())
	return filepath.Join(filepath.Dir(inputPath), name)
}
