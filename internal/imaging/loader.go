package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ErrUnsupportedFormat indicates image data that none of the registered
// decoders understand, or a destination whose extension maps to no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Load reads and decodes the image at path.
//
// Supported input formats are PNG, JPEG, GIF, BMP, TIFF and WebP. The
// concrete return type depends on the format and color model (e.g.
// *image.NRGBA, *image.YCbCr); callers that need per-channel access should
// normalize, as Recolor does.
//
// A missing file satisfies errors.Is(err, fs.ErrNotExist); data that cannot
// be decoded wraps ErrUnsupportedFormat.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %v", ErrUnsupportedFormat, path, err)
	}
	return img, nil
}

// Save encodes img to path, choosing the encoder from the destination
// extension. Derived output paths always carry ".png", keeping the default
// flow lossless; an explicit destination may select any encoder the codec
// library supports.
//
// An unrecognized extension is rejected before the destination is opened,
// so no file is created for it.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		if errors.Is(err, imaging.ErrUnsupportedFormat) {
			return fmt.Errorf("%w: cannot encode %s", ErrUnsupportedFormat, path)
		}
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
