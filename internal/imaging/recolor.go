package imaging

import (
	"errors"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"
)

// DefaultWhiteThreshold is the brightness value (0-255) at and above which
// a pixel is treated as white and left unchanged.
const DefaultWhiteThreshold = 250

// TransitionWidth is the width of the recolor transition band on the
// normalized [0,1] brightness scale. Recolor strength ramps linearly from 1
// at (threshold - TransitionWidth) down to 0 at the threshold.
const TransitionWidth = 0.6

// ErrThresholdRange indicates a white threshold outside [0,255].
var ErrThresholdRange = errors.New("white threshold out of range")

// Recolor blends the non-white pixels of img toward target and returns the
// result as a new image. The input is never modified.
//
// Parameters:
//   - img: Source image in any registered color model; it is normalized to
//     8-bit non-premultiplied RGBA before the per-channel math.
//   - target: The color non-white pixels are driven toward.
//   - threshold: Brightness (0-255) at and above which a pixel counts as
//     white. Values outside [0,255] are rejected with ErrThresholdRange.
//
// Returns an image with the same dimensions as img. The alpha channel is
// copied through pixel-for-pixel, and fully transparent pixels keep their
// original color channels.
//
// # Algorithm
//
// For each pixel with alpha > 0:
//
//  1. brightness = (R+G+B)/3, normalized to [0,1]
//  2. distance = (brightness - (t - TransitionWidth)) / TransitionWidth,
//     clamped to [0,1], where t is the normalized threshold
//  3. strength = 1 - distance, forced to 0 when brightness >= t
//  4. each channel becomes in*(1-strength) + target*strength
//
// The transition start t - TransitionWidth goes negative for thresholds
// below TransitionWidth*255; the clamp in step 2 absorbs that, leaving
// every pixel at full strength below the band.
//
// Recolor retains no state and is safe to call concurrently on independent
// images.
func Recolor(img image.Image, target RGBColor, threshold int) (*image.NRGBA, error) {
	if threshold < 0 || threshold > 255 {
		return nil, fmt.Errorf("%w: %d not in [0,255]", ErrThresholdRange, threshold)
	}

	src := imaging.Clone(img)
	width := src.Rect.Dx()
	height := src.Rect.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, width, height))

	t := float64(threshold) / 255.0
	transitionStart := t - TransitionWidth

	parallel.Line(height, func(rowStart, rowEnd int) {
		for y := rowStart; y < rowEnd; y++ {
			i := y * src.Stride
			for x := 0; x < width; x++ {
				r := src.Pix[i]
				g := src.Pix[i+1]
				b := src.Pix[i+2]
				a := src.Pix[i+3]
				out.Pix[i+3] = a

				if a == 0 {
					// Invisible pixels contribute nothing; keep their
					// original channels rather than blending.
					out.Pix[i] = r
					out.Pix[i+1] = g
					out.Pix[i+2] = b
					i += 4
					continue
				}

				brightness := (float64(r) + float64(g) + float64(b)) / 3.0 / 255.0
				distance := clampFloat((brightness-transitionStart)/TransitionWidth, 0, 1)
				strength := 1.0 - distance
				if brightness >= t {
					strength = 0
				}

				out.Pix[i] = blendChannel(r, target.R, strength)
				out.Pix[i+1] = blendChannel(g, target.G, strength)
				out.Pix[i+2] = blendChannel(b, target.B, strength)
				i += 4
			}
		}
	})

	return out, nil
}

// blendChannel mixes one 8-bit channel toward target by strength, clamping
// to [0,255] and truncating to an integer.
func blendChannel(in, target uint8, strength float64) uint8 {
	v := float64(in)*(1.0-strength) + float64(target)*strength
	return uint8(clampFloat(v, 0, 255))
}

// clampFloat constrains v to the range [min, max].
func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// RecolorFile runs the complete load -> recolor -> save workflow for a
// single file and returns the path the result was written to.
//
// When outputPath is empty a deterministic destination is derived from the
// input name and the target color (see DeriveOutputPath). Errors from any
// stage are returned eagerly; the workflow produces either one complete
// output file or none.
func RecolorFile(inputPath, outputPath string, target RGBColor, threshold int) (string, error) {
	img, err := Load(inputPath)
	if err != nil {
		return "", err
	}

	result, err := Recolor(img, target, threshold)
	if err != nil {
		return "", err
	}

	if outputPath == "" {
		outputPath = DeriveOutputPath(inputPath, target)
	}
	if err := Save(result, outputPath); err != nil {
		return "", err
	}
	return outputPath, nil
}
