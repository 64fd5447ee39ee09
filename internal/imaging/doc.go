// Package imaging implements the recolor pipeline: loading an image,
// blending its non-white pixels toward a target color, and saving the
// result.
//
// # Recolor Model
//
// Each pixel gets a recolor strength in [0,1] derived from its brightness
// (the mean of R, G and B, normalized to [0,1]). Strength is 1 at and below
// (threshold - TransitionWidth), ramps down linearly across the transition
// band, and is forced to 0 at and above the threshold, so pure white and
// near-white pixels are never touched. Each color channel is then blended
// as in*(1-strength) + target*strength. The alpha channel is copied through
// unchanged, and fully transparent pixels keep their original channels.
//
// # Lifecycle
//
// Images are read once, transformed once and written once. There is no
// caching and no in-place mutation: Recolor allocates a fresh image of the
// same dimensions as its input.
//
// # Thread Safety
//
// All operations are stateless and safe to invoke concurrently on
// independent images.
//
// # Error Handling
//
// Missing input files satisfy errors.Is(err, fs.ErrNotExist). Undecodable
// input and unencodable destinations wrap ErrUnsupportedFormat. A threshold
// outside [0,255] wraps ErrThresholdRange. Write failures are wrapped OS
// errors.
package imaging
