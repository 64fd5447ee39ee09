// Package colorparse converts user-supplied color strings into 8-bit RGB
// values.
//
// Two textual grammars are accepted:
//
//   - HEX: 3 or 6 hex digits with an optional leading "#", case-insensitive.
//     The 3-digit form expands each digit by duplication ("F00" -> "FF0000").
//   - RGB: three comma-separated integers in [0,255], optionally wrapped in
//     "rgb(...)" or bare parentheses, with arbitrary whitespace around the
//     components ("rgb(0, 128, 255)", "(0,128,255)", "0 , 128 , 255").
//
// A string that looks hexadecimal (all hex digits once commas are removed,
// or starting with "#") is tried as HEX first; everything else is tried as
// RGB. Inputs matching neither grammar fail with an error wrapping
// ErrInvalidFormat.
//
// Parsing is stateless and safe for concurrent use.
package colorparse
