package imaging

import (
	"errors"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestRecolorFile_DerivedOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeTestPNG(t, dir, 30, 30, color.NRGBA{0, 0, 0, 255})
	target := RGBColor{R: 0, G: 0, B: 255}

	saved, err := RecolorFile(input, "", target, DefaultWhiteThreshold)
	if err != nil {
		t.Fatalf("RecolorFile failed: %v", err)
	}

	want := DeriveOutputPath(input, target)
	if saved != want {
		t.Errorf("saved path: got %q, want %q", saved, want)
	}

	out, err := Load(saved)
	if err != nil {
		t.Fatalf("failed to load output: %v", err)
	}
	if out.Bounds().Dx() != 30 || out.Bounds().Dy() != 30 {
		t.Errorf("output dimensions: got %dx%d, want 30x30", out.Bounds().Dx(), out.Bounds().Dy())
	}

	r, g, b, a := out.At(15, 15).RGBA()
	if uint8(r>>8) != 0 || uint8(g>>8) != 0 || uint8(b>>8) != 255 || uint8(a>>8) != 255 {
		t.Errorf("black input should become target: got (%d,%d,%d,%d)",
			uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
	}
}

func TestRecolorFile_ExplicitOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeTestPNG(t, dir, 10, 10, color.NRGBA{100, 100, 100, 255})
	output := filepath.Join(dir, "custom.png")

	saved, err := RecolorFile(input, output, RGBColor{R: 255, G: 0, B: 0}, DefaultWhiteThreshold)
	if err != nil {
		t.Fatalf("RecolorFile failed: %v", err)
	}
	if saved != output {
		t.Errorf("saved path: got %q, want %q", saved, output)
	}
	if _, err := os.Stat(output); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestRecolorFile_MissingInput(t *testing.T) {
	_, err := RecolorFile(filepath.Join(t.TempDir(), "missing.png"), "", RGBColor{}, DefaultWhiteThreshold)
	if err == nil {
		t.Fatal("RecolorFile should fail for missing input")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v should match fs.ErrNotExist", err)
	}
}

func TestRecolorFile_BadThresholdWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := writeTestPNG(t, dir, 5, 5, color.NRGBA{0, 0, 0, 255})
	output := filepath.Join(dir, "never.png")

	_, err := RecolorFile(input, output, RGBColor{}, 300)
	if err == nil {
		t.Fatal("RecolorFile should reject threshold 300")
	}
	if !errors.Is(err, ErrThresholdRange) {
		t.Errorf("error %v should match ErrThresholdRange", err)
	}
	if _, statErr := os.Stat(output); !errors.Is(statErr, fs.ErrNotExist) {
		t.Error("no output file should exist after a failed invocation")
	}
}

func TestRecolorFile_PreservesPartialAlpha(t *testing.T) {
	dir := t.TempDir()
	input := writeTestPNG(t, dir, 6, 6, color.NRGBA{255, 0, 0, 128})

	saved, err := RecolorFile(input, "", RGBColor{R: 0, G: 0, B: 255}, DefaultWhiteThreshold)
	if err != nil {
		t.Fatalf("RecolorFile failed: %v", err)
	}

	out, err := Load(saved)
	if err != nil {
		t.Fatalf("failed to load output: %v", err)
	}
	_, _, _, a := out.At(3, 3).RGBA()
	if uint8(a>>8) != 128 {
		t.Errorf("alpha: got %d, want 128", uint8(a>>8))
	}
}
