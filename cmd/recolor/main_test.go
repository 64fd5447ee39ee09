package main

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/recolor/internal/colorparse"
	"github.com/ironsheep/recolor/internal/imaging"
)

// writeInputPNG creates a small black input image and returns its path
func writeInputPNG(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{A: 255})
		}
	}

	path := filepath.Join(dir, "input.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create input: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode input: %v", err)
	}
	return path
}

func TestRun_MissingArguments(t *testing.T) {
	for _, args := range [][]string{{}, {"only-one"}} {
		if _, err := run(args); err == nil {
			t.Errorf("run(%v) should fail", args)
		}
	}
}

func TestRun_InvalidColor(t *testing.T) {
	dir := t.TempDir()
	input := writeInputPNG(t, dir)

	_, err := run([]string{input, "not_a_color"})
	if err == nil {
		t.Fatal("run should fail for an invalid color")
	}
	if !errors.Is(err, colorparse.ErrInvalidFormat) {
		t.Errorf("error %v should match colorparse.ErrInvalidFormat", err)
	}
}

func TestRun_ExplicitOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeInputPNG(t, dir)
	output := filepath.Join(dir, "out.png")

	saved, err := run([]string{"-o", output, input, "#0000FF"})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if saved != output {
		t.Errorf("saved path: got %q, want %q", saved, output)
	}
	if _, err := os.Stat(output); err != nil {
		t.Errorf("output missing: %v", err)
	}
}

func TestRun_OptionsAfterPositionals(t *testing.T) {
	dir := t.TempDir()
	input := writeInputPNG(t, dir)
	output := filepath.Join(dir, "after.png")

	saved, err := run([]string{input, "00f", "--output", output})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if saved != output {
		t.Errorf("saved path: got %q, want %q", saved, output)
	}
}

func TestRun_ThresholdOutOfRange(t *testing.T) {
	dir := t.TempDir()
	input := writeInputPNG(t, dir)

	_, err := run([]string{"-w", "400", input, "#FF0000"})
	if err == nil {
		t.Fatal("run should reject threshold 400")
	}
	if !errors.Is(err, imaging.ErrThresholdRange) {
		t.Errorf("error %v should match imaging.ErrThresholdRange", err)
	}
}

func TestRun_ConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	input := writeInputPNG(t, dir)

	cfgPath := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfgPath, []byte("suffix = \"branded\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	saved, err := run([]string{"-c", cfgPath, input, "#00FF00"})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	want := filepath.Join(dir, "input_branded_00ff00.png")
	if saved != want {
		t.Errorf("saved path: got %q, want %q", saved, want)
	}
}
