package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/recolor/internal/colorparse"
	"github.com/ironsheep/recolor/internal/config"
	"github.com/ironsheep/recolor/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and --help flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("recolor %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		}
	}

	// Logging goes to stderr; stdout carries only the saved path
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	saved, err := run(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Recoloring complete! Saved to: %s\n", saved)
}

// run executes one recolor invocation and returns the saved output path.
func run(args []string) (string, error) {
	fs := flag.NewFlagSet("recolor", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = printUsage

	var (
		outputPath string
		threshold  int
		configPath string
	)
	fs.StringVar(&outputPath, "o", "", "output file path")
	fs.StringVar(&outputPath, "output", "", "output file path")
	fs.IntVar(&threshold, "w", imaging.DefaultWhiteThreshold, "white threshold (0-255)")
	fs.IntVar(&threshold, "white-threshold", imaging.DefaultWhiteThreshold, "white threshold (0-255)")
	fs.StringVar(&configPath, "c", "", "TOML defaults file")
	fs.StringVar(&configPath, "config", "", "TOML defaults file")

	// flag stops at the first positional argument; re-parse the remainder
	// so options may also appear after the input file and color
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return "", err
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
	if len(positional) != 2 {
		fs.Usage()
		return "", fmt.Errorf("expected 2 arguments (input file and color), got %d", len(positional))
	}
	inputPath := positional[0]
	colorSpec := positional[1]

	var (
		cfg config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return "", err
	}

	// An explicit -w flag beats the config default
	thresholdSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "w" || f.Name == "white-threshold" {
			thresholdSet = true
		}
	})
	if !thresholdSet {
		threshold = cfg.Threshold
	}

	target, err := colorparse.Parse(colorSpec)
	if err != nil {
		return "", err
	}

	if outputPath == "" {
		outputPath = imaging.DeriveOutputPathSuffix(inputPath, target, cfg.Suffix)
	}
	return imaging.RecolorFile(inputPath, outputPath, target, threshold)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "recolor - blend the non-white pixels of an image toward a target color")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage: recolor [options] <input-file> <color>")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Arguments:")
	fmt.Fprintln(os.Stderr, "  input-file                Path to the source image (PNG, JPEG, GIF, BMP, TIFF, WebP)")
	fmt.Fprintln(os.Stderr, "  color                     Target color in HEX (#00FF00) or RGB (0,255,0)")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  -o, --output PATH         Output file path (default: derived from input and color)")
	fmt.Fprintln(os.Stderr, "  -w, --white-threshold N   Brightness at and above which pixels stay untouched (default: 250)")
	fmt.Fprintln(os.Stderr, "  -c, --config PATH         TOML defaults file")
	fmt.Fprintln(os.Stderr, "  --version, -v             Print version information")
	fmt.Fprintln(os.Stderr, "  --help, -h                Print this help message")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  recolor logo.png \"#00FF00\"")
	fmt.Fprintln(os.Stderr, "  recolor logo.png \"rgb(0, 128, 255)\" --output blue_logo.png")
	fmt.Fprintln(os.Stderr, "  recolor logo.png F00 -w 250")
}
