package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhi3114-glitch/SnapNote/internal/detection"
	"github.com/abhi3114-glitch/SnapNote/internal/enhance"
	"github.com/abhi3114-glitch/SnapNote/internal/export"
	"github.com/abhi3114-glitch/SnapNote/internal/pipeline"
	"github.com/abhi3114-glitch/SnapNote/internal/raster"
)

var processCmd = &cobra.Command{
	Use:   "process [files or directories]",
	Short: "Process document photos into clean scans",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runProcess,
}

func init() {
	processCmd.Flags().String("mode", "scan", "Enhancement mode (original, grayscale, scan, high-contrast)")
	processCmd.Flags().Bool("auto-crop", false, "Detect the document boundary and correct perspective")
	processCmd.Flags().StringP("output-dir", "o", "", "Directory for processed images (default: alongside input)")
	processCmd.Flags().Bool("pdf", false, "Also export each result as a single-page A4 PDF")
	processCmd.Flags().Bool("overlay", false, "Write a debug image showing the detected boundary")
	processCmd.Flags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	modeName, _ := cmd.Flags().GetString("mode")
	autoCrop, _ := cmd.Flags().GetBool("auto-crop")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	writePDF, _ := cmd.Flags().GetBool("pdf")
	writeOverlay, _ := cmd.Flags().GetBool("overlay")
	verbose, _ := cmd.Flags().GetBool("verbose")

	mode, err := enhance.ParseMode(modeName)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	inputs, err := expandInputs(args)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no image files found in the given arguments")
	}

	cache := raster.NewCache()
	opts := pipeline.Options{AutoCrop: autoCrop, Mode: mode, Logger: logger}

	failed := 0
	total := len(inputs)
	for i, path := range inputs {
		if err := processOne(path, outputDir, opts, writePDF, writeOverlay, cache); err != nil {
			fmt.Fprintf(os.Stderr, "[%d/%d] WARNING: skipping %s: %v\n", i+1, total, path, err)
			failed++
			continue
		}
		fmt.Printf("[%d/%d] processed %s\n", i+1, total, filepath.Base(path))
	}
	if failed == total {
		return fmt.Errorf("all %d inputs failed", total)
	}
	return nil
}

func processOne(path, outputDir string, opts pipeline.Options, writePDF, writeOverlay bool, cache *raster.Cache) error {
	img, err := cache.Load(path)
	if err != nil {
		return err
	}

	res, err := pipeline.Process(img, opts)
	if err != nil {
		return err
	}

	outBase := outputPath(path, outputDir)
	if err := raster.Save(res.Image, outBase+"_processed.png"); err != nil {
		return err
	}
	if writePDF {
		if err := export.ToPDF(res.Image, outBase+"_processed.pdf"); err != nil {
			return err
		}
	}
	if writeOverlay && res.Cropped {
		overlay := detection.Overlay(img, res.Quad)
		if err := raster.Save(overlay, outBase+"_boundary.png"); err != nil {
			return err
		}
	}

	cache.Evict(path)
	return nil
}

// outputPath computes the extension-free output base for an input
// file, honoring --output-dir when set.
func outputPath(input, outputDir string) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	if outputDir == "" {
		return filepath.Join(filepath.Dir(input), base)
	}
	return filepath.Join(outputDir, base)
}

// expandInputs flattens file and directory arguments into a list of
// image files. Directories are scanned one level deep.
func expandInputs(args []string) ([]string, error) {
	var inputs []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			inputs = append(inputs, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if isImageFile(e.Name()) {
				inputs = append(inputs, filepath.Join(arg, e.Name()))
			}
		}
	}
	return inputs, nil
}

func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp":
		return true
	}
	return false
}
