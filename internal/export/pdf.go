// Package export writes processed document images to their final
// output formats.
package export

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/abhi3114-glitch/SnapNote/internal/raster"
)

// importLayout centers the page image on A4 at 90% of the sheet,
// which leaves roughly a 28pt margin on the constrained axis.
const importLayout = "form:A4, pos:c, sc:.9 rel"

// ToPDF writes img as a single-page A4 PDF at path. The image is
// staged as a temporary PNG because the PDF importer consumes files.
func ToPDF(img image.Image, path string) error {
	tmp, err := os.CreateTemp("", "snapnote-page-*.png")
	if err != nil {
		return fmt.Errorf("staging page image: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := raster.Save(img, tmpPath); err != nil {
		return fmt.Errorf("staging page image: %w", err)
	}

	imp, err := pdfcpu.ParseImportDetails(importLayout, types.POINTS)
	if err != nil {
		return fmt.Errorf("pdf page layout: %w", err)
	}
	conf := model.NewDefaultConfiguration()

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := api.ImportImagesFile([]string{tmpPath}, path, imp, conf); err != nil {
		return fmt.Errorf("writing pdf %s: %w", path, err)
	}
	return nil
}
