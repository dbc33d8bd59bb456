// Package pipeline chains document detection, perspective correction
// and tonal enhancement into the single Process entry point used by
// the command line front end.
package pipeline

import (
	"errors"
	"image"
	"io"
	"log/slog"

	"github.com/abhi3114-glitch/SnapNote/internal/detection"
	"github.com/abhi3114-glitch/SnapNote/internal/enhance"
	"github.com/abhi3114-glitch/SnapNote/internal/quad"
	"github.com/abhi3114-glitch/SnapNote/internal/warp"
)

// ErrUnsupportedInput is returned for nil or zero-area images.
var ErrUnsupportedInput = errors.New("unsupported input image")

// Options controls a single processing run.
type Options struct {
	// AutoCrop enables document boundary detection and perspective
	// correction before enhancement.
	AutoCrop bool
	// Mode selects the tonal treatment.
	Mode enhance.Mode
	// Logger receives progress and fallback events; nil discards them.
	Logger *slog.Logger
}

// Result carries the processed image plus what the pipeline decided
// along the way.
type Result struct {
	Image image.Image
	// Cropped reports whether a document boundary was found and the
	// perspective correction applied.
	Cropped bool
	// Quad holds the detected boundary in input coordinates when
	// Cropped is true.
	Quad quad.Quad
}

// Process runs the full document pipeline on one image.
//
// When AutoCrop is requested but no quadrilateral can be found, the
// pipeline logs the miss and enhances the full frame instead; failing
// to find a page is an expected outcome on cluttered photos, not an
// error. Degenerate geometry from the warp stage does propagate,
// since it indicates a detected boundary the caller may want to
// inspect.
func Process(img image.Image, opts Options) (*Result, error) {
	if img == nil {
		return nil, ErrUnsupportedInput
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrUnsupportedInput
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	res := &Result{Image: img}
	if opts.AutoCrop {
		q, err := detection.Locate(img)
		switch {
		case errors.Is(err, detection.ErrNoQuadrilateral):
			log.Info("no document boundary found, using full frame",
				"width", b.Dx(), "height", b.Dy())
		case err != nil:
			return nil, err
		default:
			rectified, err := warp.Rectify(img, q)
			if err != nil {
				return nil, err
			}
			res.Image = rectified
			res.Cropped = true
			res.Quad = q
			log.Info("document rectified",
				"quad", q.String(),
				"width", rectified.Bounds().Dx(),
				"height", rectified.Bounds().Dy())
		}
	}

	res.Image = enhance.Apply(res.Image, opts.Mode)
	log.Debug("enhancement applied", "mode", opts.Mode.String())
	return res, nil
}
