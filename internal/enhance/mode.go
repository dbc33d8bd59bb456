package enhance

import "fmt"

// Mode selects the tonal treatment applied to a document image.
type Mode int

const (
	// Original applies no tonal processing.
	Original Mode = iota
	// Grayscale converts to luminance only.
	Grayscale
	// Scan binarizes into a clean black-on-white photocopy look.
	Scan
	// HighContrast applies a linear contrast stretch.
	HighContrast
)

var modeNames = map[Mode]string{
	Original:     "original",
	Grayscale:    "grayscale",
	Scan:         "scan",
	HighContrast: "high-contrast",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode resolves a mode name as accepted on the command line.
// Recognized names are "original", "grayscale", "scan" and
// "high-contrast" (with "highcontrast" and "high_contrast" accepted
// as spellings of the latter).
func ParseMode(name string) (Mode, error) {
	switch name {
	case "original":
		return Original, nil
	case "grayscale", "gray":
		return Grayscale, nil
	case "scan":
		return Scan, nil
	case "high-contrast", "highcontrast", "high_contrast":
		return HighContrast, nil
	}
	return Original, fmt.Errorf("unknown enhancement mode %q", name)
}
