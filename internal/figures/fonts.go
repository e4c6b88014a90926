package figures

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logging "frontier-report/internal/infra/log"

	"github.com/golang/freetype/truetype"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Serif faces first, then common sans faces. Collections (.ttc) are not
// readable by truetype and are left out.
var defaultFontPaths = []string{
	"etc/fonts/DejaVuSerif.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSerif.ttf",
	"/usr/share/fonts/dejavu/DejaVuSerif.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSerif-Regular.ttf",
	"/usr/share/fonts/liberation-serif/LiberationSerif-Regular.ttf",
	"/Library/Fonts/Times New Roman.ttf",
	"/System/Library/Fonts/Supplemental/Times New Roman.ttf",
	"~/Library/Fonts/DejaVuSerif.ttf",
	"C:/Windows/Fonts/times.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
}

// FontBook owns one parsed font and hands out faces per point size.
type FontBook struct {
	font   *truetype.Font
	source string
	dpi    float64
	faces  map[float64]font.Face
}

// LoadFontBook tries extra paths, then the defaults, and finally falls back
// to the embedded Go Regular font, so it only fails if that font is corrupt.
func LoadFontBook(extra []string, dpi float64) (*FontBook, error) {
	paths := append(append([]string{}, extra...), defaultFontPaths...)

	for _, p := range paths {
		expanded := expandPath(p)
		data, err := os.ReadFile(expanded)
		if err != nil {
			continue
		}
		f, err := truetype.Parse(data)
		if err != nil {
			logging.LogWarn("Font file exists but failed to parse",
				zap.String("path", expanded),
				zap.Error(err))
			continue
		}
		logging.LogInfo("Loaded font", zap.String("path", expanded), zap.Int("size", len(data)))
		return newFontBook(f, expanded, dpi), nil
	}

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded font: %w", err)
	}
	logging.LogInfo("No system font found, using embedded Go Regular",
		zap.Int("paths_checked", len(paths)))
	return newFontBook(f, "goregular", dpi), nil
}

func newFontBook(f *truetype.Font, source string, dpi float64) *FontBook {
	return &FontBook{font: f, source: source, dpi: dpi, faces: make(map[float64]font.Face)}
}

// Face returns a face for size in points at the book's resolution.
func (b *FontBook) Face(size float64) font.Face {
	if face, ok := b.faces[size]; ok {
		return face
	}
	face := truetype.NewFace(b.font, &truetype.Options{
		Size:    size,
		DPI:     b.dpi,
		Hinting: font.HintingNone,
	})
	b.faces[size] = face
	return face
}

func (b *FontBook) Source() string { return b.source }

func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
