package canvas

import (
	"fmt"

	"github.com/gogpu/gg/text"
)

// Fonts hands out faces of one font file at the sizes text asks for.
type Fonts struct {
	source *text.FontSource
	faces  map[float64]text.Face
}

// LoadFonts reads a TrueType/OpenType font file.
func LoadFonts(path string) (*Fonts, error) {
	source, err := text.NewFontSourceFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font %s: %w", path, err)
	}
	f := new(Fonts)
	f.source = source
	f.faces = make(map[float64]text.Face)
	return f, nil
}

// Face returns the face at size, creating it on first use.
func (f *Fonts) Face(size float64) text.Face {
	face, ok := f.faces[size]
	if !ok {
		face = f.source.Face(size)
		f.faces[size] = face
	}
	return face
}

// Measure returns the width and line height of s at size. Without a font the
// size is estimated from the character count.
func (f *Fonts) Measure(s string, size float64) (w, h float64) {
	if f == nil {
		return 0.6 * size * float64(len([]rune(s))), size
	}
	return text.Measure(s, f.Face(size))
}
