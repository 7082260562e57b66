package caption

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FaceResolver yields a font face at the requested pixel size, or an error
// when its source is unavailable.
type FaceResolver interface {
	Face(size float64) (font.Face, error)
}

// fileFaceResolver loads a TTF from disk on every call. Fonts are small
// and requests are independent, so no cache is kept.
type fileFaceResolver struct {
	path string
}

func (r fileFaceResolver) Face(size float64) (font.Face, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, err
	}

	fnt, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}

	return truetype.NewFace(fnt, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// builtinFaceResolver is the terminal resolver: it never fails, so caption
// rendering always has a face to draw with.
type builtinFaceResolver struct{}

func (builtinFaceResolver) Face(size float64) (font.Face, error) {
	return basicfont.Face7x13, nil
}

// ResolveFace walks the candidate TTF paths in order and returns the first
// face that loads. Font resolution failure is a presentation fallback, not
// an error: the built-in face is always the last candidate.
func ResolveFace(candidates []string, size float64) font.Face {
	resolvers := make([]FaceResolver, 0, len(candidates)+1)
	for _, path := range candidates {
		resolvers = append(resolvers, fileFaceResolver{path: path})
	}
	resolvers = append(resolvers, builtinFaceResolver{})

	for _, r := range resolvers {
		if face, err := r.Face(size); err == nil {
			return face
		}
	}
	return basicfont.Face7x13
}
