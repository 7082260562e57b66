package filter

import (
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/meme-generator/internal/database"
)

// tone endpoints of the sepia gradient: dark brown to light tan
var (
	sepiaDark  = color.NRGBA{R: 0x70, G: 0x42, B: 0x14, A: 0xff}
	sepiaLight = color.NRGBA{R: 0xC0, G: 0xA0, B: 0x80, A: 0xff}
)

type Engine interface {
	Apply(img image.Image, name string) (image.Image, error)
}

type filterEngine struct {
	assets database.AssetRepository
}

func NewEngine(assets database.AssetRepository) Engine {
	return &filterEngine{assets: assets}
}

// Apply runs the named transform over img. Unknown names are a no-op:
// the source image comes back unchanged, never an error.
func (e *filterEngine) Apply(img image.Image, name string) (image.Image, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	switch name {
	case "":
		return img, nil
	case "grayscale":
		return imaging.Grayscale(img), nil
	case "sepia":
		return applySepia(img), nil
	case "blur":
		return imaging.Blur(img, 3), nil
	case "bright":
		return applyBrightness(img, 1.4), nil
	case "contrast":
		return applyContrast(img, 1.8), nil
	}

	return e.applyOverlay(img, name)
}

// applyOverlay composites the named asset over the base image. The asset is
// resized to half the base width (aspect preserved) and placed at its
// name-specific anchor.
func (e *filterEngine) applyOverlay(img image.Image, name string) (image.Image, error) {
	overlay, err := e.assets.FindByName(name)
	if err != nil {
		return nil, err
	}
	if overlay == nil {
		return img, nil
	}

	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	// height 0 keeps the aspect ratio
	scaled := imaging.Resize(overlay, w/2, 0, imaging.Lanczos)

	pos := AnchorFor(name)(w, h, scaled.Bounds().Dx(), scaled.Bounds().Dy())

	return imaging.Overlay(img, scaled, pos, 1.0), nil
}

func applySepia(img image.Image) image.Image {
	gray := imaging.Grayscale(img)
	return imaging.AdjustFunc(gray, func(c color.NRGBA) color.NRGBA {
		// channels are equal after Grayscale, any one is the luminance
		t := int(c.R)
		return color.NRGBA{
			R: lerp8(sepiaDark.R, sepiaLight.R, t),
			G: lerp8(sepiaDark.G, sepiaLight.G, t),
			B: lerp8(sepiaDark.B, sepiaLight.B, t),
			A: c.A,
		}
	})
}

func applyBrightness(img image.Image, factor float64) image.Image {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: clamp8(float64(c.R) * factor),
			G: clamp8(float64(c.G) * factor),
			B: clamp8(float64(c.B) * factor),
			A: c.A,
		}
	})
}

// applyContrast scales each channel about the image's mean luminance,
// so midtones stay put while shadows and highlights spread apart.
func applyContrast(img image.Image, factor float64) image.Image {
	mean := meanLuminance(img)
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: clamp8(mean + factor*(float64(c.R)-mean)),
			G: clamp8(mean + factor*(float64(c.G)-mean)),
			B: clamp8(mean + factor*(float64(c.B)-mean)),
			A: c.A,
		}
	})
}

func meanLuminance(img image.Image) float64 {
	nrgba := imaging.Clone(img)
	bounds := nrgba.Bounds()

	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return 0
	}

	var sum float64
	for i := 0; i < len(nrgba.Pix); i += 4 {
		r := float64(nrgba.Pix[i])
		g := float64(nrgba.Pix[i+1])
		b := float64(nrgba.Pix[i+2])
		sum += 0.299*r + 0.587*g + 0.114*b
	}
	return sum / float64(total)
}

func lerp8(from, to uint8, t int) uint8 {
	return uint8(int(from) + t*(int(to)-int(from))/255)
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
