package caption

import (
	"bytes"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

type Renderer interface {
	Render(img image.Image, text string, position string) ([]byte, error)
}

type captionRenderer struct {
	fontCandidates []string
	jpegQuality    int
}

func NewRenderer(fontCandidates []string, jpegQuality int) Renderer {
	return &captionRenderer{
		fontCandidates: fontCandidates,
		jpegQuality:    jpegQuality,
	}
}

// Render draws the uppercased, wrapped caption onto a copy of img and
// returns it as JPEG bytes. Position is one of top/center/bottom; anything
// unrecognized falls through to bottom. The caller validates that text is
// non-empty.
func (r *captionRenderer) Render(img image.Image, text string, position string) ([]byte, error) {
	canvas := imaging.Clone(img)
	w := canvas.Bounds().Dx()
	h := canvas.Bounds().Dy()

	fontSize := float64(w) / 12
	if fontSize < 24 {
		fontSize = 24
	}
	face := ResolveFace(r.fontCandidates, fontSize)

	stroke := int(fontSize / 12)
	if stroke < 2 {
		stroke = 2
	}

	lines := WrapText(face, strings.ToUpper(text), int(float64(w)*0.9))

	lineHeight, ascent := lineExtent(face)
	gap := lineHeight * 25 / 100

	if len(lines) > 0 {
		total := len(lines)*lineHeight + (len(lines)-1)*gap

		var y int
		switch position {
		case "top":
			y = h * 5 / 100
		case "center":
			y = (h - total) / 2
		default:
			y = h - total - h*5/100
		}

		for _, line := range lines {
			tw := measureWidth(face, line)
			x := (w - tw) / 2
			drawOutlined(canvas, face, line, x, y+ascent, stroke)
			y += lineHeight + gap
		}
	}

	var buf bytes.Buffer
	err := imaging.Encode(&buf, canvas, imaging.JPEG, imaging.JPEGQuality(r.jpegQuality))
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WrapText greedily packs words into lines whose rendered width stays
// within maxWidth. A single word wider than maxWidth gets its own line;
// there is no hyphenation or shrink-to-fit.
func WrapText(face font.Face, text string, maxWidth int) []string {
	var lines []string
	var current string

	for _, word := range strings.Fields(text) {
		trial := strings.TrimSpace(current + " " + word)
		if measureWidth(face, trial) <= maxWidth {
			current = trial
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// lineExtent returns the pixel height and ascent of the reference glyph
// pair "Ay", covering both the tallest ascender and a descender.
func lineExtent(face font.Face) (height, ascent int) {
	bounds, _ := font.BoundString(face, "Ay")
	height = (bounds.Max.Y - bounds.Min.Y).Ceil()
	ascent = (-bounds.Min.Y).Ceil()
	return height, ascent
}

func measureWidth(face font.Face, text string) int {
	return font.MeasureString(face, text).Ceil()
}

// drawOutlined draws white text with a black stroke by stamping the line
// at every offset within the stroke radius before the fill pass.
func drawOutlined(dst *image.NRGBA, face font.Face, text string, x, baseline, stroke int) {
	d := &font.Drawer{
		Dst:  dst,
		Face: face,
		Src:  image.NewUniform(color.Black),
	}

	for dx := -stroke; dx <= stroke; dx++ {
		for dy := -stroke; dy <= stroke; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			d.Dot = fixed.P(x+dx, baseline+dy)
			d.DrawString(text)
		}
	}

	d.Src = image.NewUniform(color.White)
	d.Dot = fixed.P(x, baseline)
	d.DrawString(text)
}
