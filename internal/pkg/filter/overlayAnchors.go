package filter

import "image"

// AnchorFunc computes the top-left corner for an overlay given the base
// image size and the overlay's post-resize size.
type AnchorFunc func(w, h, ow, oh int) image.Point

// overlayAnchors maps overlay names to their anchor. Adding a new overlay
// with a custom placement is one entry here; names without an entry are
// centered.
var overlayAnchors = map[string]AnchorFunc{
	"dog": func(w, h, ow, oh int) image.Point { // ears at top center
		return image.Pt(w/5, h/25)
	},
	"sunglasses": func(w, h, ow, oh int) image.Point { // roughly eye height
		return image.Pt(w/5, h/4)
	},
	"flower": func(w, h, ow, oh int) image.Point { // crown at the top edge
		return image.Pt(w/5, 0)
	},
}

func AnchorFor(name string) AnchorFunc {
	if fn, ok := overlayAnchors[name]; ok {
		return fn
	}
	return func(w, h, ow, oh int) image.Point {
		return image.Pt(w/2-ow/2, h/2-oh/2)
	}
}
