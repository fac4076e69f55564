package gridkit

// GC is the drawing context handed to renderers and paint callbacks.
// It pairs a DrawList with the active font so callers can both measure
// text and emit primitives without knowing the backend.
//
// A GC is only valid for the duration of the paint pass that created
// it; callbacks must not retain it.
type GC struct {
	dl    *DrawList
	font  Font
	scale float32
}

// NewGC creates a drawing context over a draw list and font.
func NewGC(dl *DrawList, font Font, scale float32) *GC {
	if scale <= 0 {
		scale = 1
	}
	return &GC{dl: dl, font: font, scale: scale}
}

// DrawList exposes the underlying command buffer for custom overlay
// drawing in paint callbacks.
func (g *GC) DrawList() *DrawList {
	return g.dl
}

// TextExtent measures the given single-line string in pixels.
func (g *GC) TextExtent(text string) Vec2 {
	return g.font.MeasureText(text, g.scale)
}

// LineHeight returns the height of one line of text in pixels.
func (g *GC) LineHeight() float32 {
	return g.font.LineHeight(g.scale)
}

// FillRect fills a rectangle with the given color.
func (g *GC) FillRect(r Rect, color uint32) {
	g.dl.AddRect(r.X, r.Y, r.W, r.H, color)
}

// DrawLine draws a one pixel line between two points.
func (g *GC) DrawLine(x1, y1, x2, y2 float32, color uint32) {
	g.dl.AddLine(x1, y1, x2, y2, color, 1)
}

// DrawText draws a single line of text with its top-left corner at (x, y).
func (g *GC) DrawText(text string, x, y float32, color uint32) {
	if len(text) == 0 {
		return
	}
	quads := g.font.GlyphQuads(text, x, y, g.scale)
	g.dl.SetTexture(g.font.TextureID())
	g.dl.AddGlyphQuads(quads, color)
	g.dl.SetTexture(0)
}

// DrawImage draws the texture stretched over the rectangle.
func (g *GC) DrawImage(textureID uint32, r Rect) {
	g.dl.AddImage(textureID, r.X, r.Y, r.W, r.H, ColorWhite)
}

// DrawFocusRect draws a one pixel focus indicator outline.
func (g *GC) DrawFocusRect(r Rect, color uint32) {
	g.dl.AddRectOutline(r.X, r.Y, r.W, r.H, color, 1)
}

// DrawCheckBox draws a checkbox square, with a check mark when checked.
func (g *GC) DrawCheckBox(r Rect, checked bool, boxColor, checkColor uint32) {
	g.dl.AddRectOutline(r.X, r.Y, r.W, r.H, boxColor, 1)
	if !checked {
		return
	}
	// Two strokes of the mark, proportional to the box.
	x, y, w, h := r.X, r.Y, r.W, r.H
	g.dl.AddLine(x+0.2*w, y+0.5*h, x+0.45*w, y+0.75*h, checkColor, 1.5)
	g.dl.AddLine(x+0.45*w, y+0.75*h, x+0.8*w, y+0.25*h, checkColor, 1.5)
}

// DrawSortIndicator draws an up or down chevron centered in the
// rectangle. Direction follows the SortUp/SortDown constants.
func (g *GC) DrawSortIndicator(r Rect, dir SortDirection, color uint32) {
	if dir == SortNone {
		return
	}
	cx := r.X + r.W/2
	cy := r.Y + r.H/2
	half := minf(r.W, r.H) * 0.3
	if dir == SortUp {
		g.dl.AddTriangle(cx, cy-half, cx+half, cy+half, cx-half, cy+half, color)
	} else {
		g.dl.AddTriangle(cx-half, cy-half, cx+half, cy-half, cx, cy+half, color)
	}
}

// ClipTo pushes the rectangle as the clip region. Pair with Unclip.
func (g *GC) ClipTo(r Rect) {
	g.dl.PushClipRect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Unclip pops the clip region pushed by ClipTo.
func (g *GC) Unclip() {
	g.dl.PopClipRect()
}
