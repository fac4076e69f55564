package gridkit

// Font is the interface for a font that can measure and render text.
// It abstracts the text backend so the table core can be driven headless
// in tests and applications can inject atlas-based GPU fonts.
//
// The core package does not depend on any concrete font implementation.
// When no font is injected, a fixed-cell fallback font is used.
//
// Implementations should be GPU-oriented, using pre-generated texture
// atlases rather than CPU rasterization at render time.
type Font interface {
	// TextureID returns the texture ID for the font atlas.
	// This texture is bound before rendering glyph quads.
	TextureID() uint32

	// MeasureText returns the pixel dimensions of the text at the
	// specified scale. Used for cell layout before rendering.
	MeasureText(text string, scale float32) Vec2

	// GlyphQuads generates quads for rendering the given text.
	// The returned slice should be used immediately and not stored.
	GlyphQuads(text string, x, y, scale float32) []GlyphQuad

	// LineHeight returns the line height at the specified scale.
	LineHeight(scale float32) float32
}

// FixedFont is the built-in fallback font: a monospace cell grid for
// ASCII 32-127 packed into a 128x48 texture (16 columns of 8x8 glyphs).
// The backend's glyph atlas uses the same layout; applications attach
// it with SetTexture. Texture ID 0 draws untextured quads, which is
// fine for headless use.
type FixedFont struct {
	CharW, CharH float32
	tex          uint32
}

// NewFixedFont creates a fixed-cell font with the given glyph size.
func NewFixedFont(charW, charH float32) *FixedFont {
	return &FixedFont{CharW: charW, CharH: charH}
}

// SetTexture attaches the glyph atlas texture uploaded by the backend.
func (f *FixedFont) SetTexture(tex uint32) {
	f.tex = tex
}

func (f *FixedFont) TextureID() uint32 {
	return f.tex
}

func (f *FixedFont) MeasureText(text string, scale float32) Vec2 {
	n := 0
	for range text {
		n++
	}
	return Vec2{X: float32(n) * f.CharW * scale, Y: f.CharH * scale}
}

func (f *FixedFont) LineHeight(scale float32) float32 {
	return f.CharH * scale
}

func (f *FixedFont) GlyphQuads(text string, x, y, scale float32) []GlyphQuad {
	if len(text) == 0 {
		return nil
	}

	cw := f.CharW * scale
	ch := f.CharH * scale
	quads := make([]GlyphQuad, 0, len(text))

	i := 0
	for _, r := range text {
		char := asciiFallback(r)
		if char < 32 || char > 127 {
			char = '?'
		}

		idx := int(char - 32)
		col := float32(idx % 16)
		row := float32(idx / 16)

		px := x + float32(i)*cw
		quads = append(quads, GlyphQuad{
			X0: px, Y0: y,
			X1: px + cw, Y1: y + ch,
			U0: col * 8 / 128, V0: row * 8 / 48,
			U1: (col + 1) * 8 / 128, V1: (row + 1) * 8 / 48,
		})
		i++
	}
	return quads
}

// asciiFallback maps common Unicode symbols to ASCII equivalents for
// the built-in cell font (ASCII 32-127 only). Sort chevrons and check
// marks drawn by the header and checkbox code go through here.
func asciiFallback(r rune) rune {
	if r >= 32 && r <= 127 {
		return r
	}
	switch r {
	case '►', '▶', '▸', '→':
		return '>'
	case '◄', '◀', '◂', '←':
		return '<'
	case '▼', '▾', '↓':
		return 'v'
	case '▲', '▴', '↑':
		return '^'
	case '●', '•', '◆':
		return '*'
	case '✓', '✔':
		return '+'
	case '✗', '✘':
		return 'x'
	case '—', '–':
		return '-'
	default:
		return r
	}
}
