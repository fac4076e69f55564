package gridkit

// Style defines the visual appearance and pixel metrics of a table.
type Style struct {
	// Text colors
	TextColor         uint32
	TextDisabledColor uint32

	// Body colors
	BackgroundColor uint32
	RowBgAltColor   uint32 // Alternate row background (0 = disabled)
	GridLineColor   uint32

	// Header colors
	HeaderBgColor        uint32
	HeaderTextColor      uint32 // 0 = use TextColor
	HeaderSeparatorColor uint32
	SortIndicatorColor   uint32

	// Selection colors
	SelectedBgColor   uint32
	SelectedTextColor uint32
	HoveredBgColor    uint32
	FocusColor        uint32

	// Checkbox colors
	CheckBoxColor uint32
	CheckColor    uint32

	// Scrollbar
	ScrollbarBgColor     uint32
	ScrollbarGrabColor   uint32
	ScrollbarGrabHovered uint32

	// Sizing
	FontScale     float32
	CharWidth     float32 // Fallback font glyph width
	CharHeight    float32 // Fallback font glyph height
	CellPaddingX  float32 // Horizontal inset inside a cell
	CellPaddingY  float32 // Vertical inset inside a cell
	HeaderPadding float32
	ImageTextGap  float32 // Gap between a cell image and its text
	CheckBoxSize  float32
	CheckBoxGap   float32 // Gap between checkbox and first cell
	SortGlyphSize float32 // Width reserved for the sort chevron

	// Interaction metrics
	ResizeTolerance float32 // Pixel distance from a column edge that arms resizing
	ReorderDistance float32 // Pointer travel before a header press becomes a drag

	// Grid lines
	GridLineWidth float32

	// Scrollbar
	ScrollbarSize float32
}

// DefaultStyle returns the default dark style.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		BackgroundColor: RGBA(25, 25, 25, 255),
		RowBgAltColor:   RGBA(35, 35, 35, 255),
		GridLineColor:   RGBA(60, 60, 60, 255),

		HeaderBgColor:        RGBA(40, 40, 40, 255),
		HeaderTextColor:      0, // Use TextColor
		HeaderSeparatorColor: RGBA(80, 80, 80, 255),
		SortIndicatorColor:   RGBA(180, 180, 180, 255),

		SelectedBgColor:   RGBA(50, 100, 150, 255),
		SelectedTextColor: ColorWhite,
		HoveredBgColor:    RGBA(60, 60, 60, 255),
		FocusColor:        RGBA(0, 200, 255, 255),

		CheckBoxColor: RGBA(150, 150, 150, 255),
		CheckColor:    RGBA(0, 200, 255, 255),

		ScrollbarBgColor:     RGBA(30, 30, 30, 255),
		ScrollbarGrabColor:   RGBA(80, 80, 80, 255),
		ScrollbarGrabHovered: RGBA(100, 100, 100, 255),

		FontScale:     1.0,
		CharWidth:     8,
		CharHeight:    8,
		CellPaddingX:  6,
		CellPaddingY:  3,
		HeaderPadding: 6,
		ImageTextGap:  4,
		CheckBoxSize:  12,
		CheckBoxGap:   4,
		SortGlyphSize: 10,

		ResizeTolerance: 5,
		ReorderDistance: 3,

		GridLineWidth: 1,

		ScrollbarSize: 12,
	}
}

// LightStyle returns a light theme.
func LightStyle() Style {
	s := DefaultStyle()
	s.TextColor = RGBA(20, 20, 20, 255)
	s.TextDisabledColor = RGBA(150, 150, 150, 255)
	s.BackgroundColor = ColorWhite
	s.RowBgAltColor = RGBA(250, 250, 250, 255)
	s.GridLineColor = RGBA(220, 220, 220, 255)
	s.HeaderBgColor = RGBA(230, 230, 230, 255)
	s.HeaderTextColor = RGBA(20, 20, 20, 255)
	s.HeaderSeparatorColor = RGBA(200, 200, 200, 255)
	s.SortIndicatorColor = RGBA(100, 100, 100, 255)
	s.SelectedBgColor = RGBA(0, 120, 215, 255)
	s.SelectedTextColor = ColorWhite
	s.HoveredBgColor = RGBA(230, 230, 230, 255)
	s.FocusColor = RGBA(0, 100, 200, 255)
	s.CheckBoxColor = RGBA(100, 100, 100, 255)
	s.CheckColor = RGBA(0, 100, 200, 255)
	s.ScrollbarBgColor = RGBA(240, 240, 240, 255)
	s.ScrollbarGrabColor = RGBA(180, 180, 180, 255)
	s.ScrollbarGrabHovered = RGBA(160, 160, 160, 255)
	return s
}
