package render

// Decoration glyphs. Structure is fixed by the output contract; the
// exact glyphs are a rendering choice kept in one place.
const (
	glyphVBar         = "│"
	glyphHBar         = "─"
	glyphTopCorner    = "┌"
	glyphBottomCorner = "└"
	glyphPointer      = "^"
	glyphArrow        = "→"
	glyphEllipsis     = "···"
)
