package model

// TextFragment is a single positioned run of text (a word or glyph run)
// taken from a page. Width and Height are zero when the source cannot
// measure them; such fragments behave as points.
type TextFragment struct {
	Text     string
	BBox     BBox
	FontName string
	FontSize float64
}

// NewFragment creates a fragment anchored at (x, y) with no known size.
func NewFragment(text string, x, y float64) TextFragment {
	return TextFragment{Text: text, BBox: BBox{X: x, Y: y}}
}

// X returns the left edge of the fragment.
func (f TextFragment) X() float64 { return f.BBox.X }

// Y returns the baseline (bottom edge) of the fragment.
func (f TextFragment) Y() float64 { return f.BBox.Y }

// Span returns the horizontal extent [left, right] of the fragment.
func (f TextFragment) Span() (left, right float64) {
	return f.BBox.Left(), f.BBox.Right()
}

// CenterX returns the horizontal midpoint of the fragment.
func (f TextFragment) CenterX() float64 {
	return f.BBox.X + f.BBox.Width/2
}
