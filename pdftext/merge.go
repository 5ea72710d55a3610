package pdftext

import (
	"math"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
	"github.com/tsawler/toolbox/model"
	"golang.org/x/text/unicode/norm"
)

// word accumulates consecutive glyphs into one fragment.
type word struct {
	text     strings.Builder
	x, y     float64
	right    float64
	fontName string
	fontSize float64
}

func (w *word) fragment() model.TextFragment {
	return model.TextFragment{
		Text:     norm.NFC.String(w.text.String()),
		BBox:     model.BBox{X: w.x, Y: w.y, Width: w.right - w.x, Height: w.fontSize},
		FontName: w.fontName,
		FontSize: w.fontSize,
	}
}

// baselineTolerance is the vertical distance within which two glyphs share
// a line.
func baselineTolerance(fontSize float64) float64 {
	return math.Max(fontSize*0.3, 1)
}

// wordGap is the horizontal distance beyond which two glyphs belong to
// different words.
func wordGap(fontSize float64) float64 {
	return math.Max(fontSize*0.2, 1)
}

// mergeGlyphs joins glyph runs, in content stream order, into word
// fragments. Whitespace glyphs, baseline changes, large gaps and backward
// jumps all end the current word.
func mergeGlyphs(glyphs []pdf.Text) []model.TextFragment {
	var fragments []model.TextFragment
	var cur *word

	flush := func() {
		if cur != nil && strings.TrimSpace(cur.text.String()) != "" {
			fragments = append(fragments, cur.fragment())
		}
		cur = nil
	}

	for _, g := range glyphs {
		if g.S == "" {
			continue
		}
		if strings.TrimFunc(g.S, unicode.IsSpace) == "" {
			flush()
			continue
		}

		if cur != nil {
			size := math.Max(cur.fontSize, g.FontSize)
			sameLine := math.Abs(g.Y-cur.y) <= baselineTolerance(size)
			gap := g.X - cur.right
			if !sameLine || gap > wordGap(size) || g.X < cur.x-wordGap(size) {
				flush()
			}
		}

		if cur == nil {
			cur = &word{x: g.X, y: g.Y, right: g.X, fontName: g.Font, fontSize: g.FontSize}
		}
		cur.text.WriteString(g.S)
		cur.right = math.Max(cur.right, g.X+g.W)
		cur.fontSize = math.Max(cur.fontSize, g.FontSize)
	}
	flush()

	return fragments
}
