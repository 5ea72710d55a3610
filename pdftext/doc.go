// Package pdftext reads positioned text fragments from PDF pages.
//
// Parsing is delegated to github.com/ledongthuc/pdf, which reports one
// positioned run per glyph. Glyphs sharing a baseline and separated by
// less than a font-relative gap are merged into word fragments, which is
// the granularity the table heuristic expects.
//
//	r, err := pdftext.Open("report.pdf")
//	if err != nil {
//		return err
//	}
//	defer r.Close()
//
//	page, err := r.Page(1)
//	if err != nil {
//		return err
//	}
//	for _, f := range page.RawText {
//		fmt.Printf("%6.1f %6.1f %s\n", f.X(), f.Y(), f.Text)
//	}
//
// Fragment text is normalised to Unicode NFC so decomposed accents from
// PDF font encodings compare equal to their composed forms.
package pdftext
