package text

import "golang.org/x/text/unicode/bidi"

// DetectDirection returns the base direction of a paragraph by the Unicode
// bidirectional algorithm. Text without strong characters is LTR.
func DetectDirection(text string) Direction {
	if text == "" {
		return DirectionLTR
	}

	p := bidi.Paragraph{}
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return DirectionLTR
	}

	// The first run in logical order carries the paragraph's first strong
	// direction.
	if ordering.Direction() == bidi.RightToLeft {
		return DirectionRTL
	}
	return DirectionLTR
}

// resolveDirection replaces DirectionAuto with the detected direction.
func resolveDirection(d Direction, text string) Direction {
	if d == DirectionAuto {
		return DetectDirection(text)
	}
	return d
}
