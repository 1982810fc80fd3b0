package reading

// LengthGuideline pairs the textual paragraph guidance embedded in the
// prompt with the output token cap sent to the model. The token caps carry
// roughly 40% headroom so the model can close its final sentence instead of
// being cut off mid-idea.
type LengthGuideline struct {
	Paragraphs string
	MaxTokens  int
}

// GuidelineFor selects the output-length guideline for a card count.
// This is a fixed lookup, not a formula: the tiers were tuned by hand.
func GuidelineFor(numCards int) LengthGuideline {
	switch {
	case numCards == 1:
		return LengthGuideline{Paragraphs: "1 párrafo conciso y completo", MaxTokens: 400}
	case numCards == 3:
		return LengthGuideline{Paragraphs: "1-2 párrafos completos", MaxTokens: 650}
	case numCards == 5:
		return LengthGuideline{Paragraphs: "2-3 párrafos completos", MaxTokens: 900}
	case numCards >= 10:
		return LengthGuideline{Paragraphs: "3-4 párrafos bien desarrollados y completos", MaxTokens: 1400}
	default:
		return LengthGuideline{Paragraphs: "2 párrafos completos", MaxTokens: 750}
	}
}
