// Package recommend is the in-memory product recommendation engine.
//
// Every function is a pure, total pass over a caller-supplied catalog
// snapshot: no database access, no mutation of inputs, no goroutines.
// Callers may share one immutable snapshot across concurrent calls.
package recommend

import (
	"strings"

	"github.com/example/moda/internal/models"
)

// Attributes are the semantic tags derived from a product's free text.
// Style and PatternType always carry a value; the rest are empty when no
// vocabulary keyword matched.
type Attributes struct {
	Style        string
	Season       string
	NeckLine     string
	SleeveLength string
	Material     string
	FabricType   string
	Decoration   string
	PatternType  string
}

// Extract derives attributes from the product name and description.
// Recomputed fresh on every call; it is safe, though not free, to call in
// hot comparison loops.
func Extract(p models.Product) Attributes {
	text := strings.ToLower(p.Name + " " + p.Description)

	attrs := Attributes{
		Style:        firstMatch(text, styleVocab),
		Season:       firstMatch(text, seasonVocab),
		NeckLine:     firstMatch(text, neckLineVocab),
		SleeveLength: firstMatch(text, sleeveLengthVocab),
		Material:     firstMatch(text, materialVocab),
		FabricType:   firstMatch(text, fabricTypeVocab),
		Decoration:   firstMatch(text, decorationVocab),
		PatternType:  firstMatch(text, patternTypeVocab),
	}

	if attrs.Season == "automn" {
		attrs.Season = "autumn"
	}
	if attrs.Style == "" {
		attrs.Style = defaultStyle
	}
	if attrs.PatternType == "" {
		attrs.PatternType = defaultPattern
	}

	return attrs
}

// firstMatch returns the first vocabulary entry contained in text.
// First-in-list wins regardless of match position or length.
func firstMatch(text string, vocab []string) string {
	for _, keyword := range vocab {
		if strings.Contains(text, keyword) {
			return keyword
		}
	}
	return ""
}
