package recommend

// Attribute vocabularies scanned by Extract. Order matters: the first
// substring found in the product text wins, so earlier entries shadow
// later ones ("vintage bohemian" extracts as vintage). Values come from
// the dress attribute feed the catalog is imported from.

var styleVocab = []string{
	"casual",
	"sexy",
	"vintage",
	"brief",
	"cute",
	"bohemian",
	"party",
	"work",
	"novelty",
	"flare",
	"fashion",
}

var seasonVocab = []string{
	"summer",
	"spring",
	"winter",
	"autumn",
	"automn", // recurring misspelling in the feed, normalized to autumn
}

var neckLineVocab = []string{
	"o-neck",
	"v-neck",
	"boat-neck",
	"turtleneck",
	"halter",
	"sweetheart",
	"slash-neck",
	"square-collar",
	"scoop",
	"off-shoulder",
}

var sleeveLengthVocab = []string{
	"sleeveless",
	"short sleeve",
	"half sleeve",
	"three quarter",
	"long sleeve",
	"full sleeve",
	"cap sleeve",
	"butterfly",
}

var materialVocab = []string{
	"cotton",
	"silk",
	"chiffon",
	"polyester",
	"denim",
	"wool",
	"linen",
	"leather",
	"lace",
	"nylon",
	"rayon",
	"spandex",
	"viscose",
	"cashmere",
}

var fabricTypeVocab = []string{
	"broadcloth",
	"jersey",
	"satin",
	"flannel",
	"corduroy",
	"worsted",
	"poplin",
	"dobby",
	"knitting",
	"tulle",
	"organza",
	"terry",
}

var decorationVocab = []string{
	"ruffles",
	"embroidery",
	"beading",
	"sequined",
	"applique",
	"bow",
	"button",
	"hollowout",
	"pockets",
	"sashes",
	"tassel",
	"rivet",
	"ruched",
	"draped",
	"feathers",
	"pearls",
	"flowers",
}

var patternTypeVocab = []string{
	"solid",
	"floral",
	"striped",
	"plaid",
	"dot",
	"leopard",
	"animal",
	"patchwork",
	"geometric",
	"character",
	"print",
}

const (
	defaultStyle   = "casual"
	defaultPattern = "solid"
)

// relatedStyleTable lists style pairs that earn half credit in the
// similarity scorer. Lookup is symmetric.
var relatedStyleTable = map[string][]string{
	"casual":  {"brief", "cute"},
	"sexy":    {"party"},
	"vintage": {"bohemian"},
}

// aestheticStyles maps a caller-supplied aesthetic label to the extracted
// styles that satisfy it.
var aestheticStyles = map[string][]string{
	"minimal":  {"casual", "brief"},
	"classic":  {"vintage", "casual"},
	"modern":   {"sexy", "party"},
	"casual":   {"casual", "brief", "cute"},
	"elegant":  {"sexy", "party", "vintage"},
	"bohemian": {"bohemian", "vintage"},
	"sporty":   {"casual", "brief"},
}

// lookPairing maps a subcategory fragment to the complementary fragments
// that finish the outfit.
type lookPairing struct {
	fragment    string
	complements []string
}

// complementaryLooks lists the pairings per category. Slice order is the
// lookup order: the first fragment contained in the target subcategory
// wins, so "t-shirts" resolves through "shirts".
var complementaryLooks = map[string][]lookPairing{
	"women": {
		{"dresses", []string{"accessories", "shoes"}},
		{"tops", []string{"pants", "skirts", "accessories"}},
		{"pants", []string{"tops", "shoes", "accessories"}},
		{"skirts", []string{"tops", "shoes", "accessories"}},
		{"shoes", []string{"accessories"}},
		{"accessories", []string{"tops", "dresses"}},
	},
	"men": {
		{"shirts", []string{"pants", "shoes", "accessories"}},
		{"pants", []string{"shirts", "shoes", "accessories"}},
		{"t-shirts", []string{"pants", "shoes"}},
		{"shoes", []string{"accessories"}},
		{"accessories", []string{"shirts", "pants"}},
	},
	"kids": {
		{"tops", []string{"pants", "shoes"}},
		{"pants", []string{"tops", "shoes"}},
		{"dresses", []string{"shoes", "accessories"}},
	},
}
