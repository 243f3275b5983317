package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks, and recomposes. This
// removes Vietnamese tone and vowel marks but leaves the đ/Đ digraph intact,
// which is handled separately because it is a distinct letter, not a mark.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var digraphReplacer = strings.NewReplacer("đ", "d", "Đ", "D")

// StripDiacritics removes Vietnamese diacritics from s, mapping đ/Đ to d/D.
func StripDiacritics(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		// transform only fails on malformed UTF-8; fall back to the input.
		out = s
	}
	return digraphReplacer.Replace(out)
}

// NormalizeText lower-cases, trims, and strips diacritics. All string
// comparisons in the engine go through this first.
func NormalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(StripDiacritics(s)))
}

// unitSynonyms maps normalized unit spellings to their canonical form.
// Keys are already lower-cased and diacritic-free.
var unitSynonyms = map[string]string{
	"kilogram": "kg",
	"kilo":     "kg",
	"kgs":      "kg",
	"kg":       "kg",
	"gram":     "g",
	"gr":       "g",
	"g":        "g",
	"litre":    "l",
	"liter":    "l",
	"lit":      "l",
	"l":        "l",
	"ml":       "ml",
	"qua":      "cai",
	"trai":     "cai",
	"cai":      "cai",
	"pcs":      "cai",
	"pc":       "cai",
	"chiec":    "cai",
	"bo":       "bo",
	"set":      "bo",
	"thung":    "thung",
	"carton":   "thung",
	"hop":      "hop",
	"box":      "hop",
	"goi":      "goi",
	"bao":      "bao",
	"chai":     "chai",
	"lon":      "lon",
	"cuon":     "cuon",
	"tam":      "tam",
	"cay":      "cay",
	"m":        "m",
	"met":      "m",
	"m2":       "m2",
	"m3":       "m3",
}

// NormalizeUnit canonicalizes a unit through the synonym table. An
// unrecognized unit comes back diacritic-stripped and lower-cased, unchanged
// otherwise.
func NormalizeUnit(unit string) string {
	n := NormalizeText(unit)
	if canonical, ok := unitSynonyms[n]; ok {
		return canonical
	}
	return n
}
