package geocode

import (
	"sort"
	"unicode"

	"emsinet_landing_backend/platform/textutil"
)

// placeCorrections maps accent-stripped, lower-cased fragments of common
// Nicaraguan place names (departments, municipalities, well-known Managua
// neighborhoods) to their canonically accented forms. Visitors rarely type
// accents; Nominatim ranks the canonical spelling noticeably better.
var placeCorrections = map[string]string{
	"leon":               "León",
	"esteli":             "Estelí",
	"managua":            "Managua",
	"masaya":             "Masaya",
	"granada":            "Granada",
	"rivas":              "Rivas",
	"carazo":             "Carazo",
	"chinandega":         "Chinandega",
	"matagalpa":          "Matagalpa",
	"jinotega":           "Jinotega",
	"boaco":              "Boaco",
	"chontales":          "Chontales",
	"juigalpa":           "Juigalpa",
	"ocotal":             "Ocotal",
	"somoto":             "Somoto",
	"rio san juan":       "Río San Juan",
	"rio blanco":         "Río Blanco",
	"bluefields":         "Bluefields",
	"puerto cabezas":     "Puerto Cabezas",
	"ciudad sandino":     "Ciudad Sandino",
	"tipitapa":           "Tipitapa",
	"nagarote":           "Nagarote",
	"diriamba":           "Diriamba",
	"jinotepe":           "Jinotepe",
	"nandaime":           "Nandaime",
	"niquinohomo":        "Niquinohomo",
	"ticuantepe":         "Ticuantepe",
	"el crucero":         "El Crucero",
	"la concepcion":      "La Concepción",
	"san juan del sur":   "San Juan del Sur",
	"san rafael del sur": "San Rafael del Sur",
	"altamira":           "Altamira",
	"bello horizonte":    "Bello Horizonte",
	"linda vista":        "Linda Vista",
	"monsenor lezcano":   "Monseñor Lezcano",
	"villa fontana":      "Villa Fontana",
	"las colinas":        "Las Colinas",
	"batahola":           "Batahola",
}

type correction struct {
	folded    []rune
	canonical []rune
}

var corrections []correction

func init() {
	corrections = make([]correction, 0, len(placeCorrections))
	for key, canonical := range placeCorrections {
		corrections = append(corrections, correction{
			folded:    []rune(key),
			canonical: []rune(canonical),
		})
	}
	// longest fragments first so "san juan del sur" wins over shorter overlaps
	sort.Slice(corrections, func(i, j int) bool {
		return len(corrections[i].folded) > len(corrections[j].folded)
	})
}

// CorrectQuery rewrites known place-name fragments of the query to their
// canonical forms, matching case- and accent-insensitively on word
// boundaries and preserving the rest of the query verbatim.
func CorrectQuery(query string) string {
	runes := []rune(query)
	if len(runes) == 0 {
		return query
	}

	folded := make([]rune, len(runes))
	for i, r := range runes {
		folded[i] = textutil.FoldRune(r)
	}

	for _, entry := range corrections {
		runes, folded = substitute(runes, folded, entry)
	}

	return string(runes)
}

// substitute replaces every whole-word occurrence of entry in the query,
// keeping the folded view aligned with the original runes.
func substitute(runes, folded []rune, entry correction) ([]rune, []rune) {
	n := len(entry.folded)
	for i := 0; i+n <= len(folded); {
		if !matchesAt(folded, i, entry.folded) || !wordBoundary(folded, i, n) {
			i++
			continue
		}

		canonicalFolded := make([]rune, len(entry.canonical))
		for j, r := range entry.canonical {
			canonicalFolded[j] = textutil.FoldRune(r)
		}

		runes = splice(runes, i, n, entry.canonical)
		folded = splice(folded, i, n, canonicalFolded)
		i += len(entry.canonical)
	}
	return runes, folded
}

func matchesAt(haystack []rune, offset int, needle []rune) bool {
	for j, r := range needle {
		if haystack[offset+j] != r {
			return false
		}
	}
	return true
}

func wordBoundary(runes []rune, offset, length int) bool {
	if offset > 0 && isWordRune(runes[offset-1]) {
		return false
	}
	end := offset + length
	if end < len(runes) && isWordRune(runes[end]) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func splice(runes []rune, offset, length int, replacement []rune) []rune {
	out := make([]rune, 0, len(runes)-length+len(replacement))
	out = append(out, runes[:offset]...)
	out = append(out, replacement...)
	out = append(out, runes[offset+length:]...)
	return out
}
