package shopping

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/unicode/norm"
)

// FindIngredients groups the list and keeps the groups whose name
// fuzzy-matches the term. Matching folds case and diacritics, so
// "creme" finds "Crème fraîche".
func FindIngredients(recipes []Recipe, term string) []GroupedIngredient {
	needle := foldName(term)
	if needle == "" {
		return nil
	}

	var out []GroupedIngredient
	for _, g := range GroupByIngredient(recipes) {
		if fuzzy.Match(needle, foldName(g.Name)) {
			out = append(out, g)
		}
	}
	return out
}

// foldName lowercases a name and strips combining marks after NFD
// decomposition, so accented and plain spellings compare equal.
func foldName(s string) string {
	decomp := norm.NFD.String(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(decomp))
	for _, r := range decomp {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
