package data

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
)

// SuggestItemNames returns IDs of items with a name word close to query,
// best match first. Used when SearchItemNames finds nothing.
func (c *Catalog) SuggestItemNames(query string, limit int) []int32 {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))
	n := utf8.RuneCountInString(q)
	if n < 3 {
		return nil
	}
	maxDist := typoLimit(n)

	type hit struct {
		id   int32
		dist int
	}
	var hits []hit
	for id, name := range c.itemNames {
		best := -1
		for _, word := range strings.FieldsFunc(fold.String(name), isWordSep) {
			d := levenshtein.ComputeDistance(q, word)
			if best < 0 || d < best {
				best = d
			}
		}
		if best >= 0 && best <= maxDist {
			hits = append(hits, hit{id: id, dist: best})
		}
	}

	slices.SortFunc(hits, func(a, b hit) int {
		if a.dist != b.dist {
			return cmp.Compare(a.dist, b.dist)
		}
		return cmp.Compare(a.id, b.id)
	})
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]int32, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.id)
	}
	return out
}

func isWordSep(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// typoLimit grows the tolerated edit distance with the query length.
func typoLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
