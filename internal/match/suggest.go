package match

import (
	"cmp"
	"slices"
)

// MaxSuggestions caps the number of names returned by Suggest.
const MaxSuggestions = 3

// Suggest returns the known names closest to name, nearest first. A name
// differing only in case is the nearest; name itself is never suggested.
// Names farther than a third of the longer length (at least 1, at most 3
// edits) are not suggested. Ties keep the order of known.
func Suggest(name string, known []string) []string {
	type scored struct {
		name string
		dist int
		pos  int
	}

	var ranked []scored

	for i, k := range known {
		d := distanceFold(name, k)
		if k == name || d > budget(name, k) {
			continue
		}

		ranked = append(ranked, scored{name: k, dist: d, pos: i})
	}

	slices.SortFunc(ranked, func(a, b scored) int {
		return cmp.Or(cmp.Compare(a.dist, b.dist), cmp.Compare(a.pos, b.pos))
	})

	out := make([]string, 0, min(len(ranked), MaxSuggestions))
	for _, r := range ranked {
		if len(out) == MaxSuggestions {
			break
		}

		out = append(out, r.name)
	}

	return out
}

func budget(a, b string) int {
	return min(max(max(len(a), len(b))/3, 1), 3)
}
