// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-23
// Last Modified: 2026-08-24

package interact

import "github.com/sahilm/fuzzy"

// Match narrows candidates against a typed pattern, returning candidate
// indices best-match first. An empty pattern matches every candidate in
// the original order. Deterministic for a given input.
func Match(pattern string, candidates []string) []int {
	if pattern == "" {
		indices := make([]int, len(candidates))
		for i := range candidates {
			indices[i] = i
		}
		return indices
	}

	matches := fuzzy.Find(pattern, candidates)
	indices := make([]int, len(matches))
	for i, match := range matches {
		indices[i] = match.Index
	}
	return indices
}
