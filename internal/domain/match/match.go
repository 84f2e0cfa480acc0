// Package match scores how closely a query token matches a field value.
package match

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Tier weights, highest first. Tiers never blend: the first applicable one decides.
const (
	exactScore       = 1.0
	containmentScore = 0.8
	wordOverlapScale = 0.6
	sequenceScale    = 0.4
)

// Similarity returns a case-insensitive similarity in [0, 1].
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		return exactScore
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return containmentScore
	}

	wa := wordSet(a)
	wb := wordSet(b)
	if len(wa) > 0 && len(wb) > 0 {
		return jaccard(wa, wb) * wordOverlapScale
	}

	return sequenceRatio(a, b) * sequenceScale
}

func wordSet(s string) map[string]struct{} {
	words := strings.Fields(s)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func jaccard(a, b map[string]struct{}) float64 {
	inter := 0
	for w := range a {
		if _, ok := b[w]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// sequenceRatio is difflib's 2*M/T ratio over characters.
func sequenceRatio(a, b string) float64 {
	m := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return m.Ratio()
}
