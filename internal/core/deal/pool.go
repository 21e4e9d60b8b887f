package deal

import "github.com/louisbranch/swampdeck/internal/core/card"

// PopulationKind is the kind whose catalog count scales with the table size.
const PopulationKind = card.KindLife

// EffectiveCount returns how many copies of k a catalog deck holds for
// playerCount players. PopulationKind gets max(1, round(playerCount/3)) when
// there are players; every other kind keeps its catalog default.
func EffectiveCount(catalog card.Catalog, k card.Kind, playerCount int) int {
	if k != PopulationKind || playerCount <= 0 {
		return catalog.DefaultCount(k)
	}
	// playerCount/3 never lands on a half, so (n+1)/3 is round(n/3).
	return max(1, (playerCount+1)/3)
}

// BuildPool expands the catalog into card instances numbered 1..count per
// kind, in catalog order.
func BuildPool(catalog card.Catalog, playerCount int) []card.Instance {
	var pool []card.Instance
	for _, k := range catalog.Kinds() {
		count := EffectiveCount(catalog, k, playerCount)
		for n := 1; n <= count; n++ {
			pool = append(pool, card.Instance{Kind: k, Number: n})
		}
	}
	return pool
}

// BuildCustomPool numbers a caller-supplied deck. Each repetition of a kind
// gets the next instance number for that kind, so [a, a, b, a] becomes
// [a#1, a#2, b#1, a#3]. Kinds outside the set are skipped.
func BuildCustomPool(kinds []card.Kind) []card.Instance {
	var next [card.KindCount]int
	pool := make([]card.Instance, 0, len(kinds))
	for _, k := range kinds {
		if !k.Valid() {
			continue
		}
		next[k]++
		pool = append(pool, card.Instance{Kind: k, Number: next[k]})
	}
	return pool
}
