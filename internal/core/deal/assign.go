package deal

import (
	"github.com/louisbranch/swampdeck/internal/core/card"
	"github.com/louisbranch/swampdeck/internal/random"
)

// Assign runs one attempt of the greedy deal.
//
// The cards are permuted, then placed one at a time on a player that still
// has room and passes the table for that card. Among those, only the players
// with the most open slots are candidates, and one of them is picked at
// random. This keeps hands growing together instead of filling one player
// first.
//
// Assign reports false as soon as a card has no candidate, and when len(cards)
// is not playerCount*perPlayer. On success every player holds exactly
// perPlayer cards and every card is placed once. cards is not modified.
func Assign(cards []card.Instance, playerCount, perPlayer int, table *Table, rng random.Source) ([][]card.Instance, bool) {
	if playerCount <= 0 || perPlayer < 0 || len(cards) != playerCount*perPlayer {
		return nil, false
	}

	order := make([]card.Instance, len(cards))
	copy(order, cards)
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	hands := make([][]card.Instance, playerCount)
	stats := make([]Stats, playerCount)
	remaining := make([]int, playerCount)
	for p := range playerCount {
		hands[p] = make([]card.Instance, 0, perPlayer)
		remaining[p] = perPlayer
	}
	var shared Shared

	candidates := make([]int, 0, playerCount)
	for _, c := range order {
		candidates = candidates[:0]
		most := 0
		for p := range playerCount {
			if remaining[p] == 0 || !table.Eligible(&stats[p], &shared, c) {
				continue
			}
			switch {
			case remaining[p] > most:
				most = remaining[p]
				candidates = append(candidates[:0], p)
			case remaining[p] == most:
				candidates = append(candidates, p)
			}
		}
		if len(candidates) == 0 {
			return nil, false
		}

		p := candidates[rng.Intn(len(candidates))]
		hands[p] = append(hands[p], c)
		table.Apply(&stats[p], &shared, c)
		remaining[p]--
	}
	return hands, true
}
