package deal

import "github.com/louisbranch/swampdeck/internal/core/card"

// Swamp monster charges granted at the end of a deal.
const (
	SwampChargesFull    = 2
	SwampChargesReduced = 1
)

// SwampKind is the kind whose holder receives swamp charges.
const SwampKind = card.KindSwampMonster

// NerfingKinds reduce the swamp charges of a hand that also holds SwampKind.
var NerfingKinds = []card.Kind{card.KindDrought, card.KindFire, card.KindSalt}

// Player is a seat at the table together with the state a deal produces.
// Only ID and Name are read from the caller; everything else is rebuilt.
type Player struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Hand          []card.Instance `json:"hand"`
	HasGasMask    bool            `json:"has_gas_mask"`
	InactiveCards []card.Instance `json:"inactive_cards"`
	Status        Status          `json:"status"`
}

// Status holds counters owned by later game phases.
type Status struct {
	SwampChargesLeft int `json:"swamp_charges_left"`
	MudCount         int `json:"mud_count"`
}

// Holds reports whether the hand contains at least one instance of k.
func (p Player) Holds(k card.Kind) bool {
	for _, c := range p.Hand {
		if c.Kind == k {
			return true
		}
	}
	return false
}

// finalize builds fresh players from the baseline identities and the hands
// of a successful deal. A nil hands slice, or a nil entry, yields an empty
// hand.
func finalize(baseline []Player, hands [][]card.Instance, oracle card.Oracle) []Player {
	out := make([]Player, len(baseline))
	for i, base := range baseline {
		var hand []card.Instance
		if i < len(hands) {
			hand = hands[i]
		}
		if hand == nil {
			hand = []card.Instance{}
		}
		p := Player{
			ID:            base.ID,
			Name:          base.Name,
			Hand:          hand,
			InactiveCards: []card.Instance{},
		}
		p.HasGasMask = hasGasMask(hand, oracle)
		p.Status.SwampChargesLeft = swampCharges(p)
		out[i] = p
	}
	return out
}

func hasGasMask(hand []card.Instance, oracle card.Oracle) bool {
	for _, c := range hand {
		if oracle.GivesGasMask(c.Kind, c.Number) {
			return true
		}
	}
	return false
}

func swampCharges(p Player) int {
	if !p.Holds(SwampKind) {
		return 0
	}
	for _, k := range NerfingKinds {
		if p.Holds(k) {
			return SwampChargesReduced
		}
	}
	return SwampChargesFull
}
