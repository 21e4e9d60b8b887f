package deal

import "github.com/louisbranch/swampdeck/internal/core/card"

// LifeLimiterKinds are the kinds whose presence anywhere in an attempt caps
// every player at one PopulationKind card.
var LifeLimiterKinds = []card.Kind{
	card.KindCloudWalker,
	card.KindReaper,
	card.KindPlague,
	card.KindCurse,
	card.KindLeech,
}

// Stats are the running counts of one player's in-progress hand. A fresh
// zero value is used for every attempt.
type Stats struct {
	Counts   [card.KindCount]int
	GasMasks int
}

// Holds reports whether at least one instance of k is in the hand.
func (s *Stats) Holds(k card.Kind) bool {
	return s.Counts[k] > 0
}

// Lives is the number of PopulationKind cards held.
func (s *Stats) Lives() int {
	return s.Counts[PopulationKind]
}

// Shared is attempt-wide state every player's rules can see.
type Shared struct {
	// LimitLivesToOne is set by the first life-limiter placed and stays set
	// for the rest of the attempt.
	LimitLivesToOne bool
}

// LivesCap is how many PopulationKind cards a single player may hold.
func (s *Shared) LivesCap() int {
	if s.LimitLivesToOne {
		return 1
	}
	return 2
}

// Rule is the per-kind part of the constraint table. Either field may be nil.
type Rule struct {
	// Eligible reports whether a player may receive another card of the kind.
	Eligible func(p *Stats, s *Shared) bool
	// Apply runs after the card is placed, following the count update.
	Apply func(p *Stats, s *Shared)
}

// Rules maps kinds to their rule. Kinds without an entry are unrestricted
// apart from the gas mask cap.
type Rules map[card.Kind]Rule

// DefaultRules returns the constraint table of the standard set.
func DefaultRules() Rules {
	celestial := Rule{Eligible: noneOf(card.KindSun, card.KindMoon)}
	limiter := Rule{Apply: limitLives}

	return Rules{
		card.KindLife: {Eligible: belowLivesCap},

		// sheriff is a singleton; bandit and spy may repeat but never meet
		// each other or the sheriff.
		card.KindSheriff: {Eligible: noneOf(card.KindSheriff, card.KindBandit, card.KindSpy)},
		card.KindBandit:  {Eligible: noneOf(card.KindSheriff, card.KindSpy)},
		card.KindSpy:     {Eligible: noneOf(card.KindSheriff, card.KindBandit)},

		card.KindHealer:   lifeSensitive(card.KindHealer),
		card.KindShaman:   lifeSensitive(card.KindShaman),
		card.KindVampire:  lifeSensitive(card.KindVampire),
		card.KindPhoenix:  lifeSensitive(card.KindPhoenix),
		card.KindGuardian: lifeSensitive(card.KindGuardian),

		card.KindCloudWalker: {Eligible: fewerThan(card.KindCloudWalker, 2), Apply: limitLives},
		card.KindReaper:      limiter,
		card.KindPlague:      limiter,
		card.KindCurse:       limiter,
		card.KindLeech:       limiter,

		card.KindSun:  celestial,
		card.KindMoon: celestial,

		card.KindBomb: {Eligible: fewerThan(card.KindBomb, 2)},
	}
}

func belowLivesCap(p *Stats, s *Shared) bool {
	return p.Lives() < s.LivesCap()
}

func noneOf(kinds ...card.Kind) func(*Stats, *Shared) bool {
	return func(p *Stats, _ *Shared) bool {
		for _, k := range kinds {
			if p.Holds(k) {
				return false
			}
		}
		return true
	}
}

func fewerThan(k card.Kind, limit int) func(*Stats, *Shared) bool {
	return func(p *Stats, _ *Shared) bool {
		return p.Counts[k] < limit
	}
}

// lifeSensitive kinds are singletons that a player at the lives cap cannot
// take.
func lifeSensitive(k card.Kind) Rule {
	return Rule{Eligible: func(p *Stats, s *Shared) bool {
		return !p.Holds(k) && belowLivesCap(p, s)
	}}
}

func limitLives(_ *Stats, s *Shared) {
	s.LimitLivesToOne = true
}

// Table evaluates Rules together with the gas mask cap.
type Table struct {
	rules  Rules
	oracle card.Oracle
}

// NewTable binds rules to the oracle that decides gas mask sources.
func NewTable(rules Rules, oracle card.Oracle) *Table {
	return &Table{rules: rules, oracle: oracle}
}

// Eligible reports whether a player with stats p may receive c.
func (t *Table) Eligible(p *Stats, s *Shared, c card.Instance) bool {
	if p.GasMasks >= 1 && t.oracle.GivesGasMask(c.Kind, c.Number) {
		return false
	}
	rule, ok := t.rules[c.Kind]
	if !ok || rule.Eligible == nil {
		return true
	}
	return rule.Eligible(p, s)
}

// Apply records c in p and runs the kind's bookkeeping.
func (t *Table) Apply(p *Stats, s *Shared, c card.Instance) {
	if c.Kind.Valid() {
		p.Counts[c.Kind]++
	}
	if t.oracle.GivesGasMask(c.Kind, c.Number) {
		p.GasMasks++
	}
	if rule, ok := t.rules[c.Kind]; ok && rule.Apply != nil {
		rule.Apply(p, s)
	}
}
