// Package deal distributes card instances to players so that every hand has
// the same size and satisfies the constraint table.
//
// # Algorithm
//
// The dealer builds a pool, starts from the largest hand size the pool allows
// (len(pool)/players) and runs up to MaxAttempts randomized greedy attempts at
// that size. Each attempt draws a fresh random slice of the pool and hands it
// to Assign. When every attempt fails, the size drops by one and the search
// repeats. Size 0 always succeeds with empty hands.
//
// # Determinism
//
// All randomness comes from the configured random.Source. A seeded source and
// the same inputs always produce the same deal.
//
// # Diagnostics
//
// When the final size is below the initial one the Observer is told both
// sizes. Deals never fail.
package deal

import (
	"time"

	"github.com/louisbranch/swampdeck/internal/core/card"
	"github.com/louisbranch/swampdeck/internal/random"
)

// DefaultMaxAttempts bounds the attempts made at each hand size.
const DefaultMaxAttempts = 10000

// Observer receives the non-fatal hand size diagnostic.
type Observer interface {
	HandSizeReduced(initial, final int)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(initial, final int)

// HandSizeReduced calls f.
func (f ObserverFunc) HandSizeReduced(initial, final int) {
	f(initial, final)
}

// Report describes a finished deal.
type Report struct {
	Players         []Player
	PoolSize        int
	InitialHandSize int
	HandSize        int
	// Attempts counts every Assign call across all sizes.
	Attempts int
}

// Reduced reports whether the deal settled below the initial hand size.
func (r Report) Reduced() bool {
	return r.HandSize < r.InitialHandSize
}

// Option configures a Dealer.
type Option func(*Dealer)

// WithCatalog sets the catalog used when no custom deck is supplied.
func WithCatalog(c card.Catalog) Option {
	return func(d *Dealer) { d.catalog = c }
}

// WithOracle sets the gas mask oracle.
func WithOracle(o card.Oracle) Option {
	return func(d *Dealer) { d.oracle = o }
}

// WithRules replaces the constraint table.
func WithRules(r Rules) Option {
	return func(d *Dealer) { d.rules = r }
}

// WithSource sets the randomness source.
func WithSource(src random.Source) Option {
	return func(d *Dealer) { d.rng = src }
}

// WithObserver sets the hand size diagnostic observer.
func WithObserver(o Observer) Option {
	return func(d *Dealer) { d.observer = o }
}

// WithMaxAttempts bounds the attempts per hand size. Values below 1 keep the
// default.
func WithMaxAttempts(n int) Option {
	return func(d *Dealer) {
		if n > 0 {
			d.maxAttempts = n
		}
	}
}

// Dealer runs deals. It is not safe for concurrent use because it owns its
// random source.
type Dealer struct {
	catalog     card.Catalog
	oracle      card.Oracle
	rules       Rules
	rng         random.Source
	observer    Observer
	maxAttempts int
	table       *Table
}

// NewDealer returns a dealer over the standard set. Without WithSource the
// dealer seeds itself from crypto/rand, falling back to the clock.
func NewDealer(opts ...Option) *Dealer {
	d := &Dealer{
		catalog:     card.Standard,
		oracle:      card.Standard,
		rules:       DefaultRules(),
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		seed, err := random.NewSeed()
		if err != nil {
			seed = time.Now().UnixNano()
		}
		d.rng = random.NewSeeded(seed)
	}
	d.table = NewTable(d.rules, d.oracle)
	return d
}

// Deal returns fresh players holding equal hands. custom, when non-empty,
// replaces the catalog deck; repeated kinds become distinct instances.
func (d *Dealer) Deal(players []Player, custom []card.Kind) []Player {
	return d.DealReport(players, custom).Players
}

// DealReport is Deal with the sizes and attempt count that produced it.
func (d *Dealer) DealReport(players []Player, custom []card.Kind) Report {
	if len(players) == 0 {
		return Report{Players: []Player{}}
	}

	pool := d.pool(len(players), custom)
	report := Report{
		PoolSize:        len(pool),
		InitialHandSize: len(pool) / len(players),
	}

	for size := report.InitialHandSize; size >= 0; size-- {
		hands, attempts, ok := d.dealSize(pool, len(players), size)
		report.Attempts += attempts
		if !ok {
			continue
		}
		report.HandSize = size
		report.Players = finalize(players, hands, d.oracle)
		if report.Reduced() && d.observer != nil {
			d.observer.HandSizeReduced(report.InitialHandSize, size)
		}
		return report
	}

	// Size 0 never fails; empty hands keep the result well formed regardless.
	report.Players = finalize(players, nil, d.oracle)
	return report
}

func (d *Dealer) pool(playerCount int, custom []card.Kind) []card.Instance {
	if len(custom) > 0 {
		return BuildCustomPool(custom)
	}
	return BuildPool(d.catalog, playerCount)
}

// dealSize makes up to maxAttempts attempts at size cards per player.
func (d *Dealer) dealSize(pool []card.Instance, playerCount, size int) ([][]card.Instance, int, bool) {
	if size == 0 {
		return make([][]card.Instance, playerCount), 0, true
	}

	n := playerCount * size
	draw := make([]card.Instance, len(pool))
	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		copy(draw, pool)
		d.rng.Shuffle(len(draw), func(i, j int) {
			draw[i], draw[j] = draw[j], draw[i]
		})
		if hands, ok := Assign(draw[:n], playerCount, size, d.table, d.rng); ok {
			return hands, attempt, true
		}
	}
	return nil, d.maxAttempts, false
}
