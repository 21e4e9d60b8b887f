package card

// Phase is the part of the round in which a kind acts.
type Phase uint8

const (
	PhaseAny Phase = iota
	PhaseDay
	PhaseNight
)

// Entry is the static catalog metadata for one kind.
type Entry struct {
	Kind         Kind
	DefaultCount int
	Phase        Phase
	// GasMaskInstances lists the instance numbers that grant a gas mask.
	// A nil slice with GasMaskAll unset means no instance does.
	GasMaskInstances []int
	GasMaskAll       bool
}

// Catalog maps kinds to their default copy counts.
type Catalog interface {
	// Kinds returns the kinds the catalog deals, in deck order.
	Kinds() []Kind
	// DefaultCount returns how many copies of k a catalog deck holds.
	DefaultCount(k Kind) int
}

// Oracle classifies card instances.
type Oracle interface {
	GivesGasMask(k Kind, number int) bool
	IsNight(k Kind) bool
	IsDay(k Kind) bool
}

// Table is a catalog backed by a fixed entry list. It satisfies both Catalog
// and Oracle.
type Table struct {
	entries []Entry
	byKind  map[Kind]Entry
}

// NewTable indexes entries. Later entries for the same kind replace earlier
// ones in the index but keep their first position in deck order.
func NewTable(entries []Entry) *Table {
	t := &Table{byKind: make(map[Kind]Entry, len(entries))}
	for _, e := range entries {
		if _, seen := t.byKind[e.Kind]; !seen {
			t.entries = append(t.entries, e)
		}
		t.byKind[e.Kind] = e
	}
	for i, e := range t.entries {
		t.entries[i] = t.byKind[e.Kind]
	}
	return t
}

// Kinds returns the catalog kinds in deck order.
func (t *Table) Kinds() []Kind {
	kinds := make([]Kind, len(t.entries))
	for i, e := range t.entries {
		kinds[i] = e.Kind
	}
	return kinds
}

// DefaultCount returns the configured copy count, or 0 for unknown kinds.
func (t *Table) DefaultCount(k Kind) int {
	return t.byKind[k].DefaultCount
}

// GivesGasMask reports whether the given instance grants a gas mask.
func (t *Table) GivesGasMask(k Kind, number int) bool {
	e, ok := t.byKind[k]
	if !ok {
		return false
	}
	if e.GasMaskAll {
		return true
	}
	for _, n := range e.GasMaskInstances {
		if n == number {
			return true
		}
	}
	return false
}

// IsNight reports whether k acts at night. PhaseAny counts as both.
func (t *Table) IsNight(k Kind) bool {
	e, ok := t.byKind[k]
	return ok && (e.Phase == PhaseNight || e.Phase == PhaseAny)
}

// IsDay reports whether k acts during the day. PhaseAny counts as both.
func (t *Table) IsDay(k Kind) bool {
	e, ok := t.byKind[k]
	return ok && (e.Phase == PhaseDay || e.Phase == PhaseAny)
}

// StandardEntries returns the entries of the standard set.
func StandardEntries() []Entry {
	return []Entry{
		{Kind: KindLife, DefaultCount: 3, Phase: PhaseAny},
		{Kind: KindSheriff, DefaultCount: 1, Phase: PhaseNight},
		{Kind: KindBandit, DefaultCount: 1, Phase: PhaseNight},
		{Kind: KindSpy, DefaultCount: 1, Phase: PhaseNight},
		{Kind: KindHealer, DefaultCount: 1, Phase: PhaseDay},
		{Kind: KindShaman, DefaultCount: 1, Phase: PhaseNight},
		{Kind: KindVampire, DefaultCount: 1, Phase: PhaseNight},
		{Kind: KindPhoenix, DefaultCount: 1, Phase: PhaseDay},
		{Kind: KindGuardian, DefaultCount: 1, Phase: PhaseDay},
		{Kind: KindCloudWalker, DefaultCount: 3, Phase: PhaseNight},
		{Kind: KindReaper, DefaultCount: 1, Phase: PhaseNight},
		{Kind: KindPlague, DefaultCount: 1, Phase: PhaseDay},
		{Kind: KindCurse, DefaultCount: 1, Phase: PhaseNight},
		{Kind: KindLeech, DefaultCount: 1, Phase: PhaseNight},
		{Kind: KindSun, DefaultCount: 1, Phase: PhaseDay},
		{Kind: KindMoon, DefaultCount: 1, Phase: PhaseNight},
		{Kind: KindBomb, DefaultCount: 3, Phase: PhaseDay},
		{Kind: KindGasMask, DefaultCount: 2, Phase: PhaseAny, GasMaskAll: true},
		{Kind: KindChemist, DefaultCount: 2, Phase: PhaseDay, GasMaskInstances: []int{1}},
		{Kind: KindSwampMonster, DefaultCount: 1, Phase: PhaseNight},
		{Kind: KindDrought, DefaultCount: 1, Phase: PhaseDay},
		{Kind: KindFire, DefaultCount: 2, Phase: PhaseDay},
		{Kind: KindSalt, DefaultCount: 1, Phase: PhaseDay},
		{Kind: KindMud, DefaultCount: 4, Phase: PhaseAny},
		{Kind: KindScout, DefaultCount: 4, Phase: PhaseDay},
	}
}

// Standard is the catalog and oracle of the standard set.
var Standard = NewTable(StandardEntries())
