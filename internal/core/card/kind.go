// Package card defines the card kinds of the standard set, their catalog
// metadata and the classification predicates the dealer consults.
package card

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a kind identifier is not in the set.
var ErrUnknownKind = errors.New("unknown card kind")

// Kind identifies a card category independent of how many copies exist.
type Kind uint8

const (
	KindLife Kind = iota
	KindSheriff
	KindBandit
	KindSpy
	KindHealer
	KindShaman
	KindVampire
	KindPhoenix
	KindGuardian
	KindCloudWalker
	KindReaper
	KindPlague
	KindCurse
	KindLeech
	KindSun
	KindMoon
	KindBomb
	KindGasMask
	KindChemist
	KindSwampMonster
	KindDrought
	KindFire
	KindSalt
	KindMud
	KindScout

	// KindCount is the number of kinds; it is not a kind itself.
	KindCount
)

var kindNames = [KindCount]string{
	KindLife:         "life",
	KindSheriff:      "sheriff",
	KindBandit:       "bandit",
	KindSpy:          "spy",
	KindHealer:       "healer",
	KindShaman:       "shaman",
	KindVampire:      "vampire",
	KindPhoenix:      "phoenix",
	KindGuardian:     "guardian",
	KindCloudWalker:  "cloud_walker",
	KindReaper:       "reaper",
	KindPlague:       "plague",
	KindCurse:        "curse",
	KindLeech:        "leech",
	KindSun:          "sun",
	KindMoon:         "moon",
	KindBomb:         "bomb",
	KindGasMask:      "gas_mask",
	KindChemist:      "chemist",
	KindSwampMonster: "swamp_monster",
	KindDrought:      "drought",
	KindFire:         "fire",
	KindSalt:         "salt",
	KindMud:          "mud",
	KindScout:        "scout",
}

// String returns the stable identifier used in custom decks and output.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Valid reports whether k is a member of the set.
func (k Kind) Valid() bool {
	return k < KindCount
}

// MarshalText encodes the kind as its identifier.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText decodes a kind identifier.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind resolves an identifier such as "cloud_walker". Matching is case
// insensitive and tolerates surrounding whitespace and dashes for underscores.
func ParseKind(raw string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = strings.ReplaceAll(name, "-", "_")
	for k, candidate := range kindNames {
		if candidate == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, raw)
}

// ParseKinds resolves every identifier in order, stopping at the first
// unknown one.
func ParseKinds(raw []string) ([]Kind, error) {
	kinds := make([]Kind, 0, len(raw))
	for _, r := range raw {
		k, err := ParseKind(r)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// AllKinds returns every kind in declaration order.
func AllKinds() []Kind {
	kinds := make([]Kind, KindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Instance is one physical copy of a kind. Number is 1-based and unique per
// kind within a single deal.
type Instance struct {
	Kind   Kind `json:"kind"`
	Number int  `json:"number"`
}

// String renders the instance as "kind#number".
func (i Instance) String() string {
	return fmt.Sprintf("%s#%d", i.Kind, i.Number)
}
