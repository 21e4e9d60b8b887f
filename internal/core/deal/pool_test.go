package deal

import (
	"testing"

	"github.com/louisbranch/swampdeck/internal/core/card"
)

func TestBuildCustomPoolNumbersRepeats(t *testing.T) {
	pool := BuildCustomPool([]card.Kind{card.KindLife, card.KindLife, card.KindSheriff, card.KindLife})
	want := []card.Instance{
		{Kind: card.KindLife, Number: 1},
		{Kind: card.KindLife, Number: 2},
		{Kind: card.KindSheriff, Number: 1},
		{Kind: card.KindLife, Number: 3},
	}
	if len(pool) != len(want) {
		t.Fatalf("pool size = %d, want %d", len(pool), len(want))
	}
	for i := range want {
		if pool[i] != want[i] {
			t.Fatalf("pool[%d] = %v, want %v", i, pool[i], want[i])
		}
	}
}

func TestBuildCustomPoolSkipsInvalidKinds(t *testing.T) {
	pool := BuildCustomPool([]card.Kind{card.KindMud, card.KindCount, card.KindMud})
	if len(pool) != 2 || pool[1] != (card.Instance{Kind: card.KindMud, Number: 2}) {
		t.Fatalf("pool = %v", pool)
	}
}

func TestEffectiveCount(t *testing.T) {
	tests := []struct {
		players int
		want    int
	}{
		{players: 0, want: 3},
		{players: 1, want: 1},
		{players: 2, want: 1},
		{players: 3, want: 1},
		{players: 4, want: 1},
		{players: 5, want: 2},
		{players: 6, want: 2},
		{players: 9, want: 3},
		{players: 10, want: 3},
		{players: 11, want: 4},
	}
	for _, tt := range tests {
		if got := EffectiveCount(card.Standard, PopulationKind, tt.players); got != tt.want {
			t.Errorf("EffectiveCount(life, %d) = %d, want %d", tt.players, got, tt.want)
		}
	}
	if got := EffectiveCount(card.Standard, card.KindMud, 9); got != 4 {
		t.Fatalf("EffectiveCount(mud, 9) = %d, want catalog default 4", got)
	}
}

func TestBuildPoolFollowsCatalogOrder(t *testing.T) {
	catalog := card.NewTable([]card.Entry{
		{Kind: card.KindMud, DefaultCount: 2},
		{Kind: card.KindLife, DefaultCount: 3},
		{Kind: card.KindSun, DefaultCount: 1},
	})
	pool := BuildPool(catalog, 6)
	want := []card.Instance{
		{Kind: card.KindMud, Number: 1},
		{Kind: card.KindMud, Number: 2},
		{Kind: card.KindLife, Number: 1},
		{Kind: card.KindLife, Number: 2},
		{Kind: card.KindSun, Number: 1},
	}
	if len(pool) != len(want) {
		t.Fatalf("pool = %v, want %v", pool, want)
	}
	for i := range want {
		if pool[i] != want[i] {
			t.Fatalf("pool[%d] = %v, want %v", i, pool[i], want[i])
		}
	}
}

func TestBuildPoolStandardThreePlayers(t *testing.T) {
	pool := BuildPool(card.Standard, 3)
	if len(pool) != 38 {
		t.Fatalf("pool size = %d, want 38", len(pool))
	}
	lives := 0
	for _, c := range pool {
		if c.Kind == PopulationKind {
			lives++
		}
	}
	if lives != 1 {
		t.Fatalf("life instances = %d, want 1", lives)
	}
}
