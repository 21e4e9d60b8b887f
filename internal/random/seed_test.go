package random

import (
	"errors"
	"testing"
)

func TestNewSeededIsDeterministic(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 16; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}

func TestNewSeededSatisfiesSource(t *testing.T) {
	var src Source = NewSeeded(1)
	values := []int{1, 2, 3, 4}
	src.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
	sum := 0
	for _, v := range values {
		sum += v
	}
	if sum != 10 {
		t.Fatalf("shuffle lost values: %v", values)
	}
}

func TestResolveSeedKeepsExplicitSeed(t *testing.T) {
	seed, err := ResolveSeed(7, func() (int64, error) {
		t.Fatal("generator should not be called")
		return 0, nil
	})
	if err != nil {
		t.Fatalf("ResolveSeed returned error: %v", err)
	}
	if seed != 7 {
		t.Fatalf("seed = %d, want 7", seed)
	}
}

func TestResolveSeedGeneratesWhenZero(t *testing.T) {
	seed, err := ResolveSeed(0, func() (int64, error) { return 123, nil })
	if err != nil {
		t.Fatalf("ResolveSeed returned error: %v", err)
	}
	if seed != 123 {
		t.Fatalf("seed = %d, want 123", seed)
	}
}

func TestResolveSeedPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	if _, err := ResolveSeed(0, func() (int64, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}
}

func TestNewSeed(t *testing.T) {
	if _, err := NewSeed(); err != nil {
		t.Fatalf("NewSeed returned error: %v", err)
	}
}
