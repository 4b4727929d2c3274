package engine_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

func TestRandomizerBagPermutation(t *testing.T) {
	r := engine.NewRandomizer(rand.New(rand.NewSource(7)), 5)

	for bag := 0; bag < 50; bag++ {
		seen := make(map[engine.Kind]int)
		for i := 0; i < engine.KindCount; i++ {
			seen[r.Next()]++
		}
		require.Len(t, seen, engine.KindCount, "bag %d is not a permutation", bag)
		for k, n := range seen {
			assert.Equal(t, 1, n, "bag %d: kind %s drawn %d times", bag, k, n)
		}
	}
}

func TestRandomizerMaxGap(t *testing.T) {
	r := engine.NewRandomizer(rand.New(rand.NewSource(99)), 1)

	last := make(map[engine.Kind]int)
	for i := 0; i < engine.KindCount; i++ {
		last[engine.Kind(i)] = -1
	}
	for i := 0; i < 7000; i++ {
		k := r.Next()
		gap := i - last[k] - 1
		assert.LessOrEqual(t, gap, 13, "kind %s absent for %d draws", k, gap)
		last[k] = i
	}
}

func TestRandomizerPreviewLockstep(t *testing.T) {
	r := engine.NewRandomizer(rand.New(rand.NewSource(3)), 6)

	for i := 0; i < 40; i++ {
		before := r.Preview()
		require.Len(t, before, 6)

		got := r.Next()
		assert.Equal(t, before[0], got, "draw %d", i)

		after := r.Preview()
		assert.Equal(t, before[1:], after[:5], "draw %d", i)
	}
}

func TestRandomizerPreviewClamp(t *testing.T) {
	src := rand.New(rand.NewSource(1))

	assert.Equal(t, 1, engine.NewRandomizer(src, 0).PreviewSize())
	assert.Equal(t, engine.MaxPreview, engine.NewRandomizer(src, 42).PreviewSize())
}

func TestRandomizerDeterministic(t *testing.T) {
	a := engine.NewRandomizer(rand.New(rand.NewSource(12345)), 3)
	b := engine.NewRandomizer(rand.New(rand.NewSource(12345)), 3)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Next(), b.Next(), "draw %d diverged", i)
	}
}

func TestRandomizerBothBagsReshuffled(t *testing.T) {
	r := engine.NewRandomizer(rand.New(rand.NewSource(5)), 1)

	// Collect many bags; with reshuffling on every exhaustion both
	// alternating bags must eventually show more than one ordering.
	orders := [2]map[[engine.KindCount]engine.Kind]bool{{}, {}}
	for bag := 0; bag < 40; bag++ {
		var order [engine.KindCount]engine.Kind
		for i := range order {
			order[i] = r.Next()
		}
		orders[bag%2][order] = true
	}
	assert.Greater(t, len(orders[0]), 1)
	assert.Greater(t, len(orders[1]), 1)
}
