package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventIDGenerator(t *testing.T) {
	t.Run("should use the millisecond timestamp as the id", func(t *testing.T) {
		clock := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)
		g := NewEventIDGeneratorWithClock(func() time.Time { return clock })

		assert.Equal(t, "1741683600000", g.Next())
	})

	t.Run("should disambiguate ids within the same millisecond", func(t *testing.T) {
		clock := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)
		g := NewEventIDGeneratorWithClock(func() time.Time { return clock })

		first := g.Next()
		second := g.Next()
		third := g.Next()

		assert.Equal(t, "1741683600000", first)
		assert.Equal(t, "1741683600000-1", second)
		assert.Equal(t, "1741683600000-2", third)
	})

	t.Run("should reset the counter when the clock advances", func(t *testing.T) {
		clock := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)
		g := NewEventIDGeneratorWithClock(func() time.Time { return clock })

		g.Next()
		g.Next()
		clock = clock.Add(time.Millisecond)

		assert.Equal(t, "1741683600001", g.Next())
	})

	t.Run("should issue unique ids under concurrency", func(t *testing.T) {
		g := NewEventIDGenerator()
		const n = 200

		ids := make(chan string, n)
		for i := 0; i < n; i++ {
			go func() { ids <- g.Next() }()
		}

		seen := make(map[string]bool, n)
		for i := 0; i < n; i++ {
			id := <-ids
			assert.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}
	})
}

func TestGenerateID(t *testing.T) {
	t.Run("should generate short distinct ids", func(t *testing.T) {
		a := GenerateID()
		b := GenerateID()
		require.Len(t, a, 7)
		require.Len(t, b, 7)
		assert.NotEqual(t, a, b)
	})
}
