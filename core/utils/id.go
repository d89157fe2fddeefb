package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// GenerateID returns a short opaque identifier (notifications, snapshots).
func GenerateID() string {
	id, err := gonanoid.Generate(idAlphabet, 7)
	if err != nil {
		return ""
	}
	return id
}

// GenerateRandomString generates a cryptographically secure random string
func GenerateRandomString(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback to nanoid if crypto/rand fails
		id, _ := gonanoid.Generate(idAlphabet, length)
		return id
	}
	return base64.URLEncoding.EncodeToString(bytes)[:length]
}

// EventIDGenerator issues timestamp-derived event ids. Two calls within the
// same millisecond are disambiguated with a counter suffix, so ids stay
// unique within a process. The clock is injectable so tests can pin it.
type EventIDGenerator struct {
	mu      sync.Mutex
	now     func() time.Time
	lastMs  int64
	counter int
}

// NewEventIDGenerator creates a generator backed by the wall clock.
func NewEventIDGenerator() *EventIDGenerator {
	return NewEventIDGeneratorWithClock(time.Now)
}

// NewEventIDGeneratorWithClock creates a generator with a custom clock.
func NewEventIDGeneratorWithClock(now func() time.Time) *EventIDGenerator {
	return &EventIDGenerator{now: now}
}

// Next returns the next event id. The id is the millisecond unix timestamp,
// with "-<n>" appended for the n-th id issued in the same millisecond.
func (g *EventIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms == g.lastMs {
		g.counter++
	} else {
		g.lastMs = ms
		g.counter = 0
	}

	if g.counter == 0 {
		return fmt.Sprintf("%d", ms)
	}
	return fmt.Sprintf("%d-%d", ms, g.counter)
}

// Reset clears the same-millisecond state. Intended for tests.
func (g *EventIDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lastMs = 0
	g.counter = 0
}
