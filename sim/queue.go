package sim

import "math/rand"

// Queue simulates the waiting-room position countdown shown before the seat
// map unlocks. Purely cosmetic: the position only ever shrinks.
type Queue struct {
	rng      *rand.Rand
	Position int
}

// NewQueue places the user at a random position in the low thousands.
func NewQueue(rng *rand.Rand) *Queue {
	return &Queue{rng: rng, Position: 1500 + rng.Intn(1500)}
}

// Tick drains a random chunk of the queue and reports whether the user has
// reached the front.
func (q *Queue) Tick() bool {
	if q.Position <= 0 {
		return true
	}
	q.Position -= 40 + q.rng.Intn(160)
	if q.Position < 0 {
		q.Position = 0
	}
	return q.Position == 0
}

// ETASeconds is a rough banner estimate derived from the current position.
func (q *Queue) ETASeconds() int {
	return q.Position / 100
}
