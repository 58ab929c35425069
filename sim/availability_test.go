package sim

import (
	"math/rand"
	"testing"
)

func TestOf_DefaultsToFullyAvailable(t *testing.T) {
	if got := Of(nil, "N113"); got != 1.0 {
		t.Fatalf("expected 1.0 for nil map, got %v", got)
	}
	m := Availability{"W101": 0.4}
	if got := Of(m, "N113"); got != 1.0 {
		t.Fatalf("expected 1.0 for missing id, got %v", got)
	}
	if got := Of(m, "W101"); got != 0.4 {
		t.Fatalf("expected 0.4, got %v", got)
	}
}

func TestSoldOut(t *testing.T) {
	m := Availability{"A": 0, "B": 0.01, "C": -0.2}
	if !SoldOut(m, "A") || !SoldOut(m, "C") {
		t.Fatal("expected A and C sold out")
	}
	if SoldOut(m, "B") || SoldOut(m, "missing") {
		t.Fatal("expected B and missing sections to be live")
	}
}

func TestDemand_TickOnlyDecreases(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	d := NewDemand(Config{DecayRate: 0.15, PresoldProb: 0}, rng, []string{"A", "B", "C"})

	prev := d.Snapshot()
	for i := 0; i < 50; i++ {
		d.Tick()
		next := d.Snapshot()
		for id, v := range next {
			if v > prev[id] {
				t.Fatalf("availability of %s increased: %v -> %v", id, prev[id], v)
			}
			if v < 0 {
				t.Fatalf("availability of %s went negative: %v", id, v)
			}
		}
		prev = next
	}

	// With a 0.15 cap, 50 ticks are more than enough to exhaust supply.
	for id, v := range prev {
		if v != 0 {
			t.Fatalf("expected %s drained after 50 ticks, got %v", id, v)
		}
	}
}

func TestDemand_PresoldProbability(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	d := NewDemand(Config{DecayRate: 0.15, PresoldProb: 1}, rng, []string{"A", "B"})
	snap := d.Snapshot()
	if snap["A"] != 0 || snap["B"] != 0 {
		t.Fatalf("expected everything presold, got %+v", snap)
	}

	d = NewDemand(Config{DecayRate: 0.15, PresoldProb: 0}, rng, []string{"A", "B"})
	snap = d.Snapshot()
	if snap["A"] != 1 || snap["B"] != 1 {
		t.Fatalf("expected everything fresh, got %+v", snap)
	}
}

func TestDemand_SnapshotIsIsolated(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	d := NewDemand(Config{DecayRate: 0.5, PresoldProb: 0}, rng, []string{"A"})
	snap := d.Snapshot()
	d.Tick()
	if snap["A"] != 1 {
		t.Fatalf("snapshot mutated by tick: %v", snap["A"])
	}
}

func TestConfigNormalize(t *testing.T) {
	c := Config{DecayRate: -1, PresoldProb: 2}.Normalize()
	if c.DecayRate != DefaultConfig().DecayRate {
		t.Fatalf("expected default decay, got %v", c.DecayRate)
	}
	if c.PresoldProb != 1 {
		t.Fatalf("expected presold clamped to 1, got %v", c.PresoldProb)
	}
}

func TestQueue_DrainsToZero(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	q := NewQueue(rng)
	if q.Position <= 0 {
		t.Fatalf("expected a positive starting position, got %d", q.Position)
	}
	ticks := 0
	for !q.Tick() {
		ticks++
		if ticks > 1000 {
			t.Fatal("queue never drained")
		}
	}
	if q.Position != 0 {
		t.Fatalf("expected position 0, got %d", q.Position)
	}
}
