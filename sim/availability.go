// Package sim owns the fake demand model: per-section availability fractions
// that erode on a fixed tick, plus the queue countdown. The map readers (seat
// generator, ticket list, section coloring) only ever see snapshots; the
// driver here is the single writer.
package sim

import "math/rand"

// Availability maps a section id to its remaining supply fraction. 1 means
// fully available, anything at or below 0 means sold out. Missing ids read as
// fully available.
type Availability map[string]float64

// Of returns the fraction for a section, defaulting to 1.0 when the section
// has no entry.
func Of(m Availability, sectionID string) float64 {
	if m == nil {
		return 1.0
	}
	v, ok := m[sectionID]
	if !ok {
		return 1.0
	}
	return v
}

// SoldOut reports whether the section has no supply left.
func SoldOut(m Availability, sectionID string) bool {
	return Of(m, sectionID) <= 0
}

// Config tunes the demand simulation. Values outside sensible ranges are
// brought back in bounds by Normalize.
type Config struct {
	// DecayRate caps the random per-tick loss; each tick a live section
	// loses uniform(0, DecayRate).
	DecayRate float64
	// PresoldProb is the chance a section starts already sold out.
	PresoldProb float64
}

// DefaultConfig matches the fast-decay tuning of the demo.
func DefaultConfig() Config {
	return Config{DecayRate: 0.15, PresoldProb: 0.2}
}

// Normalize clamps the config into usable ranges, substituting defaults for
// non-positive decay.
func (c Config) Normalize() Config {
	if c.DecayRate <= 0 || c.DecayRate > 1 {
		c.DecayRate = DefaultConfig().DecayRate
	}
	if c.PresoldProb < 0 {
		c.PresoldProb = 0
	}
	if c.PresoldProb > 1 {
		c.PresoldProb = 1
	}
	return c
}

// Demand drives the availability decay. It is owned by the hosting page and
// ticked at ~1 Hz; everything downstream reads snapshots.
type Demand struct {
	cfg Config
	rng *rand.Rand
	m   Availability
}

// NewDemand seeds availability for the given section ids: most start fully
// available, a few start sold out.
func NewDemand(cfg Config, rng *rand.Rand, sectionIDs []string) *Demand {
	cfg = cfg.Normalize()
	d := &Demand{cfg: cfg, rng: rng, m: make(Availability, len(sectionIDs))}
	for _, id := range sectionIDs {
		if rng.Float64() < cfg.PresoldProb {
			d.m[id] = 0
		} else {
			d.m[id] = 1
		}
	}
	return d
}

// Tick erodes every live section by a random amount, flooring at zero.
// Availability never increases.
func (d *Demand) Tick() {
	for id, v := range d.m {
		if v <= 0 {
			continue
		}
		v -= d.rng.Float64() * d.cfg.DecayRate
		if v < 0 {
			v = 0
		}
		d.m[id] = v
	}
}

// Snapshot returns a copy safe to hand to readers; later ticks do not mutate
// it.
func (d *Demand) Snapshot() Availability {
	out := make(Availability, len(d.m))
	for id, v := range d.m {
		out[id] = v
	}
	return out
}

// Set overrides one section's fraction. Used by the demo reset and by tests.
func (d *Demand) Set(sectionID string, v float64) {
	d.m[sectionID] = v
}
