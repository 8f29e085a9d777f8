package main

import "math"

const (
	GrenadeFuse      = 1.5   // seconds after wave start
	GrenadeRadius    = 120.0 // blast radius
	GrenadeDamage    = 30    // max damage to a monster at the center
	GrenadePlayerDmg = 3     // max damage to a fighter at the center
)

// Grenade is a side-scoped delayed hazard bought in the shop and armed at
// the start of the target side's next wave. It explodes exactly once.
type Grenade struct {
	ID     uint64
	Side   int
	X, Y   float64
	Fuse   float64
	Alive  bool
}

// NewGrenade arms a grenade at the given position
func NewGrenade(id uint64, side int, x, y float64) *Grenade {
	return &Grenade{
		ID:    id,
		Side:  side,
		X:     x,
		Y:     y,
		Fuse:  GrenadeFuse,
		Alive: true,
	}
}

// Tick burns the fuse and reports whether the grenade explodes this tick
func (g *Grenade) Tick(dt float64) bool {
	if !g.Alive {
		return false
	}
	g.Fuse -= dt
	if g.Fuse <= 0 {
		g.Alive = false
		return true
	}
	return false
}

// BlastDamage returns falloff-scaled damage at distance d from the blast
// center: full at the center, linearly down to zero at the radius edge.
func BlastDamage(maxDmg int, d float64) int {
	if d >= GrenadeRadius {
		return 0
	}
	return int(math.Ceil(float64(maxDmg) * (1 - d/GrenadeRadius)))
}

// ToState converts to protocol state
func (g *Grenade) ToState() GrenadeState {
	return GrenadeState{
		ID:   g.ID,
		X:    round1(g.X),
		Y:    round1(g.Y),
		Fuse: round1(g.Fuse),
	}
}
