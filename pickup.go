package main

import "math/rand"

const (
	DropLife      = 12.0 // seconds before an uncollected drop fades
	DropRadius    = 10.0
	CollectRadius = 30.0 // fighter center to drop center

	GoldDropChance   = 0.55
	HeartDropChance  = 0.07
	PotionDropChance = 0.05
	HeartHeal        = 2
)

// DropKind distinguishes pickup payloads
type DropKind int

const (
	DropGold DropKind = iota
	DropHeart
	DropPotion
)

// Drop is an ephemeral pickup left behind by a dead monster
type Drop struct {
	ID     uint64
	Kind   DropKind
	X, Y   float64
	Amount int // gold amount or heal amount; unused for potions
	Life   float64
	Alive  bool
}

// NewDrop creates a pickup at a monster's death position
func NewDrop(id uint64, kind DropKind, x, y float64, amount int) *Drop {
	return &Drop{
		ID:     id,
		Kind:   kind,
		X:      x,
		Y:      y,
		Amount: amount,
		Life:   DropLife,
		Alive:  true,
	}
}

// RollDrops runs the independent loot rolls for a dead monster and
// returns the resulting pickups
func RollDrops(nextID func() uint64, m *Monster, rng *rand.Rand) []*Drop {
	def := GetMonsterDef(m.Type)
	var drops []*Drop
	if rng.Float64() < GoldDropChance {
		drops = append(drops, NewDrop(nextID(), DropGold, m.X, m.Y, def.Gold))
	}
	if rng.Float64() < HeartDropChance {
		drops = append(drops, NewDrop(nextID(), DropHeart, m.X+12, m.Y, HeartHeal))
	}
	if rng.Float64() < PotionDropChance {
		drops = append(drops, NewDrop(nextID(), DropPotion, m.X-12, m.Y, 0))
	}
	return drops
}

// Update ticks down the drop lifetime
func (d *Drop) Update(dt float64) {
	if !d.Alive {
		return
	}
	d.Life -= dt
	if d.Life <= 0 {
		d.Alive = false
	}
}

// Collect applies the payload to a fighter and consumes the drop
func (d *Drop) Collect(f *Fighter) {
	if !d.Alive {
		return
	}
	switch d.Kind {
	case DropGold:
		f.Gold += d.Amount
	case DropHeart:
		f.Heal(d.Amount)
	case DropPotion:
		f.BuffT = BuffDuration
	}
	d.Alive = false
}

// ToState converts to protocol state
func (d *Drop) ToState() DropState {
	return DropState{
		ID:     d.ID,
		X:      round1(d.X),
		Y:      round1(d.Y),
		Amount: d.Amount,
	}
}
