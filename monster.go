package main

import (
	"math"
	"math/rand"
)

const (
	MonsterHPGrowth    = 1.12 // hp multiplier per round
	MonsterSpeedGrowth = 1.04 // speed multiplier per round
	MonsterSpeedCap    = 1.6  // rounds never push speed beyond base * cap

	SpitterRange     = 260.0 // start spitting when a fighter is this close
	SpitterCDMin     = 1.6   // seconds, cooldown re-rolled in [min, max]
	SpitterCDMax     = 2.6
	SpitterShotSpeed = 220.0
	SpitterShotLife  = 2.5
	SpitterShotDmg   = 1
)

// MonsterType identifies a monster archetype
type MonsterType int

const (
	MonsterSlime MonsterType = iota
	MonsterWolf
	MonsterBrute
	MonsterSpitter
	MonsterOgre   // boss tier 1
	MonsterGolem  // boss tier 2
	MonsterDragon // boss tier 3
)

// MonsterDef holds the base stats for a monster archetype. HP and Speed
// are round-1 values; the spawner scales them up per round.
type MonsterDef struct {
	Name       string
	HP         int
	Speed      float64
	Radius     float64
	Gold       int // gold drop payload
	Score      int
	ContactDmg int // damage dealt to a fighter on melee contact
	Ranged     bool
	Boss       bool
	Weight     int // weighted random pick; 0 = only via reinforcements/boss rounds
	SendCost   int // shop price to send a pack; 0 = not sendable
}

var MonsterDefs = [...]MonsterDef{
	MonsterSlime:   {Name: "slime", HP: 5, Speed: 55, Radius: 14, Gold: 5, Score: 10, ContactDmg: 1, Weight: 50, SendCost: 25},
	MonsterWolf:    {Name: "wolf", HP: 4, Speed: 95, Radius: 13, Gold: 8, Score: 15, ContactDmg: 1, Weight: 25, SendCost: 40},
	MonsterBrute:   {Name: "brute", HP: 14, Speed: 40, Radius: 20, Gold: 12, Score: 25, ContactDmg: 2, Weight: 15, SendCost: 60},
	MonsterSpitter: {Name: "spitter", HP: 8, Speed: 45, Radius: 15, Gold: 10, Score: 20, ContactDmg: 1, Ranged: true, Weight: 10, SendCost: 50},
	MonsterOgre:    {Name: "ogre", HP: 70, Speed: 32, Radius: 30, Gold: 60, Score: 100, ContactDmg: 3, Boss: true},
	MonsterGolem:   {Name: "golem", HP: 140, Speed: 28, Radius: 34, Gold: 100, Score: 180, ContactDmg: 4, Boss: true},
	MonsterDragon:  {Name: "dragon", HP: 260, Speed: 36, Radius: 38, Gold: 160, Score: 300, ContactDmg: 5, Boss: true},
}

// MonsterTypeByName maps wire names to monster types
var MonsterTypeByName = map[string]MonsterType{}

func init() {
	for i, def := range MonsterDefs {
		MonsterTypeByName[def.Name] = MonsterType(i)
	}
}

// GetMonsterDef returns the definition for a monster type
func GetMonsterDef(t MonsterType) MonsterDef {
	if t < 0 || int(t) >= len(MonsterDefs) {
		return MonsterDefs[MonsterSlime]
	}
	return MonsterDefs[t]
}

// RoundHP returns a type's hp scaled for the given round
func RoundHP(t MonsterType, round int) int {
	base := float64(GetMonsterDef(t).HP)
	return int(math.Ceil(base * math.Pow(MonsterHPGrowth, float64(round-1))))
}

// RoundSpeed returns a type's speed scaled for the given round
func RoundSpeed(t MonsterType, round int) float64 {
	def := GetMonsterDef(t)
	mul := math.Pow(MonsterSpeedGrowth, float64(round-1))
	if mul > MonsterSpeedCap {
		mul = MonsterSpeedCap
	}
	return def.Speed * mul
}

// BossForRound returns the boss type for the given round; the tier steps
// up every 10 rounds
func BossForRound(round int) MonsterType {
	tier := round / 10
	if tier > 2 {
		tier = 2
	}
	return MonsterOgre + MonsterType(tier)
}

// Monster is a spawned enemy bound to one arena side
type Monster struct {
	ID     uint64
	Side   int
	Type   MonsterType
	X, Y   float64
	HP     int
	MaxHP  int
	Speed  float64
	Radius float64
	AtkCD  float64 // spitter attack cooldown
	Alive  bool
}

// NewMonster materializes a monster from an expired spawn warning
func NewMonster(id uint64, w *SpawnWarning) *Monster {
	def := GetMonsterDef(w.Type)
	hp := RoundHP(w.Type, w.Round)
	return &Monster{
		ID:     id,
		Side:   w.Side,
		Type:   w.Type,
		X:      w.X,
		Y:      w.Y,
		HP:     hp,
		MaxHP:  hp,
		Speed:  RoundSpeed(w.Type, w.Round),
		Radius: def.Radius,
		Alive:  true,
	}
}

// Update seeks the nearest living fighter on the monster's side and
// reports whether the monster wants to spit this tick. Monsters with no
// living target hold position.
func (m *Monster) Update(dt float64, target *Fighter, rng *rand.Rand) bool {
	if !m.Alive {
		return false
	}
	if m.AtkCD > 0 {
		m.AtkCD -= dt
	}
	if target == nil {
		return false
	}

	dx, dy := Normalize(target.X-m.X, target.Y-m.Y)
	m.X += dx * m.Speed * dt
	m.Y += dy * m.Speed * dt
	m.X, m.Y = ClampToSide(m.Side, m.X, m.Y, m.Radius)

	if !GetMonsterDef(m.Type).Ranged {
		return false
	}
	if m.AtkCD > 0 {
		return false
	}
	if DistanceSq(m.X, m.Y, target.X, target.Y) > SpitterRange*SpitterRange {
		return false
	}
	m.AtkCD = SpitterCDMin + rng.Float64()*(SpitterCDMax-SpitterCDMin)
	return true
}

// TakeDamage reduces HP and returns true if the monster died
func (m *Monster) TakeDamage(dmg int) bool {
	if !m.Alive {
		return false
	}
	m.HP -= dmg
	if m.HP <= 0 {
		m.HP = 0
		m.Alive = false
		return true
	}
	return false
}

// ToState converts to protocol state
func (m *Monster) ToState() MonsterState {
	return MonsterState{
		ID:    m.ID,
		Side:  m.Side,
		Type:  GetMonsterDef(m.Type).Name,
		X:     round1(m.X),
		Y:     round1(m.Y),
		HP:    m.HP,
		MaxHP: m.MaxHP,
	}
}
