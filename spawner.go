package main

import (
	"math"
	"math/rand"
)

const (
	TelegraphTime = 1.2 // seconds between warning and monster

	BaseQuota      = 8    // baseline spawns per side in round 1
	QuotaGrowth    = 1.25 // quota multiplier per round
	BossRoundEvery = 5    // every Nth round is a boss round
	BossRoundCount = 2    // bosses spawned per side on a boss round

	BaselineSpawnCD  = 1.1  // seconds between baseline warnings
	ReinforceSpawnCD = 0.45 // reinforcements arrive at a faster cadence

	MaxMonstersPerSide = 40 // live monsters + pending warnings
)

// SpawnWarning telegraphs a monster before it materializes. Its position
// is fixed at creation; the monster appears there when T reaches zero.
type SpawnWarning struct {
	ID    uint64
	Side  int
	Type  MonsterType
	Round int
	X, Y  float64
	T     float64
}

// ToState converts to protocol state
func (w *SpawnWarning) ToState() WarningState {
	return WarningState{
		ID:   w.ID,
		Side: w.Side,
		Type: GetMonsterDef(w.Type).Name,
		X:    round1(w.X),
		Y:    round1(w.Y),
		T:    round1(w.T),
	}
}

// sideWave is the per-side spawn state for one wave
type sideWave struct {
	QuotaLeft int           // baseline spawns remaining
	SpawnCD   float64       // baseline cooldown
	Plan      []MonsterType // reinforcement plan, consumed front to back
	PlanCD    float64       // reinforcement cooldown
}

// IsBossRound reports whether the round replaces baseline spawns with bosses
func IsBossRound(round int) bool {
	return round%BossRoundEvery == 0
}

// BaselineQuota returns the per-side baseline spawn count for a round
func BaselineQuota(round int) int {
	if IsBossRound(round) {
		return BossRoundCount
	}
	return int(math.Ceil(BaseQuota * math.Pow(QuotaGrowth, float64(round-1))))
}

// rollMonsterType draws from the fixed weighted distribution over the
// common archetypes. Boss rounds force the round's boss type instead.
func rollMonsterType(round int, rng *rand.Rand) MonsterType {
	if IsBossRound(round) {
		return BossForRound(round)
	}
	total := 0
	for _, def := range MonsterDefs {
		total += def.Weight
	}
	roll := rng.Intn(total)
	for i, def := range MonsterDefs {
		roll -= def.Weight
		if roll < 0 {
			return MonsterType(i)
		}
	}
	return MonsterSlime
}

// spawnPos picks a telegraph position in the outer band of a side, away
// from the fence where the fighter tends to hold
func spawnPos(side int, radius float64, rng *rand.Rand) (float64, float64) {
	band := (FenceX - 2*ArenaPad) * 0.45
	x := ArenaPad + radius + rng.Float64()*band
	if side == SideRight {
		x = ArenaWidth - x
	}
	y := ArenaPad + radius + rng.Float64()*(ArenaHeight-2*(ArenaPad+radius))
	return x, y
}

// sideLoad counts live monsters plus pending warnings on a side
func (c *Core) sideLoad(side int) int {
	n := 0
	for _, m := range c.Monsters {
		if m.Alive && m.Side == side {
			n++
		}
	}
	for _, w := range c.Warnings {
		if w.Side == side {
			n++
		}
	}
	return n
}

// queueWarning creates a telegraphed spawn on a side, honoring the
// per-side monster ceiling. Returns false when the ceiling defers it.
func (c *Core) queueWarning(side int, t MonsterType) bool {
	if c.sideLoad(side) >= MaxMonstersPerSide {
		return false
	}
	x, y := spawnPos(side, GetMonsterDef(t).Radius, c.rng)
	c.Warnings = append(c.Warnings, &SpawnWarning{
		ID:    c.nextID(),
		Side:  side,
		Type:  t,
		Round: c.Round,
		X:     x,
		Y:     y,
		T:     TelegraphTime,
	})
	return true
}

// runSpawner advances both spawn tracks for one side
func (c *Core) runSpawner(dt float64, side int) {
	w := &c.waves[side]

	// Baseline track
	if w.SpawnCD > 0 {
		w.SpawnCD -= dt
	}
	if w.QuotaLeft > 0 && w.SpawnCD <= 0 {
		if c.queueWarning(side, rollMonsterType(c.Round, c.rng)) {
			w.QuotaLeft--
		}
		w.SpawnCD = BaselineSpawnCD
	}

	// Reinforcement track
	if w.PlanCD > 0 {
		w.PlanCD -= dt
	}
	if len(w.Plan) > 0 && w.PlanCD <= 0 {
		if c.queueWarning(side, w.Plan[0]) {
			w.Plan = w.Plan[1:]
		}
		w.PlanCD = ReinforceSpawnCD
	}
}

// tickWarnings counts down telegraphs and converts expired ones into
// monsters at their fixed positions
func (c *Core) tickWarnings(dt float64) {
	remaining := c.Warnings[:0]
	for _, w := range c.Warnings {
		w.T -= dt
		if w.T <= 0 {
			c.Monsters = append(c.Monsters, NewMonster(c.nextID(), w))
			continue
		}
		remaining = append(remaining, w)
	}
	c.Warnings = remaining
}
