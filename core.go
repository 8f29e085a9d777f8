package main

import "math/rand"

// State is the match phase
type State int

const (
	StateSelect  State = 0 // waiting for both weapon choices
	StatePlaying State = 1
	StateShop    State = 2
	StateOver    State = 3
)

var stateNames = [4]string{"select", "playing", "shop", "over"}

// Name returns the wire name of a state
func (s State) Name() string {
	if s < 0 || int(s) >= len(stateNames) {
		return ""
	}
	return stateNames[s]
}

const (
	WaveDuration = 45.0 // seconds of PLAYING per round
	ShopDuration = 20.0 // seconds of SHOP between rounds
	WinnerDraw   = "draw"
)

// Core is the authoritative simulation for one match. It owns every
// entity and advances only inside Step; the host must not call Step
// concurrently with itself or with the action entry points.
type Core struct {
	State    State
	Round    int
	WaveLeft float64
	ShopLeft float64
	Winner   string // side name or "draw" once StateOver
	Tick     uint64

	Fighters     [2]*Fighter
	Monsters     []*Monster
	Bullets      []*Bullet
	EnemyBullets []*EnemyBullet
	Grenades     []*Grenade
	Drops        []*Drop
	Warnings     []*SpawnWarning

	waves          [2]sideWave
	queuedSends    [2][]MonsterType // monsters owed to that side's next wave
	queuedGrenades [2]int           // grenades owed to that side's next wave

	rng *rand.Rand
	nid uint64
}

// NewCore creates a fresh match in the weapon-select phase. The seed
// drives type selection, loot rolls and spread; pass a fixed seed in
// tests and time.Now().UnixNano() in production.
func NewCore(seed int64) *Core {
	c := &Core{
		State: StateSelect,
		rng:   rand.New(rand.NewSource(seed)),
	}
	c.Fighters[0] = NewFighter(1)
	c.Fighters[1] = NewFighter(2)
	return c
}

// nextID returns a fresh monotonically increasing entity id
func (c *Core) nextID() uint64 {
	c.nid++
	return c.nid
}

// fighter returns the slot for a player id, or nil for unknown ids
func (c *Core) fighter(playerID int) *Fighter {
	if playerID < 1 || playerID > 2 {
		return nil
	}
	return c.Fighters[playerID-1]
}

// fighterOnSide returns the living fighter defending a side, or nil
func (c *Core) fighterOnSide(side int) *Fighter {
	f := c.Fighters[side]
	if f.Alive() {
		return f
	}
	return nil
}

// ChooseWeapon registers a weapon pick during SELECT. The match starts
// the moment both fighters have chosen. Invalid ids, unknown weapons and
// wrong-phase calls are silent no-ops.
func (c *Core) ChooseWeapon(playerID int, weaponName string) {
	if c.State != StateSelect {
		return
	}
	f := c.fighter(playerID)
	if f == nil {
		return
	}
	w, ok := WeaponTypeByName[weaponName]
	if !ok {
		return
	}
	f.Weapon = w
	f.WeaponLevel = 0

	if c.Fighters[0].Weapon != WeaponNone && c.Fighters[1].Weapon != WeaponNone {
		c.Round = 1
		c.beginWave()
	}
}

// Ready marks a fighter ready to end the shop phase early
func (c *Core) Ready(playerID int) {
	c.ShopAction(playerID, ShopActionReady)
}

// DropPlayer applies disconnect semantics: a stale selection must not
// start the match, and a vacant side must not stall it forever.
func (c *Core) DropPlayer(playerID int) {
	f := c.fighter(playerID)
	if f == nil {
		return
	}
	switch c.State {
	case StateSelect:
		f.Weapon = WeaponNone
	case StatePlaying:
		f.HP = 0
	}
}

// Restart recreates the match from scratch. Valid only once the match is
// over; fighter names survive since the slots belong to the same seats.
func (c *Core) Restart() {
	if c.State != StateOver {
		return
	}
	names := [2]string{c.Fighters[0].Name, c.Fighters[1].Name}
	fresh := NewCore(c.rng.Int63())
	*c = *fresh
	c.Fighters[0].Name = names[0]
	c.Fighters[1].Name = names[1]
}

// SetName records the display name for a fighter slot
func (c *Core) SetName(playerID int, name string) {
	if f := c.fighter(playerID); f != nil {
		f.Name = name
	}
}

// Step advances the simulation by dt seconds. Inputs map player id to
// that tick's directional intent; missing entries mean no movement.
// Inputs are only honored while PLAYING.
func (c *Core) Step(dt float64, inputs map[int]InputState) {
	c.Tick++
	switch c.State {
	case StatePlaying:
		c.physicsStep(dt, inputs)
	case StateShop:
		c.ShopLeft -= dt
		if c.ShopLeft <= 0 || (c.Fighters[0].Ready && c.Fighters[1].Ready) {
			c.Round++
			c.beginWave()
		}
	}
}

// beginWave reinitializes wave-scoped state for the new round: baseline
// quotas, spawn cooldowns, the reinforcement plan consumed from the shop
// queues, and any bought grenades armed on the target side.
func (c *Core) beginWave() {
	for side := 0; side < 2; side++ {
		c.waves[side] = sideWave{
			QuotaLeft: BaselineQuota(c.Round),
			Plan:      c.queuedSends[side],
		}
		c.queuedSends[side] = nil

		// Grenades land scattered around the defender's home ground
		for i := 0; i < c.queuedGrenades[side]; i++ {
			gx := ArenaWidth*0.25 + (c.rng.Float64()-0.5)*240
			if side == SideRight {
				gx = ArenaWidth*0.75 + (c.rng.Float64()-0.5)*240
			}
			gy := ArenaHeight/2 + (c.rng.Float64()-0.5)*320
			gx, gy = ClampToSide(side, gx, gy, GrenadeRadius/4)
			c.Grenades = append(c.Grenades, NewGrenade(c.nextID(), side, gx, gy))
		}
		c.queuedGrenades[side] = 0
	}
	for _, f := range c.Fighters {
		f.ResetForWave()
	}
	c.State = StatePlaying
	c.WaveLeft = WaveDuration
}

// endWave clears the field and opens the shop
func (c *Core) endWave() {
	c.Monsters = c.Monsters[:0]
	c.Bullets = c.Bullets[:0]
	c.EnemyBullets = c.EnemyBullets[:0]
	c.Grenades = c.Grenades[:0]
	c.Drops = c.Drops[:0]
	c.Warnings = c.Warnings[:0]
	for _, f := range c.Fighters {
		f.Ready = false
		f.Grenades = 0
	}
	c.State = StateShop
	c.ShopLeft = ShopDuration
}

// finish ends the match with the given winner
func (c *Core) finish(winner string) {
	c.State = StateOver
	c.Winner = winner
}
