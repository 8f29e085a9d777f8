package main

const (
	FighterRadius = 16.0
	FighterMaxHP  = 10
	FighterSpeed  = 240.0 // pixels/s

	BuffDuration    = 8.0 // seconds of enrage from a potion
	BuffDamageMul   = 1.5
	BuffFireRateMul = 1.5
)

// InputState is the normalized per-tick directional intent for one fighter
type InputState struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// Fighter is one of the two fixed player slots. The record lives for the
// whole match; hp reaching 0 marks it defeated but never removes it.
type Fighter struct {
	ID          int // 1 or 2
	Side        int
	Name        string
	X, Y        float64
	HP          int
	MaxHP       int
	Gold        int
	Score       int
	Kills       int
	Weapon      WeaponType
	WeaponLevel int
	FireCD      float64
	AimX, AimY  float64 // unit aim vector
	BuffT       float64 // remaining enrage seconds
	Ready       bool    // shop-phase early-end flag
	Grenades    int     // grenades bought this shop phase
}

// NewFighter creates a fighter slot at its side's home position
func NewFighter(id int) *Fighter {
	side := SideLeft
	x := ArenaWidth * 0.25
	aimX := 1.0
	if id == 2 {
		side = SideRight
		x = ArenaWidth * 0.75
		aimX = -1.0
	}
	return &Fighter{
		ID:     id,
		Side:   side,
		X:      x,
		Y:      ArenaHeight / 2,
		HP:     FighterMaxHP,
		MaxHP:  FighterMaxHP,
		Weapon: WeaponNone,
		AimX:   aimX,
	}
}

// Update integrates movement from the directional intent and ticks timers
func (f *Fighter) Update(dt float64, in InputState) {
	if f.HP <= 0 {
		return
	}

	var mx, my float64
	if in.Up {
		my -= 1
	}
	if in.Down {
		my += 1
	}
	if in.Left {
		mx -= 1
	}
	if in.Right {
		mx += 1
	}
	mx, my = Normalize(mx, my)
	f.X += mx * FighterSpeed * dt
	f.Y += my * FighterSpeed * dt
	f.X, f.Y = ClampToSide(f.Side, f.X, f.Y, FighterRadius)

	if f.FireCD > 0 {
		f.FireCD -= dt
	}
	if f.BuffT > 0 {
		f.BuffT -= dt
		if f.BuffT < 0 {
			f.BuffT = 0
		}
	}
}

// Alive reports whether the fighter is still standing
func (f *Fighter) Alive() bool {
	return f.HP > 0
}

// TakeDamage reduces HP and returns true if the fighter went down
func (f *Fighter) TakeDamage(dmg int) bool {
	if f.HP <= 0 {
		return false
	}
	f.HP -= dmg
	if f.HP <= 0 {
		f.HP = 0
		return true
	}
	return false
}

// Heal restores HP capped at MaxHP. Defeated fighters cannot be healed.
func (f *Fighter) Heal(amount int) {
	if f.HP <= 0 {
		return
	}
	f.HP += amount
	if f.HP > f.MaxHP {
		f.HP = f.MaxHP
	}
}

// Damage returns the per-bullet damage with the current buff applied
func (f *Fighter) Damage() int {
	dmg := WeaponDamage(f.Weapon, f.WeaponLevel)
	if f.BuffT > 0 {
		dmg = int(float64(dmg) * BuffDamageMul)
	}
	return dmg
}

// Cooldown returns the fire cooldown with the current buff applied
func (f *Fighter) Cooldown() float64 {
	cd := WeaponCooldown(f.Weapon, f.WeaponLevel)
	if f.BuffT > 0 {
		cd /= BuffFireRateMul
	}
	return cd
}

// CanFire reports whether the fighter may spawn bullets this tick.
// A fighter without a chosen weapon never fires.
func (f *Fighter) CanFire() bool {
	return f.Alive() && f.Weapon != WeaponNone && f.FireCD <= 0
}

// ResetForWave clears shop-phase flags at the start of a new wave
func (f *Fighter) ResetForWave() {
	f.Ready = false
	f.Grenades = 0
	f.FireCD = 0
}

// ToState converts to protocol state
func (f *Fighter) ToState() FighterState {
	weapon := ""
	if f.Weapon != WeaponNone {
		weapon = GetWeaponDef(f.Weapon).Name
	}
	return FighterState{
		ID:          f.ID,
		Side:        SideName(f.Side),
		Name:        f.Name,
		X:           round1(f.X),
		Y:           round1(f.Y),
		HP:          f.HP,
		MaxHP:       f.MaxHP,
		Gold:        f.Gold,
		Score:       f.Score,
		Kills:       f.Kills,
		Weapon:      weapon,
		WeaponLevel: f.WeaponLevel,
		AimX:        round1(f.AimX),
		AimY:        round1(f.AimY),
		BuffT:       round1(f.BuffT),
		Ready:       f.Ready,
	}
}
