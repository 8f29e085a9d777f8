package main

import (
	"math"
	"math/rand"
)

const bulletRadius = 4.0

// Bullet is a fighter-owned projectile. Pierce counts the extra monsters
// it may damage after the first hit.
type Bullet struct {
	ID     uint64
	Owner  int // fighter id
	Side   int
	X, Y   float64
	VX, VY float64
	Damage int
	Weapon WeaponType
	Life   float64
	Pierce int
	Alive  bool
}

// NewBullets spawns one shot from a fighter: ProjCount bullets fanned
// around the aim vector, with random jitter inside the spread arc.
func NewBullets(nextID func() uint64, f *Fighter, rng *rand.Rand) []*Bullet {
	def := GetWeaponDef(f.Weapon)
	speed := WeaponProjSpeed(f.Weapon, f.WeaponLevel)
	dmg := f.Damage()
	aim := math.Atan2(f.AimY, f.AimX)

	bullets := make([]*Bullet, 0, def.ProjCount)
	for i := 0; i < def.ProjCount; i++ {
		angle := aim
		if def.ProjSpread > 0 {
			angle += (rng.Float64() - 0.5) * def.ProjSpread
		}
		bullets = append(bullets, &Bullet{
			ID:     nextID(),
			Owner:  f.ID,
			Side:   f.Side,
			X:      f.X + math.Cos(angle)*FighterRadius,
			Y:      f.Y + math.Sin(angle)*FighterRadius,
			VX:     math.Cos(angle) * speed,
			VY:     math.Sin(angle) * speed,
			Damage: dmg,
			Weapon: f.Weapon,
			Life:   def.ProjLife,
			Pierce: def.Pierce,
			Alive:  true,
		})
	}
	return bullets
}

// Update advances the bullet and culls it on timeout or out of bounds
func (b *Bullet) Update(dt float64) {
	if !b.Alive {
		return
	}
	b.X += b.VX * dt
	b.Y += b.VY * dt
	b.Life -= dt
	if b.Life <= 0 || !InsideArena(b.X, b.Y) {
		b.Alive = false
	}
}

// ToState converts to protocol state
func (b *Bullet) ToState() BulletState {
	return BulletState{
		ID:     b.ID,
		Owner:  b.Owner,
		Weapon: GetWeaponDef(b.Weapon).Name,
		X:      round1(b.X),
		Y:      round1(b.Y),
	}
}

// EnemyBullet is a spitter shot. It is side-scoped and must never cross
// the fence, so it can only ever threaten the fighter on its own side.
type EnemyBullet struct {
	ID     uint64
	Side   int
	X, Y   float64
	VX, VY float64
	Damage int
	Life   float64
	Alive  bool
}

// NewEnemyBullet aims a spitter shot at the target's position at cast time
func NewEnemyBullet(id uint64, m *Monster, targetX, targetY float64) *EnemyBullet {
	dx, dy := Normalize(targetX-m.X, targetY-m.Y)
	return &EnemyBullet{
		ID:     id,
		Side:   m.Side,
		X:      m.X + dx*m.Radius,
		Y:      m.Y + dy*m.Radius,
		VX:     dx * SpitterShotSpeed,
		VY:     dy * SpitterShotSpeed,
		Damage: SpitterShotDmg,
		Life:   SpitterShotLife,
		Alive:  true,
	}
}

// Update advances the shot; crossing the fence destroys it
func (e *EnemyBullet) Update(dt float64) {
	if !e.Alive {
		return
	}
	e.X += e.VX * dt
	e.Y += e.VY * dt
	e.Life -= dt
	if e.Life <= 0 || !InsideArena(e.X, e.Y) || !OnSide(e.Side, e.X) {
		e.Alive = false
	}
}

// ToState converts to protocol state
func (e *EnemyBullet) ToState() EnemyBulletState {
	return EnemyBulletState{
		ID: e.ID,
		X:  round1(e.X),
		Y:  round1(e.Y),
	}
}
