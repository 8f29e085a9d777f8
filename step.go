package main

// physicsStep advances one PLAYING tick. The order is fixed: spawner,
// fighter movement, aim/fire, monster movement and spitting, hazards,
// projectile integration, collision resolution, end-of-tick checks.
func (c *Core) physicsStep(dt float64, inputs map[int]InputState) {
	for side := 0; side < 2; side++ {
		c.runSpawner(dt, side)
	}
	c.tickWarnings(dt)

	for _, f := range c.Fighters {
		f.Update(dt, inputs[f.ID])
	}
	c.aimAndFire()

	for _, m := range c.Monsters {
		if m.Update(dt, c.fighterOnSide(m.Side), c.rng) {
			target := c.fighterOnSide(m.Side)
			c.EnemyBullets = append(c.EnemyBullets, NewEnemyBullet(c.nextID(), m, target.X, target.Y))
		}
	}

	for _, g := range c.Grenades {
		if g.Tick(dt) {
			c.explodeGrenade(g)
		}
	}

	for _, b := range c.Bullets {
		b.Update(dt)
	}
	for _, e := range c.EnemyBullets {
		e.Update(dt)
	}
	for _, d := range c.Drops {
		d.Update(dt)
	}

	c.resolveBulletHits()
	c.resolveEnemyBulletHits()
	c.resolveMelee()
	c.collectDrops()
	c.sweepDead()

	c.WaveLeft -= dt
	if c.WaveLeft <= 0 {
		c.endWave()
		return
	}

	p1, p2 := c.Fighters[0], c.Fighters[1]
	if !p1.Alive() || !p2.Alive() {
		switch {
		case p1.Alive():
			c.finish(SideName(p1.Side))
		case p2.Alive():
			c.finish(SideName(p2.Side))
		default:
			c.finish(WinnerDraw)
		}
	}
}

// aimAndFire points each fighter at the nearest living monster on their
// side and fires when the weapon cooldown allows. With no target the aim
// falls back toward the fence and the trigger stays untouched.
func (c *Core) aimAndFire() {
	for _, f := range c.Fighters {
		if !f.Alive() {
			continue
		}
		target := c.nearestMonster(f)
		if target == nil {
			f.AimX, f.AimY = 1, 0
			if f.Side == SideRight {
				f.AimX = -1
			}
			continue
		}
		f.AimX, f.AimY = Normalize(target.X-f.X, target.Y-f.Y)
		if f.CanFire() {
			c.Bullets = append(c.Bullets, NewBullets(c.nextID, f, c.rng)...)
			f.FireCD = f.Cooldown()
		}
	}
}

// nearestMonster returns the closest living monster on a fighter's side
func (c *Core) nearestMonster(f *Fighter) *Monster {
	var best *Monster
	bestD := 0.0
	for _, m := range c.Monsters {
		if !m.Alive || m.Side != f.Side {
			continue
		}
		d := DistanceSq(f.X, f.Y, m.X, m.Y)
		if best == nil || d < bestD {
			best = m
			bestD = d
		}
	}
	return best
}

// explodeGrenade applies falloff-scaled blast damage to every monster
// and fighter on the grenade's own side
func (c *Core) explodeGrenade(g *Grenade) {
	for _, m := range c.Monsters {
		if !m.Alive || m.Side != g.Side {
			continue
		}
		dmg := BlastDamage(GrenadeDamage, Distance(g.X, g.Y, m.X, m.Y))
		if dmg > 0 && m.TakeDamage(dmg) {
			c.killMonster(m, nil)
		}
	}
	for _, f := range c.Fighters {
		if !f.Alive() || f.Side != g.Side {
			continue
		}
		if dmg := BlastDamage(GrenadePlayerDmg, Distance(g.X, g.Y, f.X, f.Y)); dmg > 0 {
			f.TakeDamage(dmg)
		}
	}
}

// killMonster rolls loot and assigns kill credit. Credit is nil for
// grenade kills; melee clashes destroy the monster without coming here.
func (c *Core) killMonster(m *Monster, credit *Fighter) {
	c.Drops = append(c.Drops, RollDrops(c.nextID, m, c.rng)...)
	if credit != nil {
		credit.Kills++
		credit.Score += GetMonsterDef(m.Type).Score
	}
}

// resolveBulletHits damages same-side monsters hit by fighter bullets.
// Each bullet damages a given monster at most once per tick; the pierce
// budget is decremented by the number of monsters hit this tick and the
// bullet dies once it is exhausted.
func (c *Core) resolveBulletHits() {
	for _, b := range c.Bullets {
		if !b.Alive {
			continue
		}
		owner := c.fighter(b.Owner)
		hits := 0
		for _, m := range c.Monsters {
			if !m.Alive || m.Side != b.Side {
				continue
			}
			if !CheckCollision(b.X, b.Y, bulletRadius, m.X, m.Y, m.Radius) {
				continue
			}
			if m.TakeDamage(b.Damage) {
				c.killMonster(m, owner)
			}
			hits++
			if hits > b.Pierce {
				break
			}
		}
		if hits > 0 {
			b.Pierce -= hits
			if b.Pierce < 0 {
				b.Alive = false
			}
		}
	}
}

// resolveEnemyBulletHits damages the same-side fighter hit by spitter
// shots; the shot is consumed on impact
func (c *Core) resolveEnemyBulletHits() {
	for _, e := range c.EnemyBullets {
		if !e.Alive {
			continue
		}
		f := c.fighterOnSide(e.Side)
		if f == nil {
			continue
		}
		if CheckCollision(e.X, e.Y, bulletRadius, f.X, f.Y, FighterRadius) {
			f.TakeDamage(e.Damage)
			e.Alive = false
		}
	}
}

// resolveMelee destroys monsters that reach their fighter; the clash
// costs the fighter the monster's contact damage and no monster survives
func (c *Core) resolveMelee() {
	for _, m := range c.Monsters {
		if !m.Alive {
			continue
		}
		f := c.fighterOnSide(m.Side)
		if f == nil {
			continue
		}
		if CheckCollision(m.X, m.Y, m.Radius, f.X, f.Y, FighterRadius) {
			f.TakeDamage(GetMonsterDef(m.Type).ContactDmg)
			m.Alive = false
		}
	}
}

// collectDrops hands pickups within collect range to any living fighter
func (c *Core) collectDrops() {
	for _, d := range c.Drops {
		if !d.Alive {
			continue
		}
		for _, f := range c.Fighters {
			if !f.Alive() {
				continue
			}
			if InRadius(f.X, f.Y, d.X, d.Y, CollectRadius) {
				d.Collect(f)
				break
			}
		}
	}
}

// sweepDead filters dead entities so the next tick and the next snapshot
// only see the living
func (c *Core) sweepDead() {
	monsters := c.Monsters[:0]
	for _, m := range c.Monsters {
		if m.Alive {
			monsters = append(monsters, m)
		}
	}
	c.Monsters = monsters

	bullets := c.Bullets[:0]
	for _, b := range c.Bullets {
		if b.Alive {
			bullets = append(bullets, b)
		}
	}
	c.Bullets = bullets

	enemy := c.EnemyBullets[:0]
	for _, e := range c.EnemyBullets {
		if e.Alive {
			enemy = append(enemy, e)
		}
	}
	c.EnemyBullets = enemy

	grenades := c.Grenades[:0]
	for _, g := range c.Grenades {
		if g.Alive {
			grenades = append(grenades, g)
		}
	}
	c.Grenades = grenades

	drops := c.Drops[:0]
	for _, d := range c.Drops {
		if d.Alive {
			drops = append(drops, d)
		}
	}
	c.Drops = drops
}
