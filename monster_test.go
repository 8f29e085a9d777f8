package main

import (
	"math/rand"
	"testing"
)

func TestMonsterNamesRoundTrip(t *testing.T) {
	for i, def := range MonsterDefs {
		got, ok := MonsterTypeByName[def.Name]
		if !ok || got != MonsterType(i) {
			t.Errorf("monster %q does not round-trip through the name map", def.Name)
		}
	}
}

func TestRoundHPScaling(t *testing.T) {
	if RoundHP(MonsterSlime, 1) != MonsterDefs[MonsterSlime].HP {
		t.Errorf("round 1 hp = %d, want base %d", RoundHP(MonsterSlime, 1), MonsterDefs[MonsterSlime].HP)
	}
	prev := 0
	for round := 1; round <= 15; round++ {
		hp := RoundHP(MonsterBrute, round)
		if hp < prev {
			t.Errorf("brute hp shrank at round %d: %d < %d", round, hp, prev)
		}
		prev = hp
	}
	if RoundHP(MonsterSlime, 10) <= MonsterDefs[MonsterSlime].HP {
		t.Error("late-round hp should exceed base")
	}
}

func TestRoundSpeedCapped(t *testing.T) {
	base := MonsterDefs[MonsterWolf].Speed
	if RoundSpeed(MonsterWolf, 1) != base {
		t.Errorf("round 1 speed = %f, want base %f", RoundSpeed(MonsterWolf, 1), base)
	}
	capped := base * MonsterSpeedCap
	if got := RoundSpeed(MonsterWolf, 100); got != capped {
		t.Errorf("round 100 speed = %f, want capped %f", got, capped)
	}
}

func TestMonsterSeeksFighter(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := &Monster{
		Side: SideLeft, Type: MonsterSlime,
		X: 100, Y: 300, Speed: 55, Radius: 14, Alive: true,
	}
	f := NewFighter(1) // at (320, 360)
	m.Update(1.0/60, f, rng)
	if m.X <= 100 || m.Y <= 300 {
		t.Errorf("monster should move toward the fighter, got (%f, %f)", m.X, m.Y)
	}
}

func TestMonsterClampedToOwnSide(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := &Monster{
		Side: SideLeft, Type: MonsterWolf,
		X: FenceX - 14, Y: 360, Speed: 5000, Radius: 13, Alive: true,
	}
	f := NewFighter(2) // right-side fighter as a wrong-side lure
	f.Side = SideLeft  // pretend it wandered; clamp must still hold the monster
	f.X = ArenaWidth * 0.75
	for i := 0; i < 30; i++ {
		m.Update(1.0/60, f, rng)
		if m.X > FenceX-m.Radius {
			t.Fatalf("monster crossed the fence: x=%f", m.X)
		}
	}
}

func TestSpitterFiresInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := &Monster{
		Side: SideLeft, Type: MonsterSpitter,
		X: 200, Y: 300, Speed: 45, Radius: 15, Alive: true,
	}
	f := NewFighter(1)
	f.X, f.Y = 300, 300 // well inside SpitterRange

	if !m.Update(1.0/60, f, rng) {
		t.Fatal("spitter in range with a cold cooldown should fire")
	}
	if m.AtkCD < SpitterCDMin || m.AtkCD > SpitterCDMax {
		t.Errorf("cooldown %f outside [%f, %f]", m.AtkCD, SpitterCDMin, SpitterCDMax)
	}
	if m.Update(1.0/60, f, rng) {
		t.Error("spitter must respect its cooldown")
	}
}

func TestSpitterHoldsFireOutOfRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := &Monster{
		Side: SideLeft, Type: MonsterSpitter,
		X: 50, Y: 50, Speed: 0, Radius: 15, Alive: true,
	}
	f := NewFighter(1)
	f.X, f.Y = 600, 690 // beyond SpitterRange
	if m.Update(1.0/60, f, rng) {
		t.Error("spitter out of range must not fire")
	}
}

func TestMeleeTypesNeverSpit(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := &Monster{
		Side: SideLeft, Type: MonsterSlime,
		X: 200, Y: 300, Speed: 55, Radius: 14, Alive: true,
	}
	f := NewFighter(1)
	f.X, f.Y = 210, 300
	for i := 0; i < 10; i++ {
		if m.Update(1.0/60, f, rng) {
			t.Fatal("melee monsters never spit")
		}
	}
}

func TestMonsterTakeDamage(t *testing.T) {
	m := &Monster{Type: MonsterSlime, HP: 5, MaxHP: 5, Alive: true}
	if m.TakeDamage(3) {
		t.Error("surviving hit reported as a kill")
	}
	if m.HP != 2 {
		t.Errorf("hp = %d, want 2", m.HP)
	}
	if !m.TakeDamage(5) {
		t.Error("lethal hit should report the kill")
	}
	if m.HP != 0 || m.Alive {
		t.Error("dead monster should be at 0 hp and not alive")
	}
	if m.TakeDamage(1) {
		t.Error("a corpse cannot die twice")
	}
}

func TestNewMonsterInheritsWarning(t *testing.T) {
	w := &SpawnWarning{Side: SideRight, Type: MonsterBrute, Round: 3, X: 900, Y: 400}
	m := NewMonster(7, w)
	if m.Side != SideRight || m.X != 900 || m.Y != 400 {
		t.Error("monster should materialize where the warning stood")
	}
	if m.HP != RoundHP(MonsterBrute, 3) {
		t.Errorf("hp = %d, want %d", m.HP, RoundHP(MonsterBrute, 3))
	}
	if m.Speed != RoundSpeed(MonsterBrute, 3) {
		t.Errorf("speed = %f, want %f", m.Speed, RoundSpeed(MonsterBrute, 3))
	}
	if !m.Alive {
		t.Error("new monsters spawn alive")
	}
}

func TestSendableMonstersHaveCosts(t *testing.T) {
	for _, def := range MonsterDefs {
		if def.Boss && def.SendCost != 0 {
			t.Errorf("boss %q must not be directly sendable", def.Name)
		}
		if def.Boss && def.Weight != 0 {
			t.Errorf("boss %q must not appear in the baseline roll", def.Name)
		}
		if !def.Boss && def.SendCost == 0 {
			t.Errorf("common monster %q should be sendable", def.Name)
		}
	}
}
