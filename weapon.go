package main

import "math"

// WeaponType identifies a fighter's weapon
type WeaponType int

const (
	WeaponNone     WeaponType = -1 // not chosen yet
	WeaponBlaster  WeaponType = 0
	WeaponScatter  WeaponType = 1
	WeaponRepeater WeaponType = 2
	WeaponLance    WeaponType = 3
)

const (
	MaxWeaponLevel = 5

	// Per-level growth applied on top of the base stats
	WeaponDamageGrowth = 1.25 // damage multiplier per level
	WeaponCDShrink     = 0.90 // cooldown multiplier per level
	WeaponSpeedGrowth  = 1.04 // projectile speed multiplier per level
)

// WeaponDef holds the base stats for a weapon
type WeaponDef struct {
	Name       string
	Damage     int
	FireCD     float64 // seconds between shots
	ProjSpeed  float64
	ProjCount  int     // projectiles per shot
	ProjSpread float64 // spread angle in radians (for scatter)
	Pierce     int     // extra monsters a bullet may damage after the first
	ProjLife   float64 // seconds
}

var WeaponDefs = [4]WeaponDef{
	// Blaster: balanced single shot
	{Name: "blaster", Damage: 3, FireCD: 0.45, ProjSpeed: 520, ProjCount: 1, ProjLife: 1.4},
	// Scatter: short-range pellet fan
	{Name: "scatter", Damage: 2, FireCD: 0.75, ProjSpeed: 440, ProjCount: 4, ProjSpread: 0.42, ProjLife: 0.8},
	// Repeater: rapid fire, low damage
	{Name: "repeater", Damage: 1, FireCD: 0.16, ProjSpeed: 560, ProjCount: 1, ProjLife: 1.2},
	// Lance: slow, heavy, pierces through the pack
	{Name: "lance", Damage: 6, FireCD: 1.1, ProjSpeed: 600, ProjCount: 1, Pierce: 2, ProjLife: 1.8},
}

// WeaponTypeByName maps wire names to weapon types
var WeaponTypeByName = map[string]WeaponType{}

func init() {
	for i, def := range WeaponDefs {
		WeaponTypeByName[def.Name] = WeaponType(i)
	}
}

// GetWeaponDef returns the base definition for a weapon
func GetWeaponDef(w WeaponType) WeaponDef {
	if w < 0 || int(w) >= len(WeaponDefs) {
		return WeaponDefs[WeaponBlaster]
	}
	return WeaponDefs[w]
}

// WeaponDamage returns the damage of a weapon at the given level
func WeaponDamage(w WeaponType, level int) int {
	base := float64(GetWeaponDef(w).Damage)
	return int(math.Round(base * math.Pow(WeaponDamageGrowth, float64(level))))
}

// WeaponCooldown returns the fire cooldown of a weapon at the given level
func WeaponCooldown(w WeaponType, level int) float64 {
	return GetWeaponDef(w).FireCD * math.Pow(WeaponCDShrink, float64(level))
}

// WeaponProjSpeed returns the projectile speed of a weapon at the given level
func WeaponProjSpeed(w WeaponType, level int) float64 {
	return GetWeaponDef(w).ProjSpeed * math.Pow(WeaponSpeedGrowth, float64(level))
}
