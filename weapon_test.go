package main

import "testing"

func TestWeaponNamesRoundTrip(t *testing.T) {
	for i, def := range WeaponDefs {
		got, ok := WeaponTypeByName[def.Name]
		if !ok || got != WeaponType(i) {
			t.Errorf("weapon %q does not round-trip through the name map", def.Name)
		}
	}
	if _, ok := WeaponTypeByName["railgun"]; ok {
		t.Error("unknown names must not resolve")
	}
}

func TestWeaponDamageGrowsPerLevel(t *testing.T) {
	for w := WeaponBlaster; w <= WeaponLance; w++ {
		prev := 0
		for level := 0; level <= MaxWeaponLevel; level++ {
			dmg := WeaponDamage(w, level)
			if dmg < prev {
				t.Errorf("%s damage shrank at level %d: %d < %d",
					WeaponDefs[w].Name, level, dmg, prev)
			}
			prev = dmg
		}
		if WeaponDamage(w, MaxWeaponLevel) <= WeaponDamage(w, 0) {
			t.Errorf("%s max-level damage should exceed base", WeaponDefs[w].Name)
		}
	}
}

func TestWeaponCooldownShrinksPerLevel(t *testing.T) {
	for w := WeaponBlaster; w <= WeaponLance; w++ {
		for level := 1; level <= MaxWeaponLevel; level++ {
			if WeaponCooldown(w, level) >= WeaponCooldown(w, level-1) {
				t.Errorf("%s cooldown did not shrink at level %d", WeaponDefs[w].Name, level)
			}
		}
	}
}

func TestWeaponProjSpeedGrowsPerLevel(t *testing.T) {
	for w := WeaponBlaster; w <= WeaponLance; w++ {
		if WeaponProjSpeed(w, MaxWeaponLevel) <= WeaponProjSpeed(w, 0) {
			t.Errorf("%s projectile speed should grow with level", WeaponDefs[w].Name)
		}
	}
}

func TestOnlyLancePierces(t *testing.T) {
	for w, def := range WeaponDefs {
		wantPierce := WeaponType(w) == WeaponLance
		if (def.Pierce > 0) != wantPierce {
			t.Errorf("%s pierce = %d", def.Name, def.Pierce)
		}
	}
}

func TestGetWeaponDefFallback(t *testing.T) {
	if GetWeaponDef(WeaponNone).Name != "blaster" {
		t.Error("out-of-range weapon types fall back to the blaster def")
	}
	if GetWeaponDef(WeaponType(99)).Name != "blaster" {
		t.Error("out-of-range weapon types fall back to the blaster def")
	}
}
