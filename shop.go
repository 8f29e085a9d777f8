package main

import "strings"

// Canonical shop action ids. Earlier protocol revisions carried aliases
// ("upgrade_weapon", "start_round"); only these names are accepted.
const (
	ShopActionUpgrade     = "upgrade"
	ShopActionHeal        = "heal"
	ShopActionSendBoss    = "send_boss"
	ShopActionSendGrenade = "send_grenade"
	ShopActionReady       = "ready"
	ShopSendPrefix        = "send:" // send:<monster name>
)

const (
	WeaponUpgradeCost  = 60
	HealCost           = 40
	HealAmount         = 4
	BossCost           = 150
	GrenadeCost        = 45
	MaxGrenadesPerShop = 3
	PackSize           = 5 // monsters per reinforcement pack
)

// ShopAction applies a purchase or ready signal during SHOP. Unknown
// actions, wrong-phase calls and unaffordable purchases are silent
// no-ops; gold never goes negative and purchases never apply partially.
func (c *Core) ShopAction(playerID int, action string) {
	if c.State != StateShop {
		return
	}
	f := c.fighter(playerID)
	if f == nil {
		return
	}
	oppSide := 1 - f.Side

	switch {
	case action == ShopActionUpgrade:
		if f.Weapon == WeaponNone || f.WeaponLevel >= MaxWeaponLevel {
			return
		}
		if c.spend(f, WeaponUpgradeCost) {
			f.WeaponLevel++
		}

	case action == ShopActionHeal:
		if f.HP >= f.MaxHP {
			return
		}
		if c.spend(f, HealCost) {
			f.Heal(HealAmount)
		}

	case action == ShopActionSendBoss:
		if c.spend(f, BossCost) {
			c.queuedSends[oppSide] = append(c.queuedSends[oppSide], BossForRound(c.Round+1))
		}

	case action == ShopActionSendGrenade:
		if f.Grenades >= MaxGrenadesPerShop {
			return
		}
		if c.spend(f, GrenadeCost) {
			f.Grenades++
			c.queuedGrenades[oppSide]++
		}

	case action == ShopActionReady:
		f.Ready = true

	case strings.HasPrefix(action, ShopSendPrefix):
		t, ok := MonsterTypeByName[strings.TrimPrefix(action, ShopSendPrefix)]
		if !ok {
			return
		}
		def := GetMonsterDef(t)
		if def.SendCost == 0 {
			return
		}
		if c.spend(f, def.SendCost) {
			for i := 0; i < PackSize; i++ {
				c.queuedSends[oppSide] = append(c.queuedSends[oppSide], t)
			}
		}
	}
}

// spend deducts a cost if the fighter can afford it
func (c *Core) spend(f *Fighter, cost int) bool {
	if f.Gold < cost {
		return false
	}
	f.Gold -= cost
	return true
}
