package main

import (
	"math/rand"
	"testing"
)

func TestBaselineQuotaGrowsEachRound(t *testing.T) {
	if BaselineQuota(1) != BaseQuota {
		t.Errorf("round 1 quota = %d, want %d", BaselineQuota(1), BaseQuota)
	}
	prev := 0
	for round := 1; round <= 20; round++ {
		if IsBossRound(round) {
			continue
		}
		q := BaselineQuota(round)
		if q <= prev {
			t.Errorf("round %d quota %d did not grow past %d", round, q, prev)
		}
		prev = q
	}
}

func TestBossRoundQuota(t *testing.T) {
	for _, round := range []int{5, 10, 15, 20} {
		if !IsBossRound(round) {
			t.Errorf("round %d should be a boss round", round)
		}
		if BaselineQuota(round) != BossRoundCount {
			t.Errorf("boss round %d quota = %d, want %d", round, BaselineQuota(round), BossRoundCount)
		}
	}
	for _, round := range []int{1, 3, 7, 12} {
		if IsBossRound(round) {
			t.Errorf("round %d should not be a boss round", round)
		}
	}
}

func TestBossTierSteps(t *testing.T) {
	tests := []struct {
		round int
		want  MonsterType
	}{
		{5, MonsterOgre},
		{10, MonsterGolem},
		{15, MonsterGolem},
		{20, MonsterDragon},
		{35, MonsterDragon}, // tier caps at dragon
	}
	for _, tt := range tests {
		if got := BossForRound(tt.round); got != tt.want {
			t.Errorf("BossForRound(%d) = %s, want %s",
				tt.round, GetMonsterDef(got).Name, GetMonsterDef(tt.want).Name)
		}
	}
}

func TestRollMonsterTypeOnBossRound(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		got := rollMonsterType(5, rng)
		if got != MonsterOgre {
			t.Fatalf("boss round rolled %s, want ogre", GetMonsterDef(got).Name)
		}
	}
}

func TestRollMonsterTypeNeverRollsBosses(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		got := rollMonsterType(3, rng)
		if GetMonsterDef(got).Boss {
			t.Fatalf("normal round rolled boss %s", GetMonsterDef(got).Name)
		}
	}
}

func TestSpawnPosStaysOnSideAwayFromFence(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		x, y := spawnPos(SideLeft, 14, rng)
		if x < ArenaPad || x > FenceX {
			t.Fatalf("left spawn x=%f out of side", x)
		}
		if y < ArenaPad || y > ArenaHeight-ArenaPad {
			t.Fatalf("spawn y=%f out of arena", y)
		}
		rx, _ := spawnPos(SideRight, 14, rng)
		if rx < FenceX || rx > ArenaWidth-ArenaPad {
			t.Fatalf("right spawn x=%f out of side", rx)
		}
	}
}

func TestWarningConvertsToMonsterAfterTelegraph(t *testing.T) {
	c := startPlaying(1)
	c.Warnings = c.Warnings[:0]
	if !c.queueWarning(SideLeft, MonsterWolf) {
		t.Fatal("queueWarning should succeed on an empty side")
	}
	w := c.Warnings[0]
	wx, wy := w.X, w.Y

	c.tickWarnings(TelegraphTime - 0.1)
	if len(c.Monsters) != 0 {
		t.Fatal("monster materialized before the telegraph expired")
	}
	if len(c.Warnings) != 1 {
		t.Fatal("warning vanished early")
	}

	c.tickWarnings(0.2)
	if len(c.Warnings) != 0 {
		t.Fatal("expired warning should be consumed")
	}
	if len(c.Monsters) != 1 {
		t.Fatal("expired warning should produce a monster")
	}
	m := c.Monsters[0]
	if m.Type != MonsterWolf || m.X != wx || m.Y != wy {
		t.Error("monster should materialize at the telegraph position")
	}
	if m.HP != RoundHP(MonsterWolf, c.Round) {
		t.Errorf("monster hp = %d, want %d", m.HP, RoundHP(MonsterWolf, c.Round))
	}
}

func TestMonsterCeilingDefersSpawns(t *testing.T) {
	c := startPlaying(1)
	for i := 0; i < MaxMonstersPerSide; i++ {
		makeMonsterAt(c, SideLeft, 200, 200, 100)
	}
	if c.queueWarning(SideLeft, MonsterSlime) {
		t.Error("a full side must defer new warnings")
	}
	if !c.queueWarning(SideRight, MonsterSlime) {
		t.Error("the other side is unaffected by the ceiling")
	}
}

func TestWarningsCountTowardCeiling(t *testing.T) {
	c := startPlaying(1)
	for i := 0; i < MaxMonstersPerSide; i++ {
		if !c.queueWarning(SideLeft, MonsterSlime) {
			t.Fatalf("warning %d should fit under the ceiling", i)
		}
	}
	if c.queueWarning(SideLeft, MonsterSlime) {
		t.Error("pending warnings must count toward the ceiling")
	}
}

func TestReinforcementPlanConsumedInOrder(t *testing.T) {
	c := startPlaying(1)
	c.Warnings = c.Warnings[:0]
	c.waves[SideLeft] = sideWave{
		QuotaLeft: 0,
		Plan:      []MonsterType{MonsterBrute, MonsterWolf},
	}

	c.runSpawner(0.01, SideLeft)
	if len(c.Warnings) != 1 || c.Warnings[0].Type != MonsterBrute {
		t.Fatal("first reinforcement should be the brute")
	}
	if len(c.waves[SideLeft].Plan) != 1 {
		t.Fatal("plan should be consumed front to back")
	}

	// Cadence gate: nothing until the reinforcement cooldown elapses
	c.runSpawner(0.01, SideLeft)
	if len(c.Warnings) != 1 {
		t.Fatal("reinforcements must respect their cadence")
	}
	c.runSpawner(ReinforceSpawnCD, SideLeft)
	if len(c.Warnings) != 2 || c.Warnings[1].Type != MonsterWolf {
		t.Fatal("second reinforcement should be the wolf")
	}
	if len(c.waves[SideLeft].Plan) != 0 {
		t.Error("plan should be empty once delivered")
	}
}

func TestBaselineTrackRespectsQuota(t *testing.T) {
	c := startPlaying(1)
	c.Warnings = c.Warnings[:0]
	c.waves[SideLeft] = sideWave{QuotaLeft: 2}

	for i := 0; i < 50; i++ {
		c.runSpawner(BaselineSpawnCD, SideLeft)
	}
	if len(c.Warnings) != 2 {
		t.Errorf("queued %d warnings, want the quota of 2", len(c.Warnings))
	}
	if c.waves[SideLeft].QuotaLeft != 0 {
		t.Errorf("quota left = %d, want 0", c.waves[SideLeft].QuotaLeft)
	}
}

func TestQueuedSendsArriveNextWave(t *testing.T) {
	c := startPlaying(1)
	enterShop(c)
	c.Fighters[0].Gold = MonsterDefs[MonsterSlime].SendCost
	c.ShopAction(1, "send:slime")
	c.Ready(1)
	c.Ready(2)
	c.Step(0.01, nil)

	if c.State != StatePlaying {
		t.Fatalf("expected playing, got %s", c.State.Name())
	}
	plan := c.waves[SideRight].Plan
	if len(plan) != PackSize {
		t.Fatalf("opponent plan has %d monsters, want %d", len(plan), PackSize)
	}
	for _, mt := range plan {
		if mt != MonsterSlime {
			t.Error("plan should carry the sent type")
		}
	}
	if len(c.waves[SideLeft].Plan) != 0 {
		t.Error("sends must land on the opponent's side only")
	}
}
