package main

import (
	"path/filepath"
	"testing"
	"time"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCreateAccountAndLookup(t *testing.T) {
	db := testDB(t)

	id, err := db.CreateAccount("alice", "hash")
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	if id == 0 {
		t.Fatal("expected a non-zero account id")
	}

	acct, err := db.GetAccountByUsername("alice")
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if acct == nil || acct.ID != id || acct.PassHash != "hash" {
		t.Errorf("unexpected account row: %+v", acct)
	}

	missing, err := db.GetAccountByUsername("nobody")
	if err != nil {
		t.Fatalf("get missing account: %v", err)
	}
	if missing != nil {
		t.Error("missing account should be nil")
	}
}

func TestUsernameExists(t *testing.T) {
	db := testDB(t)
	db.CreateAccount("alice", "hash")

	exists, err := db.UsernameExists("alice")
	if err != nil || !exists {
		t.Errorf("alice should exist (err=%v)", err)
	}
	exists, err = db.UsernameExists("bob")
	if err != nil || exists {
		t.Errorf("bob should not exist (err=%v)", err)
	}
}

func TestNewAccountHasEmptyStats(t *testing.T) {
	db := testDB(t)
	id, _ := db.CreateAccount("alice", "hash")

	stats, err := db.GetStats(id)
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if stats == nil {
		t.Fatal("account creation should seed a stats row")
	}
	if stats.Wins != 0 || stats.Losses != 0 || stats.Kills != 0 || stats.BestRound != 0 {
		t.Errorf("fresh stats should be zero: %+v", stats)
	}
}

func TestRecordMatchFoldsStats(t *testing.T) {
	db := testDB(t)
	winID, _ := db.CreateAccount("winner", "hash")
	loseID, _ := db.CreateAccount("loser", "hash")

	err := db.RecordMatch(MatchResult{
		Winner:   "left",
		Rounds:   7,
		Duration: 310.5,
		Seats: [2]SeatResult{
			{AccountID: winID, Side: "left", Kills: 42, Score: 900, GoldEarned: 350, Won: true},
			{AccountID: loseID, Side: "right", Kills: 30, Score: 640, GoldEarned: 280, Won: false},
		},
	})
	if err != nil {
		t.Fatalf("record match: %v", err)
	}

	win, _ := db.GetStats(winID)
	if win.Wins != 1 || win.Losses != 0 {
		t.Errorf("winner w/l = %d/%d, want 1/0", win.Wins, win.Losses)
	}
	if win.Kills != 42 || win.GoldEarned != 350 || win.BestRound != 7 {
		t.Errorf("winner stats not folded: %+v", win)
	}

	lose, _ := db.GetStats(loseID)
	if lose.Wins != 0 || lose.Losses != 1 {
		t.Errorf("loser w/l = %d/%d, want 0/1", lose.Wins, lose.Losses)
	}
}

func TestRecordMatchBestRoundIsMax(t *testing.T) {
	db := testDB(t)
	id, _ := db.CreateAccount("alice", "hash")

	seat := SeatResult{AccountID: id, Side: "left", Won: true}
	db.RecordMatch(MatchResult{Winner: "left", Rounds: 9, Seats: [2]SeatResult{seat, {Side: "right"}}})
	db.RecordMatch(MatchResult{Winner: "left", Rounds: 4, Seats: [2]SeatResult{seat, {Side: "right"}}})

	stats, _ := db.GetStats(id)
	if stats.BestRound != 9 {
		t.Errorf("best round = %d, want the max 9", stats.BestRound)
	}
	if stats.Wins != 2 {
		t.Errorf("wins = %d, want 2", stats.Wins)
	}
}

func TestRecordMatchGuestSeatsSkipped(t *testing.T) {
	db := testDB(t)
	err := db.RecordMatch(MatchResult{
		Winner: "right",
		Rounds: 3,
		Seats: [2]SeatResult{
			{AccountID: 0, Side: "left"},
			{AccountID: 0, Side: "right", Won: true},
		},
	})
	if err != nil {
		t.Fatalf("guest-only match should record: %v", err)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	db := testDB(t)

	if got := db.GetSetting("missing"); got != "" {
		t.Errorf("missing setting = %q, want empty", got)
	}
	if err := db.SetSetting("k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := db.GetSetting("k"); got != "v1" {
		t.Errorf("setting = %q, want v1", got)
	}
	// Upsert
	if err := db.SetSetting("k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if got := db.GetSetting("k"); got != "v2" {
		t.Errorf("setting = %q, want v2", got)
	}
}

func TestInsertEventsBatch(t *testing.T) {
	db := testDB(t)
	now := time.Now().UTC()
	events := []AnalyticsEvent{
		{Type: EvtMatchStart, AccountID: 1, Timestamp: now},
		{Type: EvtMatchEnd, AccountID: 1, Data: `{"winner":"left"}`, Timestamp: now},
		{Type: EvtSessionStart, SessionID: "s1", Timestamp: now},
	}
	if err := db.InsertEvents(events); err != nil {
		t.Fatalf("insert events: %v", err)
	}

	var n int
	if err := db.conn.QueryRow("SELECT COUNT(*) FROM events").Scan(&n); err != nil {
		t.Fatalf("count events: %v", err)
	}
	if n != 3 {
		t.Errorf("stored %d events, want 3", n)
	}
}

func TestAnalyticsFlushOnStop(t *testing.T) {
	db := testDB(t)
	a := NewAnalytics(db)
	a.Track(EvtPurchase, 1, "", `{"action":"upgrade"}`)
	a.Track(EvtMatchEnd, 1, "", "")
	a.Stop() // drains and flushes the batch

	var n int
	if err := db.conn.QueryRow("SELECT COUNT(*) FROM events").Scan(&n); err != nil {
		t.Fatalf("count events: %v", err)
	}
	if n != 2 {
		t.Errorf("stored %d events, want 2", n)
	}
}
