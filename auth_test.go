package main

import (
	"path/filepath"
	"testing"
)

func testAuth(t *testing.T) (*Auth, *DB) {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "auth.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewAuth(db), db
}

func TestRegisterAndLogin(t *testing.T) {
	auth, _ := testAuth(t)

	id, token, err := auth.Register("alice", "hunter2")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if id == 0 || token == "" {
		t.Fatal("register should return an account id and a token")
	}

	id2, token2, err := auth.Login("alice", "hunter2", "10.0.0.1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if id2 != id {
		t.Errorf("login id = %d, want %d", id2, id)
	}
	if token2 == "" {
		t.Error("login should return a token")
	}
}

func TestRegisterValidation(t *testing.T) {
	auth, _ := testAuth(t)

	if _, _, err := auth.Register("a", "hunter2"); err == nil {
		t.Error("too-short username should be rejected")
	}
	if _, _, err := auth.Register("waytoolongusername123", "hunter2"); err == nil {
		t.Error("too-long username should be rejected")
	}
	if _, _, err := auth.Register("alice", "ab"); err == nil {
		t.Error("too-short password should be rejected")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	auth, _ := testAuth(t)
	if _, _, err := auth.Register("alice", "hunter2"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := auth.Register("alice", "other"); err == nil {
		t.Error("duplicate username should be rejected")
	}
}

func TestLoginWrongCredentials(t *testing.T) {
	auth, _ := testAuth(t)
	auth.Register("alice", "hunter2")

	if _, _, err := auth.Login("alice", "wrong", "10.0.0.1"); err == nil {
		t.Error("wrong password should be rejected")
	}
	if _, _, err := auth.Login("nobody", "hunter2", "10.0.0.1"); err == nil {
		t.Error("unknown username should be rejected")
	}
}

func TestValidateTokenRoundTrip(t *testing.T) {
	auth, _ := testAuth(t)
	id, token, err := auth.Register("alice", "hunter2")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	gotID, gotUser, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if gotID != id || gotUser != "alice" {
		t.Errorf("token decoded to (%d, %q), want (%d, alice)", gotID, gotUser, id)
	}
}

func TestValidateGarbageToken(t *testing.T) {
	auth, _ := testAuth(t)
	if _, _, err := auth.ValidateToken("not.a.jwt"); err == nil {
		t.Error("garbage token should be rejected")
	}
	if _, _, err := auth.ValidateToken(""); err == nil {
		t.Error("empty token should be rejected")
	}
}

func TestLoginRateLimit(t *testing.T) {
	auth, _ := testAuth(t)
	auth.Register("alice", "hunter2")

	for i := 0; i < maxLoginAttempts; i++ {
		auth.Login("alice", "wrong", "10.0.0.9")
	}
	if _, _, err := auth.Login("alice", "hunter2", "10.0.0.9"); err == nil {
		t.Error("hammered IP should be rate limited even with correct credentials")
	}
	// A different IP is unaffected
	if _, _, err := auth.Login("alice", "hunter2", "10.0.0.10"); err != nil {
		t.Errorf("fresh IP should log in: %v", err)
	}
}

func TestJWTSecretPersists(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "secret.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	a1 := NewAuth(db)
	_, token, err := a1.Register("alice", "hunter2")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// A second Auth over the same DB must load the same secret
	a2 := NewAuth(db)
	if _, _, err := a2.ValidateToken(token); err != nil {
		t.Errorf("token should survive an auth restart: %v", err)
	}
}

func TestGenerateGuestName(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		name := GenerateGuestName()
		if len(name) != len("Guest_")+6 {
			t.Fatalf("unexpected guest name %q", name)
		}
		seen[name] = true
	}
	if len(seen) < 45 {
		t.Error("guest names should be effectively unique")
	}
}
