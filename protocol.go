package main

import "encoding/json"

// Client -> Server message types
const (
	MsgJoin     = "join"
	MsgLeave    = "leave"
	MsgInput    = "input"
	MsgCreate   = "create" // create session
	MsgList     = "list"   // list sessions
	MsgCheck    = "check"  // check if session exists
	MsgWeapon   = "choose_weapon"
	MsgShop     = "shop"
	MsgReady    = "ready"
	MsgRestart  = "restart"
	MsgRegister = "register"
	MsgLogin    = "login"
	MsgAuth     = "auth" // token re-auth
	MsgProfile  = "profile"
)

// Server -> Client message types
const (
	MsgState       = "state"
	MsgWelcome     = "welcome"
	MsgSessions    = "sessions"
	MsgJoined      = "joined"
	MsgCreated     = "created"
	MsgChecked     = "checked"
	MsgError       = "error"
	MsgAuthOK      = "auth_ok"
	MsgProfileData = "profile_data"
)

// Envelope wraps all outgoing messages with a type field
type Envelope struct {
	T    string      `json:"t"`
	Data interface{} `json:"d,omitempty"`
}

// InEnvelope is used for incoming messages — json.RawMessage avoids double-unmarshal
type InEnvelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// ClientInput is the per-player directional intent, sent at 20Hz
type ClientInput struct {
	Up    bool `json:"u"`
	Down  bool `json:"d"`
	Left  bool `json:"l"`
	Right bool `json:"r"`
}

// JoinMsg is sent when a player wants to join a session
type JoinMsg struct {
	Name      string `json:"name"`
	SessionID string `json:"sid"`
	Spectate  bool   `json:"spec,omitempty"`
}

// CreateMsg is sent when a player wants to create a session
type CreateMsg struct {
	Name        string `json:"name"`
	SessionName string `json:"sname"`
}

// WeaponMsg carries a weapon choice during SELECT
type WeaponMsg struct {
	Weapon string `json:"w"`
}

// ShopMsg carries a shop action id during SHOP
type ShopMsg struct {
	Action string `json:"a"`
}

// FighterState is broadcast per fighter slot
type FighterState struct {
	ID          int     `json:"id"`
	Side        string  `json:"sd"`
	Name        string  `json:"n"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	HP          int     `json:"hp"`
	MaxHP       int     `json:"mhp"`
	Gold        int     `json:"g"`
	Score       int     `json:"sc"`
	Kills       int     `json:"k"`
	Weapon      string  `json:"w,omitempty"` // empty until chosen
	WeaponLevel int     `json:"wl"`
	AimX        float64 `json:"ax"`
	AimY        float64 `json:"ay"`
	BuffT       float64 `json:"bt,omitempty"`
	Ready       bool    `json:"rdy,omitempty"`
}

// MonsterState is broadcast per monster
type MonsterState struct {
	ID    uint64  `json:"id"`
	Side  int     `json:"sd"`
	Type  string  `json:"tp"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	HP    int     `json:"hp"`
	MaxHP int     `json:"mhp"`
}

// BulletState is broadcast per fighter bullet
type BulletState struct {
	ID     uint64  `json:"id"`
	Owner  int     `json:"o"`
	Weapon string  `json:"w"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// EnemyBulletState is broadcast per spitter shot
type EnemyBulletState struct {
	ID uint64  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// GrenadeState is broadcast per armed grenade
type GrenadeState struct {
	ID   uint64  `json:"id"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Fuse float64 `json:"f"`
}

// DropState is broadcast per pickup
type DropState struct {
	ID     uint64  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Amount int     `json:"am,omitempty"`
}

// WarningState is broadcast per telegraphed spawn
type WarningState struct {
	ID   uint64  `json:"id"`
	Side int     `json:"sd"`
	Type string  `json:"tp"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	T    float64 `json:"t"`
}

// GameSnapshot is the full state broadcast. It is the only channel by
// which transport and rendering observe the simulation.
type GameSnapshot struct {
	State        string             `json:"st"`
	Round        int                `json:"rd"`
	WaveLeft     float64            `json:"wl"`
	ShopLeft     float64            `json:"sl"`
	Winner       string             `json:"win,omitempty"`
	Fighters     []FighterState     `json:"f"`
	Monsters     []MonsterState     `json:"m"`
	Bullets      []BulletState      `json:"b"`
	EnemyBullets []EnemyBulletState `json:"eb"`
	Grenades     []GrenadeState     `json:"gr"`
	Gold         []DropState        `json:"gd"`
	Hearts       []DropState        `json:"hd"`
	Potions      []DropState        `json:"pd"`
	Warnings     []WarningState     `json:"sw"`
	Tick         uint64             `json:"tick"`
}

// Snapshot serializes the full state for broadcast. Consumers must treat
// the result as read-only.
func (c *Core) Snapshot() GameSnapshot {
	snap := GameSnapshot{
		State:        c.State.Name(),
		Round:        c.Round,
		WaveLeft:     round1(c.WaveLeft),
		ShopLeft:     round1(c.ShopLeft),
		Winner:       c.Winner,
		Fighters:     make([]FighterState, 0, 2),
		Monsters:     make([]MonsterState, 0, len(c.Monsters)),
		Bullets:      make([]BulletState, 0, len(c.Bullets)),
		EnemyBullets: make([]EnemyBulletState, 0, len(c.EnemyBullets)),
		Grenades:     make([]GrenadeState, 0, len(c.Grenades)),
		Warnings:     make([]WarningState, 0, len(c.Warnings)),
		Tick:         c.Tick,
	}
	for _, f := range c.Fighters {
		snap.Fighters = append(snap.Fighters, f.ToState())
	}
	for _, m := range c.Monsters {
		snap.Monsters = append(snap.Monsters, m.ToState())
	}
	for _, b := range c.Bullets {
		snap.Bullets = append(snap.Bullets, b.ToState())
	}
	for _, e := range c.EnemyBullets {
		snap.EnemyBullets = append(snap.EnemyBullets, e.ToState())
	}
	for _, g := range c.Grenades {
		snap.Grenades = append(snap.Grenades, g.ToState())
	}
	for _, d := range c.Drops {
		switch d.Kind {
		case DropGold:
			snap.Gold = append(snap.Gold, d.ToState())
		case DropHeart:
			snap.Hearts = append(snap.Hearts, d.ToState())
		case DropPotion:
			snap.Potions = append(snap.Potions, d.ToState())
		}
	}
	for _, w := range c.Warnings {
		snap.Warnings = append(snap.Warnings, w.ToState())
	}
	return snap
}

// WelcomeMsg is sent to a player when they join
type WelcomeMsg struct {
	PlayerID int    `json:"pid"` // 0 for spectators
	Side     string `json:"sd,omitempty"`
}

// SessionInfo is used in the session list
type SessionInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Fighters int    `json:"fighters"`
	Watchers int    `json:"watchers"`
}

// ErrorMsg sends an error to the client
type ErrorMsg struct {
	Msg string `json:"msg"`
}

// CheckMsg is sent by a client to check if a session exists
type CheckMsg struct {
	SID string `json:"sid"`
}

// CheckedMsg is the response to a session check
type CheckedMsg struct {
	SID      string `json:"sid"`
	Exists   bool   `json:"exists"`
	Name     string `json:"name,omitempty"`
	Fighters int    `json:"fighters,omitempty"`
}

// RegisterMsg creates an account
type RegisterMsg struct {
	Username string `json:"u"`
	Password string `json:"p"`
}

// LoginMsg authenticates an account
type LoginMsg struct {
	Username string `json:"u"`
	Password string `json:"p"`
}

// AuthMsg re-authenticates with a stored token
type AuthMsg struct {
	Token string `json:"tok"`
}

// AuthOKMsg confirms authentication
type AuthOKMsg struct {
	Token    string `json:"tok"`
	Username string `json:"u"`
	PlayerID int64  `json:"pid"`
}

// ProfileDataMsg carries persisted account stats
type ProfileDataMsg struct {
	Username   string  `json:"u"`
	Wins       int     `json:"w"`
	Losses     int     `json:"l"`
	Kills      int     `json:"k"`
	GoldEarned int     `json:"g"`
	BestRound  int     `json:"br"`
	Playtime   float64 `json:"pt"`
}
