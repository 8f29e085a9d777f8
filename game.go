package main

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	TickRate       = 60 // simulation ticks per second
	BroadcastRate  = 30 // state broadcasts per second
	TickDuration   = time.Second / TickRate
	BroadcastEvery = TickRate / BroadcastRate

	// Inputs older than this are treated as neutral so a dropped client
	// never leaves a fighter running into the fence forever
	InputStaleAfter = 500 * time.Millisecond
)

// Broadcaster interface for sending messages to clients
type Broadcaster interface {
	SendJSON(msg interface{})
	SendBinary(data []byte)
}

// Game drives one match: it owns the Core, latches the freshest input
// per seat, advances the simulation on a fixed ticker and broadcasts
// msgpack state frames. The Core itself is single-threaded; the mutex
// serializes the tick against the websocket handlers.
type Game struct {
	mu       sync.RWMutex
	core     *Core
	watchers map[Broadcaster]bool // spectators and seated fighters alike
	seats    [2]Broadcaster       // fighter slot -> client, nil when vacant

	inputs  [2]ClientInput
	inputAt [2]time.Time

	tick     uint64
	running  bool
	stop     chan struct{}
	stopOnce sync.Once

	db         *DB
	analytics  *Analytics
	accountIDs [2]int64 // 0 = guest seat
	startedAt  time.Time
	recorded   bool
}

// NewGame creates a game with a time-seeded core
func NewGame(db *DB, analytics *Analytics) *Game {
	return &Game{
		core:      NewCore(time.Now().UnixNano()),
		watchers:  make(map[Broadcaster]bool),
		stop:      make(chan struct{}),
		db:        db,
		analytics: analytics,
	}
}

// Run starts the game loop
func (g *Game) Run() {
	g.mu.Lock()
	g.running = true
	g.mu.Unlock()

	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			g.update()
		case <-g.stop:
			return
		}
	}
}

// Stop terminates the game loop
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		g.running = false
		g.stopOnce.Do(func() { close(g.stop) })
	}
}

// AddFighter seats a client in the first vacant slot. Returns the player
// id (1 or 2) or 0 when both seats are taken.
func (g *Game) AddFighter(name string, client Broadcaster, accountID int64) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	for slot := 0; slot < 2; slot++ {
		if g.seats[slot] != nil {
			continue
		}
		g.seats[slot] = client
		g.accountIDs[slot] = accountID
		g.watchers[client] = true
		g.core.SetName(slot+1, name)
		return slot + 1
	}
	return 0
}

// AddWatcher registers a spectator
func (g *Game) AddWatcher(client Broadcaster) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.watchers[client] = true
}

// Remove detaches a client. A seated fighter's disconnect feeds the
// core's drop semantics: selection cleared in SELECT, hp zeroed in
// PLAYING so the match resolves instead of stalling.
func (g *Game) Remove(client Broadcaster) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.watchers, client)
	for slot := 0; slot < 2; slot++ {
		if g.seats[slot] == client {
			g.seats[slot] = nil
			g.accountIDs[slot] = 0
			g.core.DropPlayer(slot + 1)
		}
	}
}

// HandleInput latches the freshest directional intent for a seat
func (g *Game) HandleInput(playerID int, in ClientInput) {
	if playerID < 1 || playerID > 2 {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.inputs[playerID-1] = in
	g.inputAt[playerID-1] = time.Now()
}

// HandleWeapon forwards a weapon choice to the core
func (g *Game) HandleWeapon(playerID int, weapon string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	wasSelect := g.core.State == StateSelect
	g.core.ChooseWeapon(playerID, weapon)
	if wasSelect && g.core.State == StatePlaying {
		g.startedAt = time.Now()
		if g.analytics != nil {
			g.analytics.Track(EvtMatchStart, g.accountIDs[0], "", "")
			g.analytics.Track(EvtMatchStart, g.accountIDs[1], "", "")
		}
	}
}

// HandleShop forwards a shop action to the core
func (g *Game) HandleShop(playerID int, action string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	before := g.goldOf(playerID)
	g.core.ShopAction(playerID, action)
	if g.analytics != nil && g.goldOf(playerID) != before {
		g.analytics.Track(EvtPurchase, g.accountID(playerID), "", fmt.Sprintf(`{"action":%q}`, action))
	}
}

// HandleReady forwards a ready signal to the core
func (g *Game) HandleReady(playerID int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.core.Ready(playerID)
}

// HandleRestart restarts a finished match
func (g *Game) HandleRestart() {
	g.mu.Lock()
	defer g.mu.Unlock()
	wasOver := g.core.State == StateOver
	g.core.Restart()
	if wasOver && g.core.State == StateSelect {
		g.recorded = false
	}
}

// FighterCount returns the number of seated fighters
func (g *Game) FighterCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, s := range g.seats {
		if s != nil {
			n++
		}
	}
	return n
}

// WatcherCount returns the number of connected clients
func (g *Game) WatcherCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.watchers)
}

func (g *Game) goldOf(playerID int) int {
	if f := g.core.fighter(playerID); f != nil {
		return f.Gold
	}
	return 0
}

func (g *Game) accountID(playerID int) int64 {
	if playerID < 1 || playerID > 2 {
		return 0
	}
	return g.accountIDs[playerID-1]
}

// update runs one tick: sample inputs, step the core, record finished
// matches, broadcast at the reduced cadence
func (g *Game) update() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.tick++
	dt := 1.0 / float64(TickRate)

	now := time.Now()
	inputs := make(map[int]InputState, 2)
	for slot := 0; slot < 2; slot++ {
		if now.Sub(g.inputAt[slot]) > InputStaleAfter {
			continue // stale input means neutral intent
		}
		in := g.inputs[slot]
		inputs[slot+1] = InputState{Up: in.Up, Down: in.Down, Left: in.Left, Right: in.Right}
	}

	g.core.Step(dt, inputs)

	if g.core.State == StateOver && !g.recorded {
		g.recordResult()
		g.recorded = true
	}

	if g.tick%BroadcastEvery == 0 {
		g.broadcastState()
	}
}

// recordResult persists the finished match for any authenticated seats
func (g *Game) recordResult() {
	if g.analytics != nil {
		g.analytics.Track(EvtMatchEnd, g.accountIDs[0], "", fmt.Sprintf(`{"winner":%q}`, g.core.Winner))
	}
	if g.db == nil {
		return
	}
	duration := time.Since(g.startedAt).Seconds()
	result := MatchResult{
		Winner:   g.core.Winner,
		Rounds:   g.core.Round,
		Duration: duration,
	}
	for slot := 0; slot < 2; slot++ {
		f := g.core.Fighters[slot]
		result.Seats[slot] = SeatResult{
			AccountID:  g.accountIDs[slot],
			Side:       SideName(f.Side),
			Kills:      f.Kills,
			Score:      f.Score,
			GoldEarned: f.Gold,
			Won:        g.core.Winner == SideName(f.Side),
		}
	}
	if err := g.db.RecordMatch(result); err != nil {
		log.Printf("record match: %v", err)
	}
}

// broadcastState sends the current snapshot to all clients as a msgpack
// binary frame
func (g *Game) broadcastState() {
	snap := g.core.Snapshot()
	data, err := msgpack.Marshal(snap)
	if err != nil {
		log.Printf("msgpack marshal: %v", err)
		return
	}
	for client := range g.watchers {
		client.SendBinary(data)
	}
}
