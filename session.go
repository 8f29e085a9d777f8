package main

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const maxSessions = 100

// SessionIdleTimeout is how long an inactive session lives before the
// janitor collects it. A variable so integration tests can shrink it.
var SessionIdleTimeout = 10 * time.Minute

// Session is one match that two fighters (and any spectators) can join
type Session struct {
	ID         string
	Name       string
	Game       *Game
	lastActive time.Time
}

// SessionManager handles creation and lookup of sessions
type SessionManager struct {
	mu        sync.RWMutex
	sessions  map[string]*Session
	db        *DB
	analytics *Analytics
}

// NewSessionManager creates a new SessionManager and starts its janitor
func NewSessionManager(db *DB, analytics *Analytics) *SessionManager {
	sm := &SessionManager{
		sessions:  make(map[string]*Session),
		db:        db,
		analytics: analytics,
	}
	go sm.janitor()
	return sm
}

// CreateSession creates a new match session. Returns nil if limit reached.
func (sm *SessionManager) CreateSession(name string) *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if len(sm.sessions) >= maxSessions {
		return nil
	}

	game := NewGame(sm.db, sm.analytics)
	sess := &Session{
		ID:         uuid.NewString(),
		Name:       name,
		Game:       game,
		lastActive: time.Now(),
	}
	sm.sessions[sess.ID] = sess
	go game.Run()
	if sm.analytics != nil {
		sm.analytics.Track(EvtSessionStart, 0, sess.ID, "")
	}
	return sess
}

// GetSession returns a session by ID
func (sm *SessionManager) GetSession(id string) *Session {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.sessions[id]
}

// MarkActive refreshes a session's idle timer
func (sm *SessionManager) MarkActive(id string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sess, ok := sm.sessions[id]; ok {
		sess.lastActive = time.Now()
	}
}

// RemoveClient detaches a client from a session and collects the session
// once nobody is left
func (sm *SessionManager) RemoveClient(sessionID string, client Broadcaster) {
	sm.mu.RLock()
	sess, ok := sm.sessions[sessionID]
	sm.mu.RUnlock()
	if !ok {
		return
	}
	sess.Game.Remove(client)

	if sess.Game.WatcherCount() == 0 {
		sm.drop(sessionID)
	}
}

// ListSessions returns info about all active sessions
func (sm *SessionManager) ListSessions() []SessionInfo {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	list := make([]SessionInfo, 0, len(sm.sessions))
	for _, sess := range sm.sessions {
		list = append(list, SessionInfo{
			ID:       sess.ID,
			Name:     sess.Name,
			Fighters: sess.Game.FighterCount(),
			Watchers: sess.Game.WatcherCount(),
		})
	}
	return list
}

// Count returns the number of live sessions
func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

func (sm *SessionManager) drop(id string) {
	sm.mu.Lock()
	sess, ok := sm.sessions[id]
	if ok {
		delete(sm.sessions, id)
	}
	sm.mu.Unlock()
	if !ok {
		return
	}
	sess.Game.Stop()
	if sm.analytics != nil {
		sm.analytics.Track(EvtSessionEnd, 0, id, "")
	}
}

// janitor collects sessions idle past SessionIdleTimeout
func (sm *SessionManager) janitor() {
	for {
		time.Sleep(SessionIdleTimeout / 2)

		sm.mu.RLock()
		var stale []string
		now := time.Now()
		for id, sess := range sm.sessions {
			if sess.Game.WatcherCount() == 0 && now.Sub(sess.lastActive) > SessionIdleTimeout {
				stale = append(stale, id)
			}
		}
		sm.mu.RUnlock()

		for _, id := range stale {
			sm.drop(id)
		}
	}
}
