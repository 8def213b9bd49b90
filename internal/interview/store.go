package interview

import "sync"

// SessionStore owns all live sessions, keyed by user id. Implementations must
// be safe for concurrent use; serialization of read-modify-write cycles per
// user is the service's job, not the store's.
type SessionStore interface {
	Get(userID string) (*Session, bool)
	GetOrCreate(userID string) *Session
	Delete(userID string)
}

// MemoryStore is the in-process SessionStore used in production. Sessions live
// until the orchestrator deletes them on completion.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

func (s *MemoryStore) Get(userID string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[userID]
	return sess, ok
}

func (s *MemoryStore) GetOrCreate(userID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[userID]; ok {
		return sess
	}
	sess := &Session{UserID: userID}
	s.sessions[userID] = sess
	return sess
}

func (s *MemoryStore) Delete(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// userLocks hands out one mutex per user id so that concurrent messages from
// the same user are handled one at a time. Locks are never reclaimed; the map
// is bounded by the number of distinct users seen by this process.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *userLocks) forUser(userID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	if m, ok := l.locks[userID]; ok {
		return m
	}
	m := &sync.Mutex{}
	l.locks[userID] = m
	return m
}
