package session

import (
	"sync"
	"time"

	"go_5_vocab_flash/internal/model"

	"github.com/google/uuid"
)

// Store はプロセス内でセッションを保持します。
// 一定時間アクセスのないセッションは Get/Create のついでに破棄する。
type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*model.Session
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*model.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get は既存のセッションを返します。なければ ok=false。
func (s *Store) Get(id uuid.UUID) (*model.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if s.expired(sess, now) {
		delete(s.sessions, id)
		return nil, false
	}
	sess.LastSeen = now
	return sess, true
}

// Create は新しいセッションを作成して登録します。
func (s *Store) Create() *model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictLocked(now)

	sess := model.NewSession(uuid.New(), now)
	s.sessions[sess.ID] = sess
	return sess
}

// Len は保持しているセッション数を返します。
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) expired(sess *model.Session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.LastSeen) > s.ttl
}

func (s *Store) evictLocked(now time.Time) {
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
		}
	}
}
