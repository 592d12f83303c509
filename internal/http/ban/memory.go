package ban

import (
	"context"
	"sync"
	"time"
)

type expiring struct {
	value   int64
	expires time.Time
}

// MemoryStore is the process-local Store used when no Redis address is configured.
type MemoryStore struct {
	mu      sync.Mutex
	now     func() time.Time
	strikes map[string]expiring
	bans    map[string]expiring
	log     []BanLogEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:     time.Now,
		strikes: map[string]expiring{},
		bans:    map[string]expiring{},
	}
}

func (s *MemoryStore) live(m map[string]expiring, key string) (expiring, bool) {
	e, ok := m[key]
	if !ok {
		return expiring{}, false
	}
	if !s.now().Before(e.expires) {
		delete(m, key)
		return expiring{}, false
	}
	return e, true
}

func (s *MemoryStore) IsBanned(_ context.Context, target string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.live(s.bans, target)
	return ok, nil
}

func (s *MemoryStore) Strike(_ context.Context, target string, ttl time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, _ := s.live(s.strikes, target)
	e.value++
	e.expires = s.now().Add(ttl)
	s.strikes[target] = e
	return e.value, nil
}

func (s *MemoryStore) Ban(_ context.Context, entry BanLogEntry, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bans[entry.Target] = expiring{value: entry.Strikes, expires: s.now().Add(ttl)}
	delete(s.strikes, entry.Target)
	s.log = append(s.log, entry)
	return nil
}

func (s *MemoryStore) DrainLog(context.Context) ([]BanLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.log
	s.log = nil
	return entries, nil
}
