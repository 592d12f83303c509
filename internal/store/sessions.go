package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/rogerio-castellano/commerce-dashboard/internal/repo"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Sessions hands out one Dashboard per identity subject. A session is seeded from
// the configured source the first time its subject shows up and lives until Close.
type Sessions struct {
	mu       sync.Mutex
	seed     repo.SeedSource
	opts     Options
	log      *zap.Logger
	sessions map[string]*Dashboard
	// seeding collapses concurrent first requests of one subject into a single load.
	seeding singleflight.Group
}

func NewSessions(seed repo.SeedSource, opts Options, log *zap.Logger) *Sessions {
	if seed == nil {
		seed = repo.EmbeddedSeed{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Sessions{
		seed:     seed,
		opts:     opts,
		log:      log,
		sessions: map[string]*Dashboard{},
	}
}

// Get returns the session of subject, creating and seeding it when needed. Seeding
// runs outside the registry lock, so a slow source only delays its own subject.
func (s *Sessions) Get(ctx context.Context, subject string) (*Dashboard, error) {
	if d, ok := s.lookup(subject); ok {
		return d, nil
	}

	v, err, _ := s.seeding.Do(subject, func() (any, error) {
		if d, ok := s.lookup(subject); ok {
			return d, nil
		}

		r := repo.NewInMemoryProductRepository()
		if err := repo.Seed(ctx, r, s.seed); err != nil {
			return nil, fmt.Errorf("seeding session: %w", err)
		}
		d := NewDashboard(r, s.opts, s.log.With(zap.String("subject", subject)))

		s.mu.Lock()
		s.sessions[subject] = d
		s.mu.Unlock()

		s.log.Info("dashboard session created", zap.String("subject", subject), zap.Int("products", len(r.All())))
		return d, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Dashboard), nil
}

func (s *Sessions) lookup(subject string) (*Dashboard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.sessions[subject]
	return d, ok
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Drop ends the session of subject. The next Get starts from a fresh seed.
func (s *Sessions) Drop(subject string) {
	s.mu.Lock()
	d, ok := s.sessions[subject]
	delete(s.sessions, subject)
	s.mu.Unlock()

	if ok {
		d.Close()
	}
}

func (s *Sessions) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for subject, d := range s.sessions {
		d.Close()
		delete(s.sessions, subject)
	}
}
