package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"goal-planner/internal/interview"
	"goal-planner/internal/model"
	"goal-planner/pkg/datemath"
	pkgLog "goal-planner/pkg/log"
)

// Defaults for the registry bounds.
const (
	DefaultCapacity = 256
	DefaultTTL      = 30 * time.Minute
)

// Config bounds the registry. Zero values fall back to the defaults.
type Config struct {
	Capacity int
	TTL      time.Duration
}

type entry struct {
	engine     *interview.Engine
	scope      model.Scope
	lastActive time.Time
}

// Manager holds one interview engine per live conversation. Engines are
// independent, so the only shared state is the registry itself: an
// LRU-bounded cache with TTL expiry, in place of unbounded per-user maps.
type Manager struct {
	l     pkgLog.Logger
	dates *datemath.Parser
	now   func() time.Time
	ttl   time.Duration

	mu    sync.Mutex
	cache *lru.Cache[string, *entry]
}

// NewManager creates a session registry. now may be nil (system clock).
func NewManager(l pkgLog.Logger, dates *datemath.Parser, cfg Config, now func() time.Time) (*Manager, error) {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}

	cache, err := lru.New[string, *entry](cfg.Capacity)
	if err != nil {
		return nil, err
	}
	return &Manager{
		l:     l,
		dates: dates,
		now:   now,
		ttl:   cfg.TTL,
		cache: cache,
	}, nil
}

// Start opens a new interview for the given scope and returns its session ID
// along with the first question.
func (m *Manager) Start(ctx context.Context, sc model.Scope) (id, question string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	engine := interview.New(m.dates, m.now)
	id = uuid.NewString()
	m.cache.Add(id, &entry{
		engine:     engine,
		scope:      sc,
		lastActive: m.now(),
	})

	question, _ = engine.CurrentQuestion()
	m.l.Infof(ctx, "session %s started for user=%s", id, sc.UserID)
	return id, question
}

// Answer routes an answer to the session's engine.
func (m *Manager) Answer(ctx context.Context, id, text string) (interview.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, err := m.lookup(ctx, id)
	if err != nil {
		return interview.Result{}, err
	}
	e.lastActive = m.now()
	return e.engine.AcceptAnswer(text)
}

// Fields returns the validated field set for a completed session.
func (m *Manager) Fields(ctx context.Context, id string) (interview.Fields, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, err := m.lookup(ctx, id)
	if err != nil {
		return interview.Fields{}, err
	}
	return e.engine.ValidatedFields()
}

// Realism runs the advisory timeline check for a completed session.
func (m *Manager) Realism(ctx context.Context, id string, minSessions int) (interview.RealismReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, err := m.lookup(ctx, id)
	if err != nil {
		return interview.RealismReport{}, err
	}
	return e.engine.CheckTimelineRealism(minSessions)
}

// End discards a session.
func (m *Manager) End(ctx context.Context, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache.Remove(id)
}

// Len reports the number of live sessions, expired entries included until
// their next access.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cache.Len()
}

// lookup fetches an entry and enforces TTL expiry. Callers hold m.mu.
func (m *Manager) lookup(ctx context.Context, id string) (*entry, error) {
	e, ok := m.cache.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	if m.now().Sub(e.lastActive) > m.ttl {
		m.cache.Remove(id)
		m.l.Infof(ctx, "session %s expired for user=%s", id, e.scope.UserID)
		return nil, ErrSessionExpired
	}
	return e, nil
}
