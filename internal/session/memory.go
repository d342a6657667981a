package session

import (
	"context"
	"sync"
	"time"

	"github.com/umalmyha/crm-console/internal/view"
	"github.com/vmihailenco/msgpack/v5"
)

type memoryEntry struct {
	raw       []byte
	expiresAt time.Time
}

type memoryStore struct {
	mu         sync.Mutex
	entries    map[string]memoryEntry
	timeToLive time.Duration
	now        func() time.Time
}

// NewMemoryStore builds Store which keeps encoded view models in process memory
func NewMemoryStore(timeToLive time.Duration) Store {
	return newMemoryStore(timeToLive, time.Now)
}

func newMemoryStore(timeToLive time.Duration, now func() time.Time) *memoryStore {
	return &memoryStore{
		entries:    make(map[string]memoryEntry),
		timeToLive: timeToLive,
		now:        now,
	}
}

func (m *memoryStore) FindLanding(_ context.Context, sid string) (*view.Landing, error) {
	raw := m.find(key(sid, screenLanding))
	if raw == nil {
		return nil, nil
	}
	return decodeLanding(raw)
}

func (m *memoryStore) SaveLanding(_ context.Context, sid string, l *view.Landing) error {
	return m.save(key(sid, screenLanding), l)
}

func (m *memoryStore) FindDashboard(_ context.Context, sid string) (*view.Dashboard, error) {
	raw := m.find(key(sid, screenDashboard))
	if raw == nil {
		return nil, nil
	}
	return decodeDashboard(raw)
}

func (m *memoryStore) SaveDashboard(_ context.Context, sid string, d *view.Dashboard) error {
	return m.save(key(sid, screenDashboard), d)
}

func (m *memoryStore) find(k string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[k]
	if !ok {
		return nil
	}

	if m.timeToLive > 0 && !m.now().Before(e.expiresAt) {
		delete(m.entries, k)
		return nil
	}
	return e.raw
}

func (m *memoryStore) save(k string, v any) error {
	encoded, err := msgpack.Marshal(v)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.purge()
	m.entries[k] = memoryEntry{raw: encoded, expiresAt: m.now().Add(m.timeToLive)}
	return nil
}

// purge drops expired entries, must be called with mu held
func (m *memoryStore) purge() {
	if m.timeToLive <= 0 {
		return
	}

	now := m.now()
	for k, e := range m.entries {
		if !now.Before(e.expiresAt) {
			delete(m.entries, k)
		}
	}
}
