package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	apperrors "github.com/umalmyha/crm-console/internal/errors"
	"github.com/umalmyha/crm-console/internal/session"
	"github.com/umalmyha/crm-console/internal/validation"
	"github.com/umalmyha/crm-console/internal/view"
)

const settleTimeout = 5 * time.Second

// keyedMutex serializes load-modify-save of a single view model within the process
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*refMutex)}
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()

		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

// inflight cancels previous fetch of the same list when a new one is issued
type inflight struct {
	mu    sync.Mutex
	seq   uint64
	calls map[string]inflightCall
}

type inflightCall struct {
	id     uint64
	cancel context.CancelFunc
}

func newInflight() *inflight {
	return &inflight{calls: make(map[string]inflightCall)}
}

func (f *inflight) begin(ctx context.Context, key string) (context.Context, func()) {
	callCtx, cancel := context.WithCancel(ctx)

	f.mu.Lock()
	if prev, ok := f.calls[key]; ok {
		prev.cancel()
	}
	f.seq++
	id := f.seq
	f.calls[key] = inflightCall{id: id, cancel: cancel}
	f.mu.Unlock()

	return callCtx, func() {
		f.mu.Lock()
		if cur, ok := f.calls[key]; ok && cur.id == id {
			delete(f.calls, key)
		}
		f.mu.Unlock()
		cancel()
	}
}

// views loads view model of a session, applies transition and stores it back
type views struct {
	store    session.Store
	locks    *keyedMutex
	pageSize int
}

func newViews(store session.Store, pageSize int) *views {
	return &views{store: store, locks: newKeyedMutex(), pageSize: pageSize}
}

func (v *views) landing(ctx context.Context, sid string, fn func(*view.Landing) error) (*view.Landing, error) {
	unlock := v.locks.lock(sid + ":landing")
	defer unlock()

	l, err := v.store.FindLanding(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("failed to load landing view - %w", err)
	}

	if l == nil {
		l = view.NewLanding(v.pageSize)
	}

	if err := fn(l); err != nil {
		return l, err
	}

	if err := v.store.SaveLanding(ctx, sid, l); err != nil {
		return nil, fmt.Errorf("failed to save landing view - %w", err)
	}
	return l, nil
}

func (v *views) dashboard(ctx context.Context, sid string, fn func(*view.Dashboard) error) (*view.Dashboard, error) {
	unlock := v.locks.lock(sid + ":dashboard")
	defer unlock()

	d, err := v.store.FindDashboard(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard view - %w", err)
	}

	if d == nil {
		d = view.NewDashboard()
	}

	if err := fn(d); err != nil {
		return d, err
	}

	if err := v.store.SaveDashboard(ctx, sid, d); err != nil {
		return nil, fmt.Errorf("failed to save dashboard view - %w", err)
	}
	return d, nil
}

// detachedContext keeps values of parent but is never cancelled,
// so outcome of a remote call is stored even if client has gone
type detachedContext struct {
	parent context.Context
}

func (detachedContext) Deadline() (time.Time, bool) { return time.Time{}, false }
func (detachedContext) Done() <-chan struct{}       { return nil }
func (detachedContext) Err() error                  { return nil }
func (d detachedContext) Value(key any) any         { return d.parent.Value(key) }

func settleContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(detachedContext{parent: ctx}, settleTimeout)
}

// rejection returns message shown on form when submission didn't pass client-side checks
func rejection(err error) string {
	var pldErr *validation.PayloadError
	if errors.As(err, &pldErr) {
		return pldErr.Error()
	}

	var busErr *apperrors.BusinessErr
	if errors.As(err, &busErr) {
		return busErr.Error()
	}
	return err.Error()
}

func ensureIdle(m *view.Modal) error {
	if st := m.Status(); st != nil && st.Busy {
		return apperrors.NewBusinessErr("form", "Submission is already in progress")
	}
	return nil
}
