package session

import (
	"context"
	"fmt"

	"github.com/umalmyha/crm-console/internal/view"
	"github.com/vmihailenco/msgpack/v5"
)

// Store keeps view models of a session between requests
type Store interface {
	FindLanding(context.Context, string) (*view.Landing, error)
	SaveLanding(context.Context, string, *view.Landing) error
	FindDashboard(context.Context, string) (*view.Dashboard, error)
	SaveDashboard(context.Context, string, *view.Dashboard) error
}

type screen string

const (
	screenLanding   screen = "landing"
	screenDashboard screen = "dashboard"
)

func key(sid string, s screen) string {
	return fmt.Sprintf("session:%s:%s", sid, s)
}

func decodeLanding(raw []byte) (*view.Landing, error) {
	var l view.Landing
	if err := msgpack.Unmarshal(raw, &l); err != nil {
		return nil, fmt.Errorf("failed to decode landing view - %w", err)
	}
	return &l, nil
}

func decodeDashboard(raw []byte) (*view.Dashboard, error) {
	var d view.Dashboard
	if err := msgpack.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("failed to decode dashboard view - %w", err)
	}
	return &d, nil
}
