package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrWidgetNotFound = errors.New("widget not found")

// Registry tracks mounted widgets. Loads started by Mount inherit the
// registry context, so Close or cancelling that context stops them all.
type Registry struct {
	ctx          context.Context
	source       MenuSource
	publisher    EventPublisher
	fetchTimeout time.Duration

	mu      sync.RWMutex
	widgets map[string]*Widget
}

func NewRegistry(ctx context.Context, source MenuSource, publisher EventPublisher, fetchTimeout time.Duration) *Registry {
	return &Registry{
		ctx:          ctx,
		source:       source,
		publisher:    publisher,
		fetchTimeout: fetchTimeout,
		widgets:      make(map[string]*Widget),
	}
}

func (r *Registry) Mount() *Widget {
	widget := NewWidget(uuid.NewString(), r.source, r.publisher, r.fetchTimeout)

	r.mu.Lock()
	r.widgets[widget.ID] = widget
	r.mu.Unlock()

	widget.Mount(r.ctx)
	return widget
}

func (r *Registry) Get(id string) (*Widget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	widget, ok := r.widgets[id]
	if !ok {
		return nil, ErrWidgetNotFound
	}
	widget.Touch()
	return widget, nil
}

func (r *Registry) Unmount(id string) error {
	r.mu.Lock()
	widget, ok := r.widgets[id]
	delete(r.widgets, id)
	r.mu.Unlock()

	if !ok {
		return ErrWidgetNotFound
	}
	widget.Unmount()
	return nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.widgets)
}

func (r *Registry) Close() {
	r.mu.Lock()
	widgets := r.widgets
	r.widgets = make(map[string]*Widget)
	r.mu.Unlock()

	for _, widget := range widgets {
		widget.Unmount()
	}
}

// Sweep unmounts every widget whose last activity is before cutoff and
// returns how many were removed.
func (r *Registry) Sweep(cutoff time.Time) int {
	r.mu.Lock()
	var idle []*Widget
	for id, widget := range r.widgets {
		if widget.LastActive().Before(cutoff) {
			idle = append(idle, widget)
			delete(r.widgets, id)
		}
	}
	r.mu.Unlock()

	for _, widget := range idle {
		widget.Unmount()
	}
	return len(idle)
}

// ExpireIdle starts a sweeper that unmounts widgets untouched for ttl. It
// stops when the registry context is cancelled.
func (r *Registry) ExpireIdle(ttl, interval time.Duration) {
	if ttl <= 0 || interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-r.ctx.Done():
				return
			case now := <-ticker.C:
				if n := r.Sweep(now.Add(-ttl)); n > 0 {
					log.Printf("[menu-svc] expired %d idle widgets", n)
				}
			}
		}
	}()
}
