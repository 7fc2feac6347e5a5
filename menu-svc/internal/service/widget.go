package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"restcafe/menu-svc/internal/domain"
)

var ErrWidgetUnmounted = errors.New("widget has been unmounted")

// Widget owns the state of one mounted menu widget. All transitions run
// under mu, so they are atomic and applied in arrival order.
type Widget struct {
	ID string

	source       MenuSource
	publisher    EventPublisher
	fetchTimeout time.Duration

	mu         sync.Mutex
	state      State
	alive      bool
	cancel     context.CancelFunc
	lastActive time.Time

	mountOnce sync.Once
	loaded    chan struct{}
}

func NewWidget(id string, source MenuSource, publisher EventPublisher, fetchTimeout time.Duration) *Widget {
	return &Widget{
		ID:           id,
		source:       source,
		publisher:    publisher,
		fetchTimeout: fetchTimeout,
		state:        NewState(),
		alive:        true,
		lastActive:   time.Now(),
		loaded:       make(chan struct{}),
	}
}

// Mount starts the one-time menu load. Calling it again is a no-op, and
// mounting an already unmounted widget never reaches the menu source.
func (w *Widget) Mount(ctx context.Context) {
	w.mountOnce.Do(func() {
		w.mu.Lock()
		if !w.alive {
			w.mu.Unlock()
			close(w.loaded)
			return
		}
		loadCtx, cancel := context.WithCancel(ctx)
		w.cancel = cancel
		w.mu.Unlock()
		go w.load(loadCtx)
	})
}

func (w *Widget) load(ctx context.Context) {
	defer close(w.loaded)

	fetchCtx := ctx
	if w.fetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, w.fetchTimeout)
		defer cancel()
	}

	rest, err := w.source.FetchMenu(fetchCtx)
	if err != nil {
		log.Printf("[menu-svc] widget %s: menu load failed: %v", w.ID, err)
		return
	}

	w.mu.Lock()
	if !w.alive || ctx.Err() != nil {
		w.mu.Unlock()
		log.Printf("[menu-svc] widget %s: discarding menu, widget unmounted", w.ID)
		return
	}
	w.state = ApplyMenu(w.state, rest)
	snapshot := w.state
	w.mu.Unlock()

	log.Printf("[menu-svc] widget %s: loaded %q with %d categories", w.ID, rest.Name, len(rest.Categories))
	w.publish(ctx, domain.EventMenuLoaded, snapshot, "")
}

// WaitLoaded blocks until the load attempt has finished, successfully or not.
func (w *Widget) WaitLoaded(ctx context.Context) error {
	select {
	case <-w.loaded:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Unmount cancels an in-flight load; a late result is never applied.
func (w *Widget) Unmount() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.alive = false
	if w.cancel != nil {
		w.cancel()
	}
}

func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Touch records activity, postponing idle expiry.
func (w *Widget) Touch() {
	w.mu.Lock()
	w.lastActive = time.Now()
	w.mu.Unlock()
}

func (w *Widget) LastActive() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastActive
}

func (w *Widget) SelectCategory(ctx context.Context, key string) (State, error) {
	w.mu.Lock()
	if !w.alive {
		w.mu.Unlock()
		return State{}, ErrWidgetUnmounted
	}
	before := w.state.SelectedCategory
	next, err := SelectCategory(w.state, key)
	if err != nil {
		current := w.state
		w.mu.Unlock()
		return current, err
	}
	w.state = next
	w.mu.Unlock()

	if next.SelectedCategory != before {
		w.publish(ctx, domain.EventCategorySelected, next, "")
	}
	return next, nil
}

func (w *Widget) Increase(ctx context.Context, dishID string) (State, error) {
	return w.adjust(ctx, dishID, QuantityIncreased{DishID: dishID}, domain.EventDishIncreased)
}

func (w *Widget) Decrease(ctx context.Context, dishID string) (State, error) {
	return w.adjust(ctx, dishID, QuantityDecreased{DishID: dishID}, domain.EventDishDecreased)
}

func (w *Widget) adjust(ctx context.Context, dishID string, event Event, eventType string) (State, error) {
	w.mu.Lock()
	if !w.alive {
		w.mu.Unlock()
		return State{}, ErrWidgetUnmounted
	}
	before := w.state.CartTotal
	next, err := Reduce(w.state, event)
	if err != nil {
		current := w.state
		w.mu.Unlock()
		return current, err
	}
	w.state = next
	w.mu.Unlock()

	if next.CartTotal != before {
		w.publish(ctx, eventType, next, dishID)
	}
	return next, nil
}

func (w *Widget) publish(ctx context.Context, eventType string, s State, dishID string) {
	if w.publisher == nil {
		return
	}
	event := domain.WidgetEvent{
		Type:       eventType,
		WidgetID:   w.ID,
		Restaurant: s.RestaurantName,
		Category:   s.SelectedCategory,
		DishID:     dishID,
		CartTotal:  s.CartTotal,
		Timestamp:  time.Now(),
	}
	if dishID != "" {
		event.Quantity = s.Quantity(dishID)
	}
	if err := w.publisher.PublishEvent(context.WithoutCancel(ctx), event); err != nil {
		log.Printf("[menu-svc] widget %s: publish %s failed: %v", w.ID, eventType, err)
	}
}
