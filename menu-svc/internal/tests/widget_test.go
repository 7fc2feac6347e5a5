package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"restcafe/menu-svc/internal/domain"
	"restcafe/menu-svc/internal/mocks"
	"restcafe/menu-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func waitLoaded(t *testing.T, w *service.Widget) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, w.WaitLoaded(ctx))
}

func mountedWidget(t *testing.T, source service.MenuSource, publisher service.EventPublisher) *service.Widget {
	t.Helper()
	w := service.NewWidget("w-1", source, publisher, time.Second)
	w.Mount(context.Background())
	waitLoaded(t, w)
	return w
}

func TestWidget_MountLoadsMenu(t *testing.T) {
	source := mocks.NewMenuSource(t)
	source.On("FetchMenu", mock.Anything).Return(uniCafe(), nil).Once()

	w := mountedWidget(t, source, nil)
	s := w.State()

	assert.Equal(t, "UNI Cafe", s.RestaurantName)
	assert.Equal(t, "Breakfast", s.SelectedCategory)
	assert.Len(t, s.VisibleDishes, 2)
	assert.Equal(t, 0, s.CartTotal)
}

func TestWidget_MountRunsOnce(t *testing.T) {
	source := mocks.NewMenuSource(t)
	source.On("FetchMenu", mock.Anything).Return(uniCafe(), nil).Once()

	w := service.NewWidget("w-1", source, nil, time.Second)
	w.Mount(context.Background())
	w.Mount(context.Background())
	waitLoaded(t, w)
	w.Mount(context.Background())

	source.AssertNumberOfCalls(t, "FetchMenu", 1)
}

func TestWidget_LoadFailureLeavesEmptyState(t *testing.T) {
	source := mocks.NewMenuSource(t)
	source.On("FetchMenu", mock.Anything).Return(nil, errors.New("network down")).Once()

	w := mountedWidget(t, source, nil)
	s := w.State()

	assert.False(t, s.Loaded)
	assert.Equal(t, "", s.SelectedCategory)
	assert.Empty(t, s.VisibleDishes)
	assert.Equal(t, 0, s.CartTotal)
}

func TestWidget_QuantityFlow(t *testing.T) {
	source := mocks.NewMenuSource(t)
	source.On("FetchMenu", mock.Anything).Return(uniCafe(), nil).Once()
	w := mountedWidget(t, source, nil)
	ctx := context.Background()

	_, err := w.Increase(ctx, "d1")
	require.NoError(t, err)
	_, err = w.SelectCategory(ctx, "Lunch")
	require.NoError(t, err)
	_, err = w.SelectCategory(ctx, "Breakfast")
	require.NoError(t, err)

	s := w.State()
	assert.Equal(t, 1, s.Quantity("d1"))
	assert.Equal(t, 1, s.CartTotal)
}

func TestWidget_SelectUnknownCategory(t *testing.T) {
	source := mocks.NewMenuSource(t)
	source.On("FetchMenu", mock.Anything).Return(uniCafe(), nil).Once()
	w := mountedWidget(t, source, nil)

	s, err := w.SelectCategory(context.Background(), "Dinner")

	assert.ErrorIs(t, err, service.ErrUnknownCategory)
	assert.Equal(t, "Breakfast", s.SelectedCategory)
	assert.Equal(t, "Breakfast", w.State().SelectedCategory)
}

func TestWidget_UnmountDiscardsLateResult(t *testing.T) {
	source := newStaticSource(uniCafe(), nil)
	source.release = make(chan struct{})

	w := service.NewWidget("w-1", source, nil, 0)
	w.Mount(context.Background())
	<-source.calls

	w.Unmount()
	close(source.release)
	waitLoaded(t, w)

	s := w.State()
	assert.False(t, s.Loaded)
	assert.Equal(t, "", s.SelectedCategory)
	assert.Empty(t, s.VisibleDishes)
}

func TestWidget_OperationsAfterUnmount(t *testing.T) {
	source := mocks.NewMenuSource(t)
	source.On("FetchMenu", mock.Anything).Return(uniCafe(), nil).Once()
	w := mountedWidget(t, source, nil)
	w.Unmount()

	_, err := w.Increase(context.Background(), "d1")
	assert.ErrorIs(t, err, service.ErrWidgetUnmounted)
	_, err = w.SelectCategory(context.Background(), "Lunch")
	assert.ErrorIs(t, err, service.ErrWidgetUnmounted)
}

func TestWidget_PublishesEvents(t *testing.T) {
	source := mocks.NewMenuSource(t)
	source.On("FetchMenu", mock.Anything).Return(uniCafe(), nil).Once()

	publisher := mocks.NewEventPublisher(t)
	publisher.On("PublishEvent", mock.Anything, mock.MatchedBy(func(e domain.WidgetEvent) bool {
		return e.Type == domain.EventMenuLoaded && e.Restaurant == "UNI Cafe"
	})).Return(nil).Once()
	publisher.On("PublishEvent", mock.Anything, mock.MatchedBy(func(e domain.WidgetEvent) bool {
		return e.Type == domain.EventDishIncreased && e.DishID == "d1" && e.Quantity == 1 && e.CartTotal == 1
	})).Return(nil).Once()
	publisher.On("PublishEvent", mock.Anything, mock.MatchedBy(func(e domain.WidgetEvent) bool {
		return e.Type == domain.EventDishDecreased && e.DishID == "d1" && e.Quantity == 0 && e.CartTotal == 0
	})).Return(nil).Once()
	publisher.On("PublishEvent", mock.Anything, mock.MatchedBy(func(e domain.WidgetEvent) bool {
		return e.Type == domain.EventCategorySelected && e.Category == "Lunch"
	})).Return(errors.New("broker down")).Once()

	w := mountedWidget(t, source, publisher)
	ctx := context.Background()

	_, err := w.Increase(ctx, "d1")
	require.NoError(t, err)
	_, err = w.Decrease(ctx, "d1")
	require.NoError(t, err)
	// at zero: no state change, nothing published
	_, err = w.Decrease(ctx, "d1")
	require.NoError(t, err)
	_, err = w.SelectCategory(ctx, "Lunch")
	require.NoError(t, err, "publish failures are not surfaced")
	// re-selecting the active category changes nothing
	_, err = w.SelectCategory(ctx, "Lunch")
	require.NoError(t, err)
	_, err = w.SelectCategory(ctx, "c2")
	require.NoError(t, err)

	publisher.AssertNumberOfCalls(t, "PublishEvent", 4)
}

func TestWidget_MountAfterUnmountSkipsLoad(t *testing.T) {
	source := mocks.NewMenuSource(t)

	w := service.NewWidget("w-1", source, nil, time.Second)
	w.Unmount()
	w.Mount(context.Background())
	waitLoaded(t, w)

	source.AssertNotCalled(t, "FetchMenu", mock.Anything)
	assert.False(t, w.State().Loaded)
}

func TestWidget_FetchTimeoutApplied(t *testing.T) {
	source := mocks.NewMenuSource(t)
	source.On("FetchMenu", mock.Anything).Return(nil, context.DeadlineExceeded).Once().
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
		})

	w := mountedWidget(t, source, nil)
	assert.False(t, w.State().Loaded)
}

func TestRegistry_MountGetUnmount(t *testing.T) {
	source := newStaticSource(uniCafe(), nil)
	registry := service.NewRegistry(context.Background(), source, nil, time.Second)

	w := registry.Mount()
	require.NotEmpty(t, w.ID)
	waitLoaded(t, w)

	got, err := registry.Get(w.ID)
	require.NoError(t, err)
	assert.Same(t, w, got)
	assert.Equal(t, 1, registry.Len())

	require.NoError(t, registry.Unmount(w.ID))
	_, err = registry.Get(w.ID)
	assert.ErrorIs(t, err, service.ErrWidgetNotFound)
	assert.ErrorIs(t, registry.Unmount(w.ID), service.ErrWidgetNotFound)
}

func TestRegistry_WidgetsAreIndependent(t *testing.T) {
	source := newStaticSource(uniCafe(), nil)
	registry := service.NewRegistry(context.Background(), source, nil, time.Second)
	first := registry.Mount()
	second := registry.Mount()
	waitLoaded(t, first)
	waitLoaded(t, second)

	_, err := first.Increase(context.Background(), "d1")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 1, first.State().CartTotal)
	assert.Equal(t, 0, second.State().CartTotal)
}

func TestRegistry_Close(t *testing.T) {
	source := newStaticSource(uniCafe(), nil)
	registry := service.NewRegistry(context.Background(), source, nil, time.Second)
	w := registry.Mount()
	waitLoaded(t, w)

	registry.Close()

	assert.Equal(t, 0, registry.Len())
	_, err := w.Increase(context.Background(), "d1")
	assert.ErrorIs(t, err, service.ErrWidgetUnmounted)
}

func TestRegistry_SweepEvictsIdleWidgets(t *testing.T) {
	source := newStaticSource(uniCafe(), nil)
	registry := service.NewRegistry(context.Background(), source, nil, time.Second)
	t.Cleanup(registry.Close)

	idle := registry.Mount()
	active := registry.Mount()
	waitLoaded(t, idle)
	waitLoaded(t, active)

	cutoff := time.Now()
	_, err := registry.Get(active.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, registry.Sweep(cutoff))
	assert.Equal(t, 1, registry.Len())

	_, err = registry.Get(idle.ID)
	assert.ErrorIs(t, err, service.ErrWidgetNotFound)
	_, err = idle.Increase(context.Background(), "d1")
	assert.ErrorIs(t, err, service.ErrWidgetUnmounted)

	_, err = registry.Get(active.ID)
	assert.NoError(t, err)
}

func TestRegistry_ExpireIdle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	registry := service.NewRegistry(ctx, newStaticSource(uniCafe(), nil), nil, time.Second)
	registry.ExpireIdle(20*time.Millisecond, 5*time.Millisecond)

	w := registry.Mount()

	assert.Eventually(t, func() bool { return registry.Len() == 0 }, 2*time.Second, 5*time.Millisecond)
	_, err := w.Increase(context.Background(), "d1")
	assert.ErrorIs(t, err, service.ErrWidgetUnmounted)
}
