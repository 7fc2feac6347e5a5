package service

import (
	"context"

	"restcafe/menu-svc/internal/domain"
)

type MenuSource interface {
	FetchMenu(ctx context.Context) (*domain.Restaurant, error)
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, event domain.WidgetEvent) error
}

type WidgetRegistry interface {
	Mount() *Widget
	Get(id string) (*Widget, error)
	Unmount(id string) error
}

var _ WidgetRegistry = (*Registry)(nil)
