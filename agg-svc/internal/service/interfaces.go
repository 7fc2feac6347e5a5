package service

import (
	"context"

	"restcafe/agg-svc/internal/domain"
	"restcafe/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	AdjustDish(ctx context.Context, restaurant, dishID string, delta float64) error
	RecordCategoryView(ctx context.Context, restaurant, category string) error
	Popularity(ctx context.Context, restaurant string, limit int) (*domain.Popularity, error)
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(ctx context.Context, msg domain.WidgetEvent) error
}

var _ StoreInterface = (*storage.Store)(nil)
var _ ConsumerInterface = (*Consumer)(nil)
