package service

import (
	"context"
	"encoding/json"
	"log"

	"restcafe/agg-svc/internal/domain"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start blocks until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Aggregation Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Aggregation Service consumer stopped")
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var msg domain.WidgetEvent
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if err := c.ProcessEvent(ctx, msg); err != nil {
			log.Printf("Error processing %s event for widget %s: %v", msg.Type, msg.WidgetID, err)
		}
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, msg domain.WidgetEvent) error {
	switch msg.Type {
	case domain.EventDishIncreased:
		return c.Store.AdjustDish(ctx, msg.Restaurant, msg.DishID, 1)
	case domain.EventDishDecreased:
		return c.Store.AdjustDish(ctx, msg.Restaurant, msg.DishID, -1)
	case domain.EventCategorySelected:
		return c.Store.RecordCategoryView(ctx, msg.Restaurant, msg.Category)
	}
	return nil
}
