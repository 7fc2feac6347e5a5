package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"restcafe/agg-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const retention = 7 * 24 * time.Hour

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func popularityKey(restaurant string) string {
	return fmt.Sprintf("popularity:%s", restaurant)
}

func categoryViewsKey(restaurant string) string {
	return fmt.Sprintf("category_views:%s", restaurant)
}

// AdjustDish moves a dish's net cart additions by delta.
func (s *Store) AdjustDish(ctx context.Context, restaurant, dishID string, delta float64) error {
	key := popularityKey(restaurant)
	pipe := s.rdb.TxPipeline()
	pipe.ZIncrBy(ctx, key, delta, dishID)
	pipe.Expire(ctx, key, retention)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Store) RecordCategoryView(ctx context.Context, restaurant, category string) error {
	key := categoryViewsKey(restaurant)
	pipe := s.rdb.TxPipeline()
	pipe.HIncrBy(ctx, key, category, 1)
	pipe.Expire(ctx, key, retention)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Store) Popularity(ctx context.Context, restaurant string, limit int) (*domain.Popularity, error) {
	if limit <= 0 {
		limit = 10
	}

	scores, err := s.rdb.ZRevRangeWithScores(ctx, popularityKey(restaurant), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	views, err := s.rdb.HGetAll(ctx, categoryViewsKey(restaurant)).Result()
	if err != nil {
		return nil, err
	}

	result := &domain.Popularity{
		Restaurant:    restaurant,
		TopDishes:     make([]domain.DishScore, 0, len(scores)),
		CategoryViews: make(map[string]int64, len(views)),
	}
	for _, z := range scores {
		member, _ := z.Member.(string)
		result.TopDishes = append(result.TopDishes, domain.DishScore{DishID: member, Score: z.Score})
	}
	for category, raw := range views {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		result.CategoryViews[category] = n
	}
	return result, nil
}
