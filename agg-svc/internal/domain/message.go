package domain

import "time"

const (
	EventMenuLoaded       = "menu_loaded"
	EventCategorySelected = "category_selected"
	EventDishIncreased    = "dish_increased"
	EventDishDecreased    = "dish_decreased"
)

type WidgetEvent struct {
	Type       string    `json:"type"`
	WidgetID   string    `json:"widget_id"`
	Restaurant string    `json:"restaurant"`
	Category   string    `json:"category,omitempty"`
	DishID     string    `json:"dish_id,omitempty"`
	Quantity   int       `json:"quantity"`
	CartTotal  int       `json:"cart_total"`
	Timestamp  time.Time `json:"timestamp"`
}

type DishScore struct {
	DishID string  `json:"dish_id"`
	Score  float64 `json:"score"`
}

type Popularity struct {
	Restaurant    string           `json:"restaurant"`
	TopDishes     []DishScore      `json:"top_dishes"`
	CategoryViews map[string]int64 `json:"category_views"`
}
