package domain

import (
	"encoding/json"
	"errors"
	"time"
)

var ErrLoadFailed = errors.New("menu load failed")

type Restaurant struct {
	Name       string     `json:"name"`
	Categories []Category `json:"categories"`
}

type Category struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Dishes []Dish `json:"dishes"`
}

type Dish struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Calories    float64 `json:"calories"`
	Available   bool    `json:"available"`
	ImageURL    string  `json:"image_url"`
	Addons      []Addon `json:"addons"`
}

// HasAddons reports whether the dish offers customizations.
func (d Dish) HasAddons() bool {
	return len(d.Addons) > 0
}

// Addon is kept opaque; only its presence matters to the widget.
type Addon json.RawMessage

func (a Addon) MarshalJSON() ([]byte, error) {
	if len(a) == 0 {
		return []byte("null"), nil
	}
	return a, nil
}

func (a *Addon) UnmarshalJSON(data []byte) error {
	*a = append((*a)[:0], data...)
	return nil
}

// Wire format of the upstream menu endpoint.

type MenuPayload struct {
	RestaurantName string         `json:"restaurant_name"`
	TableMenuList  []MenuCategory `json:"table_menu_list"`
}

type MenuCategory struct {
	MenuCategoryID string     `json:"menu_category_id"`
	MenuCategory   string     `json:"menu_category"`
	CategoryDishes []MenuDish `json:"category_dishes"`
}

type MenuDish struct {
	DishID           string  `json:"dish_id"`
	DishName         string  `json:"dish_name"`
	DishDescription  string  `json:"dish_description"`
	DishCalories     float64 `json:"dish_calories"`
	DishAvailability bool    `json:"dish_Availability"`
	DishImage        string  `json:"dish_image"`
	AddonCat         []Addon `json:"addonCat"`
}

func (p MenuPayload) Restaurant() *Restaurant {
	rest := &Restaurant{
		Name:       p.RestaurantName,
		Categories: make([]Category, 0, len(p.TableMenuList)),
	}
	for _, mc := range p.TableMenuList {
		cat := Category{
			ID:     mc.MenuCategoryID,
			Name:   mc.MenuCategory,
			Dishes: make([]Dish, 0, len(mc.CategoryDishes)),
		}
		for _, md := range mc.CategoryDishes {
			cat.Dishes = append(cat.Dishes, Dish{
				ID:          md.DishID,
				Name:        md.DishName,
				Description: md.DishDescription,
				Calories:    md.DishCalories,
				Available:   md.DishAvailability,
				ImageURL:    md.DishImage,
				Addons:      md.AddonCat,
			})
		}
		rest.Categories = append(rest.Categories, cat)
	}
	return rest
}

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
