package service

import (
	"errors"

	"restcafe/menu-svc/internal/domain"
)

var ErrUnknownCategory = errors.New("category not found in loaded menu")

// State is the UI state of one mounted widget. Reducers below never
// mutate their input.
type State struct {
	RestaurantName   string            `json:"restaurant_name"`
	Categories       []domain.Category `json:"categories"`
	SelectedCategory string            `json:"selected_category"`
	VisibleDishes    []domain.Dish     `json:"visible_dishes"`
	Quantities       map[string]int    `json:"quantities"`
	CartTotal        int               `json:"cart_total"`
	Loaded           bool              `json:"loaded"`
}

func NewState() State {
	return State{
		Categories:    []domain.Category{},
		VisibleDishes: []domain.Dish{},
		Quantities:    map[string]int{},
	}
}

// Quantity returns the selected quantity for a dish, 0 if never touched.
func (s State) Quantity(dishID string) int {
	return s.Quantities[dishID]
}

func (s State) findCategory(key string) (domain.Category, bool) {
	for _, cat := range s.Categories {
		if cat.Name == key || cat.ID == key {
			return cat, true
		}
	}
	return domain.Category{}, false
}

func (s State) withQuantity(dishID string, qty, delta int) State {
	quantities := make(map[string]int, len(s.Quantities)+1)
	for k, v := range s.Quantities {
		quantities[k] = v
	}
	quantities[dishID] = qty
	s.Quantities = quantities
	s.CartTotal += delta
	return s
}

// ApplyMenu seeds the state from a freshly loaded restaurant: the first
// category becomes selected.
func ApplyMenu(s State, rest *domain.Restaurant) State {
	if rest == nil {
		return s
	}
	s.RestaurantName = rest.Name
	s.Categories = rest.Categories
	s.Loaded = true
	s.SelectedCategory = ""
	s.VisibleDishes = []domain.Dish{}
	if len(rest.Categories) > 0 {
		first := rest.Categories[0]
		s.SelectedCategory = first.Name
		s.VisibleDishes = first.Dishes
	}
	return s
}

func SelectCategory(s State, key string) (State, error) {
	cat, ok := s.findCategory(key)
	if !ok {
		return s, ErrUnknownCategory
	}
	s.SelectedCategory = cat.Name
	s.VisibleDishes = cat.Dishes
	return s, nil
}

func Increase(s State, dishID string) State {
	return s.withQuantity(dishID, s.Quantity(dishID)+1, 1)
}

// Decrease is a no-op at zero.
func Decrease(s State, dishID string) State {
	qty := s.Quantity(dishID)
	if qty == 0 {
		return s
	}
	return s.withQuantity(dishID, qty-1, -1)
}

type Event interface {
	isEvent()
}

type MenuLoaded struct{ Restaurant *domain.Restaurant }
type CategorySelected struct{ Category string }
type QuantityIncreased struct{ DishID string }
type QuantityDecreased struct{ DishID string }

func (MenuLoaded) isEvent()        {}
func (CategorySelected) isEvent()  {}
func (QuantityIncreased) isEvent() {}
func (QuantityDecreased) isEvent() {}

func Reduce(s State, event Event) (State, error) {
	switch e := event.(type) {
	case MenuLoaded:
		return ApplyMenu(s, e.Restaurant), nil
	case CategorySelected:
		return SelectCategory(s, e.Category)
	case QuantityIncreased:
		return Increase(s, e.DishID), nil
	case QuantityDecreased:
		return Decrease(s, e.DishID), nil
	}
	return s, nil
}
