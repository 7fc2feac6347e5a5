// Package render turns widget state into HTML. Two renderers share one
// view model and differ only in how they style it.
package render

import (
	"io"
	"net/url"
	"strconv"

	"restcafe/menu-svc/internal/service"
)

type Renderer interface {
	Render(w io.Writer, view View) error
	ContentType() string
}

type Tab struct {
	ID     string
	Name   string
	Active bool
}

type DishCard struct {
	ID          string
	PathID      string
	Name        string
	Description string
	Calories    string
	Available   bool
	Quantity    int
	HasAddons   bool
	ImageURL    string
}

type View struct {
	WidgetID         string
	Style            string
	RestaurantName   string
	CartTotal        int
	Tabs             []Tab
	SelectedCategory string
	Dishes           []DishCard
}

// ActionPath is the form target for widget interactions.
func (v View) ActionPath(suffix string) string {
	return "/widgets/" + v.WidgetID + suffix + "?style=" + v.Style
}

func NewView(widgetID, style string, s service.State) View {
	view := View{
		WidgetID:         widgetID,
		Style:            style,
		RestaurantName:   s.RestaurantName,
		CartTotal:        s.CartTotal,
		SelectedCategory: s.SelectedCategory,
		Tabs:             make([]Tab, 0, len(s.Categories)),
		Dishes:           make([]DishCard, 0, len(s.VisibleDishes)),
	}
	for _, cat := range s.Categories {
		view.Tabs = append(view.Tabs, Tab{
			ID:     cat.ID,
			Name:   cat.Name,
			Active: cat.Name == s.SelectedCategory,
		})
	}
	for _, dish := range s.VisibleDishes {
		view.Dishes = append(view.Dishes, DishCard{
			ID:          dish.ID,
			PathID:      url.PathEscape(dish.ID),
			Name:        dish.Name,
			Description: dish.Description,
			Calories:    strconv.FormatFloat(dish.Calories, 'f', -1, 64),
			Available:   dish.Available,
			Quantity:    s.Quantity(dish.ID),
			HasAddons:   dish.HasAddons(),
			ImageURL:    dish.ImageURL,
		})
	}
	return view
}

const (
	StyleClasses = "classes"
	StyleInline  = "styled"
)

// ForStyle picks a renderer by name, defaulting to the class-based one.
func ForStyle(style string) (Renderer, string) {
	if style == StyleInline {
		return NewStyledRenderer(DefaultTheme), StyleInline
	}
	return NewClassRenderer(), StyleClasses
}
