package tests

import (
	"context"

	"restcafe/menu-svc/internal/domain"
)

const uniCafePayload = `[
  {
    "restaurant_id": "5",
    "restaurant_name": "UNI Cafe",
    "table_menu_list": [
      {
        "menu_category": "Breakfast",
        "menu_category_id": "c1",
        "category_dishes": [
          {
            "dish_id": "d1",
            "dish_name": "Spinach Salad",
            "dish_description": "Fresh leaves, tomato and cucumber",
            "dish_calories": 15,
            "dish_Availability": true,
            "dish_image": "https://example.com/salad.jpg",
            "addonCat": [{"addon_category": "Dressing", "addon_category_id": "a1"}]
          },
          {
            "dish_id": "d2",
            "dish_name": "Waffles",
            "dish_description": "Belgian waffles",
            "dish_calories": 350.5,
            "dish_Availability": false,
            "dish_image": "https://example.com/waffles.jpg",
            "addonCat": []
          }
        ]
      },
      {
        "menu_category": "Lunch",
        "menu_category_id": "c2",
        "category_dishes": [
          {
            "dish_id": "d3",
            "dish_name": "Chicken Biryani",
            "dish_description": "Slow cooked rice",
            "dish_calories": 720,
            "dish_Availability": true,
            "dish_image": "https://example.com/biryani.jpg"
          }
        ]
      }
    ]
  }
]`

func uniCafe() *domain.Restaurant {
	return &domain.Restaurant{
		Name: "UNI Cafe",
		Categories: []domain.Category{
			{
				ID:   "c1",
				Name: "Breakfast",
				Dishes: []domain.Dish{
					{ID: "d1", Name: "Spinach Salad", Calories: 15, Available: true, Addons: []domain.Addon{domain.Addon(`{}`)}},
					{ID: "d2", Name: "Waffles", Calories: 350.5, Available: false},
				},
			},
			{
				ID:   "c2",
				Name: "Lunch",
				Dishes: []domain.Dish{
					{ID: "d3", Name: "Chicken Biryani", Calories: 720, Available: true},
				},
			},
		},
	}
}

// staticSource serves a fixed restaurant or error and ignores cancellation
// once released, which lets tests deliver a result after unmount.
type staticSource struct {
	rest    *domain.Restaurant
	err     error
	release chan struct{}
	calls   chan struct{}
}

func newStaticSource(rest *domain.Restaurant, err error) *staticSource {
	return &staticSource{rest: rest, err: err, calls: make(chan struct{}, 16)}
}

func (s *staticSource) FetchMenu(ctx context.Context) (*domain.Restaurant, error) {
	s.calls <- struct{}{}
	if s.release != nil {
		<-s.release
	}
	return s.rest, s.err
}
