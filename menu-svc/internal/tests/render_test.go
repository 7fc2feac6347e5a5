package tests

import (
	"bytes"
	"testing"

	"restcafe/menu-svc/internal/domain"
	"restcafe/menu-svc/internal/render"
	"restcafe/menu-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderView(t *testing.T, style string, s service.State) string {
	t.Helper()
	renderer, resolved := render.ForStyle(style)
	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, render.NewView("w-1", resolved, s)))
	return buf.String()
}

func TestNewView(t *testing.T) {
	s := service.Increase(loadedState(), "d1")
	view := render.NewView("w-1", render.StyleClasses, s)

	assert.Equal(t, "UNI Cafe", view.RestaurantName)
	assert.Equal(t, 1, view.CartTotal)
	require.Len(t, view.Tabs, 2)
	assert.True(t, view.Tabs[0].Active)
	assert.False(t, view.Tabs[1].Active)
	require.Len(t, view.Dishes, 2)
	assert.Equal(t, 1, view.Dishes[0].Quantity)
	assert.Equal(t, "15", view.Dishes[0].Calories)
	assert.Equal(t, "350.5", view.Dishes[1].Calories)
	assert.Equal(t, "/widgets/w-1/category?style=classes", view.ActionPath("/category"))
}

func TestForStyle(t *testing.T) {
	_, style := render.ForStyle("styled")
	assert.Equal(t, render.StyleInline, style)
	_, style = render.ForStyle("")
	assert.Equal(t, render.StyleClasses, style)
	_, style = render.ForStyle("bogus")
	assert.Equal(t, render.StyleClasses, style)
}

func TestRenderers_SharedContent(t *testing.T) {
	s := service.Increase(loadedState(), "d1")
	s = service.Increase(s, "d1")

	for _, style := range []string{render.StyleClasses, render.StyleInline} {
		t.Run(style, func(t *testing.T) {
			html := renderView(t, style, s)

			assert.Contains(t, html, "UNI Cafe")
			assert.Contains(t, html, "My orders")
			assert.Contains(t, html, ">2</p>", "cart count")
			assert.Contains(t, html, "Breakfast")
			assert.Contains(t, html, "Lunch")
			assert.Contains(t, html, "Spinach Salad")
			assert.Contains(t, html, "15 Calories")
			assert.Contains(t, html, "Not Available")
			assert.Equal(t, 1, bytes.Count([]byte(html), []byte("Customizations available")))
			assert.Equal(t, 1, bytes.Count([]byte(html), []byte("/dishes/d1/increase")))
			assert.NotContains(t, html, "/dishes/d2/increase", "unavailable dish has no stepper")
			assert.Contains(t, html, "https://example.com/salad.jpg")
		})
	}
}

func TestClassRenderer_MarksActiveTab(t *testing.T) {
	s, err := service.SelectCategory(loadedState(), "Lunch")
	require.NoError(t, err)

	html := renderView(t, render.StyleClasses, s)

	assert.Contains(t, html, `class="tab-btn active">Lunch`)
	assert.Contains(t, html, `class="tab-btn">Breakfast`)
	assert.Contains(t, html, "Chicken Biryani")
	assert.NotContains(t, html, "Spinach Salad")
}

func TestStyledRenderer_MarksActiveTab(t *testing.T) {
	html := renderView(t, render.StyleInline, loadedState())

	assert.Contains(t, html, `data-active="true">Breakfast`)
	assert.Contains(t, html, `data-active="false">Lunch`)
	assert.Contains(t, html, "border-bottom:3px solid #e53935")
	assert.NotContains(t, html, "ZgotmplZ")
}

func TestRenderers_EmptyState(t *testing.T) {
	for _, style := range []string{render.StyleClasses, render.StyleInline} {
		html := renderView(t, style, service.NewState())
		assert.NotContains(t, html, "Calories")
		assert.Contains(t, html, ">0</p>")
	}
}

func TestRenderers_EscapeContent(t *testing.T) {
	s := service.ApplyMenu(service.NewState(), &domain.Restaurant{
		Name: "<script>alert(1)</script>",
		Categories: []domain.Category{{ID: "c", Name: "Main", Dishes: []domain.Dish{
			{ID: "x", Name: "<b>Bold</b>", Available: true},
		}}},
	})

	for _, style := range []string{render.StyleClasses, render.StyleInline} {
		html := renderView(t, style, s)
		assert.NotContains(t, html, "<script>alert(1)</script>")
		assert.NotContains(t, html, "<b>Bold</b>")
	}
}

func TestRenderers_EscapeDishIDInActions(t *testing.T) {
	rest := uniCafe()
	rest.Categories[0].Dishes[0].ID = "set/1?x#y"
	s := service.ApplyMenu(service.NewState(), rest)

	view := render.NewView("w-1", render.StyleClasses, s)
	assert.Equal(t, "set%2F1%3Fx%23y", view.Dishes[0].PathID)
	assert.Equal(t, "set/1?x#y", view.Dishes[0].ID)

	for _, style := range []string{render.StyleClasses, render.StyleInline} {
		html := renderView(t, style, s)
		assert.Contains(t, html, "/widgets/w-1/dishes/set%2F1%3Fx%23y/increase")
		assert.Contains(t, html, "/widgets/w-1/dishes/set%2F1%3Fx%23y/decrease")
	}
}
