package render

import (
	"fmt"
	"html/template"
	"io"
)

type Theme struct {
	Accent     string
	Muted      string
	Calories   string
	Stepper    string
	FontFamily string
}

var DefaultTheme = Theme{
	Accent:     "#e53935",
	Muted:      "#666666",
	Calories:   "#e5a035",
	Stepper:    "#6ab04c",
	FontFamily: "Roboto, sans-serif",
}

func (t Theme) styles() map[string]string {
	return map[string]string{
		"body":      fmt.Sprintf("margin:0;font-family:%s", t.FontFamily),
		"nav":       "display:flex;justify-content:space-between;align-items:center;padding:12px 24px;box-shadow:0 2px 4px #0002",
		"heading":   "font-size:28px;margin:0",
		"cart":      "display:flex;align-items:center",
		"count":     fmt.Sprintf("background:%s;color:#fff;border-radius:50%%;padding:2px 8px;margin-left:4px", t.Accent),
		"tabs":      "display:flex;overflow-x:auto;white-space:nowrap;border-bottom:1px solid #ddd",
		"tab":       fmt.Sprintf("background:none;border:none;padding:12px 20px;color:%s;cursor:pointer", t.Muted),
		"tabActive": fmt.Sprintf("background:none;border:none;border-bottom:3px solid %s;padding:12px 20px;color:%s;cursor:pointer", t.Accent, t.Accent),
		"items":     "padding:16px 24px",
		"card":      "display:flex;justify-content:space-between;border-bottom:1px solid #eee;padding:16px 0",
		"details":   "flex:1;padding-right:16px",
		"calories":  fmt.Sprintf("color:%s;font-weight:600", t.Calories),
		"stepper":   fmt.Sprintf("display:inline-flex;align-items:center;background:%s;border-radius:16px;color:#fff", t.Stepper),
		"stepBtn":   "background:none;border:none;color:#fff;font-size:18px;padding:4px 12px;cursor:pointer",
		"addon":     fmt.Sprintf("color:%s", t.Accent),
		"image":     "width:120px;height:120px;object-fit:cover;border-radius:8px",
	}
}

const styledTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.RestaurantName}}</title></head>
<body style="{{css "body"}}">
<header style="{{css "nav"}}">
  <h1 style="{{css "heading"}}">{{.RestaurantName}}</h1>
  <p>My orders</p>
  <div style="{{css "cart"}}"><span aria-label="cart">&#128722;</span><p style="{{css "count"}}">{{.CartTotal}}</p></div>
</header>
<nav style="{{css "tabs"}}">
{{- range .Tabs}}
  <form method="post" action="{{$.ActionPath "/category"}}" style="display:inline">
    <input type="hidden" name="category" value="{{.Name}}">
    <button type="submit" style="{{if .Active}}{{css "tabActive"}}{{else}}{{css "tab"}}{{end}}" data-active="{{.Active}}">{{.Name}}</button>
  </form>
{{- end}}
</nav>
<main style="{{css "items"}}">
  <h2>{{.SelectedCategory}}</h2>
{{- range .Dishes}}
  <section style="{{css "card"}}">
    <div style="{{css "details"}}">
      <h1>{{.Name}}</h1>
      <p>{{.Description}}</p>
      <p style="{{css "calories"}}">{{.Calories}} Calories</p>
      {{- if .Available}}
      <div style="{{css "stepper"}}">
        <form method="post" action="{{$.ActionPath (printf "/dishes/%s/decrease" .PathID)}}"><button type="submit" style="{{css "stepBtn"}}">-</button></form>
        <p>{{.Quantity}}</p>
        <form method="post" action="{{$.ActionPath (printf "/dishes/%s/increase" .PathID)}}"><button type="submit" style="{{css "stepBtn"}}">+</button></form>
      </div>
      {{- else}}
      <p>Not Available</p>
      {{- end}}
      {{- if .HasAddons}}
      <p style="{{css "addon"}}">Customizations available</p>
      {{- end}}
    </div>
    <img src="{{.ImageURL}}" alt="{{.Name}}" style="{{css "image"}}">
  </section>
{{- end}}
</main>
</body>
</html>
`

// StyledRenderer renders the same markup with inline styles taken from a Theme.
type StyledRenderer struct {
	tmpl *template.Template
}

func NewStyledRenderer(theme Theme) *StyledRenderer {
	styles := theme.styles()
	funcs := template.FuncMap{
		"css": func(name string) template.CSS { return template.CSS(styles[name]) },
	}
	return &StyledRenderer{
		tmpl: template.Must(template.New("styled").Funcs(funcs).Parse(styledTemplate)),
	}
}

func (r *StyledRenderer) Render(w io.Writer, view View) error {
	return r.tmpl.Execute(w, view)
}

func (r *StyledRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}
