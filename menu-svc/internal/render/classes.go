package render

import (
	"html/template"
	"io"
)

const classStylesheet = `
.nav-bar{display:flex;justify-content:space-between;align-items:center;padding:12px 24px;box-shadow:0 2px 4px #0002}
.cafe-heading{font-size:28px;margin:0}
.cart-icon{position:relative;display:flex;align-items:center}
.count{background:#e53935;color:#fff;border-radius:50%;padding:2px 8px;margin-left:4px}
.tab-bar{display:flex;overflow-x:auto;white-space:nowrap;border-bottom:1px solid #ddd}
.tab-btn{background:none;border:none;padding:12px 20px;color:#666;cursor:pointer}
.tab-btn.active{color:#e53935;border-bottom:3px solid #e53935}
.items-container{padding:16px 24px}
.item-card{display:flex;justify-content:space-between;border-bottom:1px solid #eee;padding:16px 0}
.item-details{flex:1;padding-right:16px}
.calories{color:#e5a035;font-weight:600}
.qty-controls{display:inline-flex;align-items:center;background:#6ab04c;border-radius:16px;color:#fff}
.qty-controls button{background:none;border:none;color:#fff;font-size:18px;padding:4px 12px;cursor:pointer}
.addon-text{color:#e53935}
.item-image{width:120px;height:120px;object-fit:cover;border-radius:8px}
`

const classTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.RestaurantName}}</title><style>{{stylesheet}}</style></head>
<body>
<div class="nav-bar">
  <h1 class="cafe-heading">{{.RestaurantName}}</h1>
  <p>My orders</p>
  <div class="cart-icon"><span aria-label="cart">&#128722;</span><p class="count">{{.CartTotal}}</p></div>
</div>
<div class="tab-bar">
{{- range .Tabs}}
  <form method="post" action="{{$.ActionPath "/category"}}" style="display:inline">
    <input type="hidden" name="category" value="{{.Name}}">
    <button type="submit" class="tab-btn{{if .Active}} active{{end}}">{{.Name}}</button>
  </form>
{{- end}}
</div>
<div class="items-container">
  <h2>{{.SelectedCategory}}</h2>
{{- range .Dishes}}
  <div class="item-card">
    <div class="item-details">
      <h1>{{.Name}}</h1>
      <p>{{.Description}}</p>
      <p class="calories">{{.Calories}} Calories</p>
      {{- if .Available}}
      <div class="qty-controls">
        <form method="post" action="{{$.ActionPath (printf "/dishes/%s/decrease" .PathID)}}"><button type="submit">-</button></form>
        <p>{{.Quantity}}</p>
        <form method="post" action="{{$.ActionPath (printf "/dishes/%s/increase" .PathID)}}"><button type="submit">+</button></form>
      </div>
      {{- else}}
      <p>Not Available</p>
      {{- end}}
      {{- if .HasAddons}}
      <p class="addon-text">Customizations available</p>
      {{- end}}
    </div>
    <img src="{{.ImageURL}}" alt="{{.Name}}" class="item-image">
  </div>
{{- end}}
</div>
</body>
</html>
`

// ClassRenderer renders markup that relies on CSS class names.
type ClassRenderer struct {
	tmpl *template.Template
}

func NewClassRenderer() *ClassRenderer {
	funcs := template.FuncMap{
		"stylesheet": func() template.CSS { return template.CSS(classStylesheet) },
	}
	return &ClassRenderer{
		tmpl: template.Must(template.New("classes").Funcs(funcs).Parse(classTemplate)),
	}
}

func (r *ClassRenderer) Render(w io.Writer, view View) error {
	return r.tmpl.Execute(w, view)
}

func (r *ClassRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}
