package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"time"

	"restcafe/menu-svc/internal/render"
	"restcafe/menu-svc/internal/service"

	"github.com/gorilla/mux"
)

const loadWaitTimeout = 15 * time.Second

type Handler struct {
	Widgets service.WidgetRegistry
	QR      service.QRGenerator
}

func NewHandler(widgets service.WidgetRegistry, qr service.QRGenerator) *Handler {
	return &Handler{
		Widgets: widgets,
		QR:      qr,
	}
}

type widgetResponse struct {
	ID string `json:"id"`
	service.State
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/widgets", h.mountWidget).Methods("POST")
	r.HandleFunc("/api/widgets/{id}", h.getWidget).Methods("GET")
	r.HandleFunc("/api/widgets/{id}", h.unmountWidget).Methods("DELETE")
	r.HandleFunc("/api/widgets/{id}/category", h.selectCategory).Methods("PUT")
	r.HandleFunc("/api/widgets/{id}/dishes/{dishId}/increase", h.increaseDish).Methods("POST")
	r.HandleFunc("/api/widgets/{id}/dishes/{dishId}/decrease", h.decreaseDish).Methods("POST")

	r.HandleFunc("/widgets/new", h.newWidgetPage).Methods("GET")
	r.HandleFunc("/widgets/{id}", h.renderWidget).Methods("GET")
	r.HandleFunc("/widgets/{id}/category", h.submitCategory).Methods("POST")
	r.HandleFunc("/widgets/{id}/dishes/{dishId}/increase", h.submitIncrease).Methods("POST")
	r.HandleFunc("/widgets/{id}/dishes/{dishId}/decrease", h.submitDecrease).Methods("POST")
	r.HandleFunc("/widgets/{id}/qrcode", h.getWidgetQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "menu-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) mountWidget(w http.ResponseWriter, r *http.Request) {
	widget := h.Widgets.Mount()
	log.Printf("[menu-svc] mounted widget %s", widget.ID)
	writeJSON(w, http.StatusCreated, widgetResponse{ID: widget.ID, State: widget.State()})
}

func (h *Handler) getWidget(w http.ResponseWriter, r *http.Request) {
	widget, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if r.URL.Query().Get("wait") == "true" {
		waitForLoad(r.Context(), widget)
	}
	writeJSON(w, http.StatusOK, widgetResponse{ID: widget.ID, State: widget.State()})
}

func (h *Handler) unmountWidget(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Widgets.Unmount(id); err != nil {
		http.Error(w, "Widget not found", http.StatusNotFound)
		return
	}
	log.Printf("[menu-svc] unmounted widget %s", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) selectCategory(w http.ResponseWriter, r *http.Request) {
	widget, ok := h.lookup(w, r)
	if !ok {
		return
	}
	var body struct {
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	state, err := widget.SelectCategory(r.Context(), body.Category)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, widgetResponse{ID: widget.ID, State: state})
}

func (h *Handler) increaseDish(w http.ResponseWriter, r *http.Request) {
	h.adjustDish(w, r, (*service.Widget).Increase)
}

func (h *Handler) decreaseDish(w http.ResponseWriter, r *http.Request) {
	h.adjustDish(w, r, (*service.Widget).Decrease)
}

type adjustFunc func(*service.Widget, context.Context, string) (service.State, error)

func (h *Handler) adjustDish(w http.ResponseWriter, r *http.Request, adjust adjustFunc) {
	widget, ok := h.lookup(w, r)
	if !ok {
		return
	}
	dishID, ok := dishIDVar(w, r)
	if !ok {
		return
	}
	state, err := adjust(widget, r.Context(), dishID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, widgetResponse{ID: widget.ID, State: state})
}

// newWidgetPage mounts a widget and sends the browser to its page.
func (h *Handler) newWidgetPage(w http.ResponseWriter, r *http.Request) {
	widget := h.Widgets.Mount()
	log.Printf("[menu-svc] mounted widget %s", widget.ID)
	redirectToWidget(w, r, widget.ID)
}

func (h *Handler) renderWidget(w http.ResponseWriter, r *http.Request) {
	widget, ok := h.lookup(w, r)
	if !ok {
		return
	}
	waitForLoad(r.Context(), widget)

	renderer, style := render.ForStyle(r.URL.Query().Get("style"))
	var buf bytes.Buffer
	if err := renderer.Render(&buf, render.NewView(widget.ID, style, widget.State())); err != nil {
		log.Printf("[menu-svc] render widget %s: %v", widget.ID, err)
		http.Error(w, "Failed to render widget", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", renderer.ContentType())
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handler) submitCategory(w http.ResponseWriter, r *http.Request) {
	widget, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if _, err := widget.SelectCategory(r.Context(), r.FormValue("category")); err != nil {
		writeServiceError(w, err)
		return
	}
	redirectToWidget(w, r, widget.ID)
}

func (h *Handler) submitIncrease(w http.ResponseWriter, r *http.Request) {
	h.submitAdjust(w, r, (*service.Widget).Increase)
}

func (h *Handler) submitDecrease(w http.ResponseWriter, r *http.Request) {
	h.submitAdjust(w, r, (*service.Widget).Decrease)
}

func (h *Handler) submitAdjust(w http.ResponseWriter, r *http.Request, adjust adjustFunc) {
	widget, ok := h.lookup(w, r)
	if !ok {
		return
	}
	dishID, ok := dishIDVar(w, r)
	if !ok {
		return
	}
	if _, err := adjust(widget, r.Context(), dishID); err != nil {
		writeServiceError(w, err)
		return
	}
	redirectToWidget(w, r, widget.ID)
}

func (h *Handler) getWidgetQRCode(w http.ResponseWriter, r *http.Request) {
	widget, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if h.QR == nil {
		http.Error(w, "QR codes are not configured", http.StatusNotImplemented)
		return
	}
	qr, err := h.QR.Generate(widget.ID)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*service.Widget, bool) {
	widget, err := h.Widgets.Get(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Widget not found", http.StatusNotFound)
		return nil, false
	}
	return widget, true
}

// dishIDVar decodes the dish id, which arrives escaped when the router
// matches on the encoded path.
func dishIDVar(w http.ResponseWriter, r *http.Request) (string, bool) {
	dishID, err := url.PathUnescape(mux.Vars(r)["dishId"])
	if err != nil {
		http.Error(w, "Invalid dish id", http.StatusBadRequest)
		return "", false
	}
	return dishID, true
}

func waitForLoad(ctx context.Context, widget *service.Widget) {
	ctx, cancel := context.WithTimeout(ctx, loadWaitTimeout)
	defer cancel()
	_ = widget.WaitLoaded(ctx)
}

func redirectToWidget(w http.ResponseWriter, r *http.Request, id string) {
	_, style := render.ForStyle(r.URL.Query().Get("style"))
	http.Redirect(w, r, "/widgets/"+id+"?style="+style, http.StatusSeeOther)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownCategory):
		http.Error(w, "Category not found", http.StatusNotFound)
	case errors.Is(err, service.ErrWidgetUnmounted), errors.Is(err, service.ErrWidgetNotFound):
		http.Error(w, "Widget not found", http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
