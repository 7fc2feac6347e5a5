package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"restcafe/agg-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

type Handler struct {
	Store service.StoreInterface
}

func NewHandler(store service.StoreInterface) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/popularity/{restaurant}", h.getPopularity).Methods("GET")
}

func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return cors.Default().Handler(r)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "agg-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) getPopularity(w http.ResponseWriter, r *http.Request) {
	restaurant := mux.Vars(r)["restaurant"]

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	popularity, err := h.Store.Popularity(r.Context(), restaurant, limit)
	if err != nil {
		log.Printf("[agg-svc] popularity for %q: %v", restaurant, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(popularity)
}
