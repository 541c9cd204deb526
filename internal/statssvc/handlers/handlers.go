package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"

	"github.com/wordrush/boggle-services/internal/statssvc/cache"
	"github.com/wordrush/boggle-services/internal/statssvc/store"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

type Handler struct {
	store *store.LeaderboardStore
	cache *cache.Cache
}

func NewHandler(store *store.LeaderboardStore, c *cache.Cache) *Handler {
	return &Handler{store: store, cache: c}
}

type Response struct {
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error"`
}

func (h *Handler) CreateResponse(w http.ResponseWriter, rsp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rsp.Code)

	json.NewEncoder(w).Encode(rsp)
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	rsp := Response{
		Message: "stats service is running at port " + os.Getenv("STATS_SERVICE_PORT"),
		Code:    200,
		Data:    nil,
	}
	json.NewEncoder(w).Encode(rsp)
}

// LeaderboardHandler serves the top scoring players, from the Redis page
// cache when fresh, from Postgres otherwise.
func (h *Handler) LeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			h.CreateResponse(w, Response{Code: http.StatusBadRequest, Error: "invalid limit"})
			return
		}
		limit = n
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	if h.cache != nil {
		if entries, ok := h.cache.GetTop(r.Context(), limit); ok {
			h.CreateResponse(w, Response{
				Code: http.StatusOK,
				Data: map[string]interface{}{"leaders": entries},
			})
			return
		}
	}

	entries, err := h.store.Top(r.Context(), limit)
	if err != nil {
		h.CreateResponse(w, Response{Code: http.StatusInternalServerError, Error: err.Error()})
		return
	}

	if h.cache != nil {
		_ = h.cache.SetTop(r.Context(), limit, entries)
	}

	h.CreateResponse(w, Response{
		Code: http.StatusOK,
		Data: map[string]interface{}{"leaders": entries},
	})
}
