package server

import (
	"encoding/json"
	"net/http"
	"sandbox-core/internal/engine"
	"sandbox-core/pkg/api"
)

// DebugHandler предоставляет доступ к состоянию симуляции на конец последнего тика
type DebugHandler struct {
	Sim    Simulation
	Events EventSource
}

func NewDebugHandler(sim Simulation, events EventSource) *DebugHandler {
	return &DebugHandler{Sim: sim, Events: events}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/actors", h.handleActors)
	mux.HandleFunc("/debug/events", h.handleEvents)
}

// /debug/actors?kind=PEDESTRIAN - снимок актёров, можно отфильтровать по типу
func (h *DebugHandler) handleActors(w http.ResponseWriter, r *http.Request) {
	actors := h.Sim.Snapshot()
	if kind := r.URL.Query().Get("kind"); kind != "" {
		filtered := make([]api.ActorView, 0, len(actors))
		for _, a := range actors {
			if a.Kind == kind {
				filtered = append(filtered, a)
			}
		}
		actors = filtered
	}
	writeJSON(w, actors)
}

// /debug/events - последние события симуляции
func (h *DebugHandler) handleEvents(w http.ResponseWriter, _ *http.Request) {
	if h.Events == nil {
		writeJSON(w, nil)
		return
	}
	recent := h.Events.Recent()
	views := make([]api.EventView, 0, len(recent))
	for _, e := range recent {
		views = append(views, engine.BuildEventView(e))
	}
	writeJSON(w, views)
}

func writeJSON(w http.ResponseWriter, data any) {
	// Разрешаем запросы с любого источника (нужно для локальной отладочной страницы)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Пустой список отдаём как [], а не null
	if data == nil {
		_, _ = w.Write([]byte("[]"))
		return
	}

	_ = json.NewEncoder(w).Encode(data)
}
