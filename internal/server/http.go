package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	_ "net/http/pprof" // Profiling
	"sandbox-core/internal/domain"
	"sandbox-core/internal/network"
	"sandbox-core/internal/version"
	"sandbox-core/pkg/api"
	"sandbox-core/pkg/logger"
	"time"

	"github.com/sirupsen/logrus"
)

// Simulation - то, что сервер может делать с симуляцией из чужой горутины
type Simulation interface {
	Snapshot() []api.ActorView
	Enqueue(cmd api.ClientCommand) error
}

// EventSource - хвост последних событий (engine.EventLog)
type EventSource interface {
	Recent() []domain.Event
}

// shutdownTimeout - сколько ждём активные запросы при остановке
const shutdownTimeout = 5 * time.Second

type Server struct {
	Sim    Simulation
	Hub    *network.Broadcaster
	Events EventSource
	Addr   string
}

func New(sim Simulation, hub *network.Broadcaster, events EventSource, addr string) *Server {
	return &Server{
		Sim:    sim,
		Hub:    hub,
		Events: events,
		Addr:   addr,
	}
}

// Handler собирает роуты
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	debugHandler := NewDebugHandler(s.Sim, s.Events)
	debugHandler.RegisterRoutes(mux)

	// pprof регистрируется в DefaultServeMux
	mux.Handle("/debug/pprof/", http.DefaultServeMux)
	return mux
}

// Run запускает HTTP сервер и останавливает его по отмене контекста
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.WithError(err).Warn("HTTP server shutdown failed")
		}
	}()

	logger.Log.WithFields(logrus.Fields{
		"component": "server",
		"addr":      s.Addr,
	}).Info("Sandbox debug server running")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с отладочных страниц
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("Upgrade error")
		return
	}

	client := NewClient(s.Sim, s.Hub, conn)

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(version.Info())
}
