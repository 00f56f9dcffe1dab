// Package web exposes a finished build over HTTP: JSON endpoints for deck
// reports and themes, plus a websocket replay of the build event log.
package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"jumpcube/internal/assign"
	buildlog "jumpcube/internal/log"
	"jumpcube/internal/theme"
)

// ThemeInfo is the JSON representation of a theme for /api/themes.
type ThemeInfo struct {
	Name        string   `json:"name"`
	Colors      string   `json:"colors"`
	Archetype   string   `json:"archetype"`
	Keywords    []string `json:"keywords,omitempty"`
	CoreReserve int      `json:"coreReserve"`
}

// Server serves one build result. The result is immutable, so every
// handler is read-only and safe for concurrent requests.
type Server struct {
	log      *zap.Logger
	result   *assign.Result
	registry *theme.Registry
	events   []buildlog.BuildEvent
	mux      *http.ServeMux
}

// Config carries everything the server publishes.
type Config struct {
	Logger   *zap.Logger
	Result   *assign.Result
	Registry *theme.Registry
	Events   []buildlog.BuildEvent // build event log, replayed over the websocket
}

// NewServer builds the HTTP handler for a finished build.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		log:      logger,
		result:   cfg.Result,
		registry: cfg.Registry,
		events:   cfg.Events,
		mux:      http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.HandleFunc("GET /api/build", s.handleBuild)
	s.mux.HandleFunc("GET /api/decks", s.handleDecks)
	s.mux.HandleFunc("GET /api/decks/{theme}", s.handleDeck)
	s.mux.HandleFunc("GET /api/themes", s.handleThemes)
	s.mux.HandleFunc("GET /api/leftover", s.handleLeftover)
	s.mux.HandleFunc("GET /ws/events", s.handleEvents)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("encode response", zap.Error(err))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok", "runId": s.result.RunID})
}

func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.result)
}

func (s *Server) handleDecks(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.result.Decks)
}

func (s *Server) handleDeck(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("theme")
	rep := s.result.Deck(name)
	if rep == nil {
		http.Error(w, "no such theme", http.StatusNotFound)
		return
	}
	s.writeJSON(w, rep)
}

func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	infos := make([]ThemeInfo, 0, s.registry.Len())
	for _, t := range s.registry.Themes() {
		infos = append(infos, ThemeInfo{
			Name:        t.Name,
			Colors:      t.Colors.String(),
			Archetype:   t.Archetype.String(),
			Keywords:    t.Keywords,
			CoreReserve: t.CoreReserve,
		})
	}
	s.writeJSON(w, infos)
}

func (s *Server) handleLeftover(w http.ResponseWriter, r *http.Request) {
	leftover := s.result.Leftover
	if leftover == nil {
		leftover = []string{}
	}
	s.writeJSON(w, leftover)
}

// eventView is the wire form of a build event.
type eventView struct {
	Seq     int     `json:"seq"`
	Phase   string  `json:"phase"`
	Type    string  `json:"type"`
	Theme   string  `json:"theme,omitempty"`
	Card    string  `json:"card,omitempty"`
	Score   float64 `json:"score,omitempty"`
	Details string  `json:"details"`
}

// handleEvents replays the build event log over a websocket, one JSON
// message per event, then closes.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // local tool; any origin may connect
	})
	if err != nil {
		s.log.Warn("websocket accept", zap.Error(err))
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()
	for _, e := range s.events {
		msg, err := json.Marshal(eventView{
			Seq:     e.Seq,
			Phase:   e.Phase,
			Type:    e.Type.String(),
			Theme:   e.Theme,
			Card:    e.Card,
			Score:   e.Score,
			Details: e.Details,
		})
		if err != nil {
			s.log.Warn("encode event", zap.Error(err))
			return
		}
		if err := conn.Write(ctx, websocket.MessageText, msg); err != nil {
			return
		}
	}
	conn.Close(websocket.StatusNormalClosure, "log replayed")
}

// ListenAndServe starts the HTTP server on addr.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.log.Info("web server listening", zap.String("addr", addr))
	return srv.ListenAndServe()
}
