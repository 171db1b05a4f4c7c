package server

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/lox/showdown/internal/deck"
	"github.com/lox/showdown/internal/ranking"
)

// Server is the WebSocket judge service. It holds no game state; each
// judge request is a self-contained ranking computation.
type Server struct {
	cfg      *Config
	upgrader websocket.Upgrader
	logger   *log.Logger
	clock    quartz.Clock

	mu    sync.Mutex
	conns map[*Connection]struct{}
}

// New creates a judge server from a validated configuration
func New(cfg *Config, logger *log.Logger, clock quartz.Clock) *Server {
	return &Server{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger.WithPrefix("server"),
		clock:  clock,
		conns:  make(map[*Connection]struct{}),
	}
}

// Handler returns the HTTP handler serving /ws and /health
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// ListenAndServe starts the server on the configured address
func (s *Server) ListenAndServe() error {
	s.logger.Info("Starting judge server", "addr", s.cfg.Addr())
	return http.ListenAndServe(s.cfg.Addr(), s.Handler())
}

// Stop closes all open connections
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.conns = make(map[*Connection]struct{})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	idle := time.Duration(s.cfg.Judge.IdleTimeoutSeconds) * time.Second
	client := NewConnection(conn, s, s.logger, s.clock, idle)

	s.mu.Lock()
	s.conns[client] = struct{}{}
	total := len(s.conns)
	s.mu.Unlock()
	s.logger.Info("Client connected", "total", total)

	client.Start()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) unregister(c *Connection) {
	_ = c.Close()

	s.mu.Lock()
	delete(s.conns, c)
	total := len(s.conns)
	s.mu.Unlock()
	s.logger.Info("Client disconnected", "total", total)
}

// judge ranks the hands of one request and builds the reply frame
func (s *Server) judge(requestID string, req JudgeData) *Message {
	if len(req.Hands) == 0 {
		return errorMessage(requestID, ErrorCodeEmptyInput, ranking.ErrEmptyInput.Error())
	}
	if len(req.Hands) > s.cfg.Judge.MaxHands {
		return errorMessage(requestID, ErrorCodeBadRequest,
			fmt.Sprintf("too many hands: %d (limit %d)", len(req.Hands), s.cfg.Judge.MaxHands))
	}

	entries := make([]ranking.Entry, len(req.Hands))
	results := make([]HandResult, len(req.Hands))
	for i, h := range req.Hands {
		cards, err := deck.ParseHand(h)
		if err != nil {
			return errorMessage(requestID, ErrorCodeBadRequest, err.Error())
		}

		c, err := ranking.Classify(cards)
		if err != nil {
			var verr *ranking.ValidationError
			if errors.As(err, &verr) {
				return errorMessage(requestID, ErrorCodeValidation, fmt.Sprintf("hand %q: %s", h, err))
			}
			return errorMessage(requestID, ErrorCodeBadRequest, err.Error())
		}

		entries[i] = ranking.Entry{Label: h, Cards: cards}
		results[i] = HandResult{Hand: h, Category: c.Category.String()}
	}

	winners, err := ranking.Winners(entries)
	if err != nil {
		// Both failure kinds are caught above; anything else is a bug.
		return errorMessage(requestID, ErrorCodeBadRequest, err.Error())
	}

	labels := make([]string, len(winners))
	for i, e := range winners {
		labels[i] = e.Label
	}

	msg, err := NewMessage(MessageTypeResult, ResultData{Winners: labels, Hands: results})
	if err != nil {
		return errorMessage(requestID, ErrorCodeBadRequest, err.Error())
	}
	msg.RequestID = requestID

	s.logger.Debug("Judged hands", "hands", len(req.Hands), "winners", len(labels))
	return msg
}
