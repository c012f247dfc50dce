package host

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/net/websocket"

	"github.com/verte-zerg/wordserver/internal/command"
	"github.com/verte-zerg/wordserver/internal/logger"
)

const maxBodyBytes = 1 << 20

// Server serves command invocations.
type Server struct {
	reg *command.Registry
	log zerolog.Logger
}

// NewServer returns a Server dispatching to reg.
func NewServer(reg *command.Registry, log zerolog.Logger) *Server {
	return &Server{reg: reg, log: logger.Component(log, "host")}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /invoke/{command}", s.handleInvoke)
	mux.HandleFunc("GET /commands", s.handleCommands)
	mux.Handle("/ws", websocket.Handler(func(ws *websocket.Conn) {
		s.serveConn(ws.Request().Context(), NewWsConn(ws))
	}))
	return mux
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		s.log.Info().Msg("stopped")
		return nil
	}
}

type commandsMsg struct {
	Commands     []string `json:"commands"`
	Capabilities []string `json:"capabilities"`
}

func (s *Server) handleCommands(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, commandsMsg{Commands: s.reg.Names(), Capabilities: s.reg.Capabilities()})
}

func (s *Server) handleInvoke(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("command")
	id := r.Header.Get("X-Request-Id")
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, command.Respond(id, nil, err))
		return
	}
	out, err := s.invoke(r.Context(), name, body, id)
	writeJSON(w, statusFor(err), command.Respond(id, out, err))
}

func (s *Server) invoke(ctx context.Context, name string, args json.RawMessage, id string) (any, error) {
	start := time.Now()
	out, err := s.reg.Invoke(ctx, name, args)
	event := s.log.Info()
	if err != nil {
		event = s.log.Warn().Err(err)
	}
	event.Str("cmd", name).Str("id", id).Dur("took", time.Since(start)).Msg("invoked")
	return out, err
}

func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, command.ErrUnknownCommand):
		return http.StatusNotFound
	case errors.Is(err, command.ErrBadArgs):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Request is one invocation sent over a socket.
type Request struct {
	ID   string
	Cmd  string
	Args json.RawMessage
}

// serveConn answers requests on c until it fails to read. Testable without a socket.
func (s *Server) serveConn(ctx context.Context, c Connector) {
	defer c.Close()

	connID := uuid.New().String()
	log := s.log.With().Str("conn", connID).Logger()
	log.Info().Str("remote", c.RemoteAddr()).Msg("front end connected")
	defer log.Info().Msg("front end disconnected")

	for {
		var req Request
		if err := c.Recv(&req); err != nil {
			if !errors.Is(err, io.EOF) {
				log.Debug().Err(err).Msg("receive failed")
			}
			return
		}
		out, err := s.invoke(ctx, req.Cmd, req.Args, req.ID)
		if err := c.Send(command.Respond(req.ID, out, err)); err != nil {
			log.Warn().Err(err).Msg("send failed")
			return
		}
	}
}
