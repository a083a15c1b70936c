package airmash

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// A Server accepts game clients over websocket and hands each connection
// to SessionHandler.
type Server struct {
	// WSPath is the websocket endpoint, "/" if empty.
	WSPath string
	// MetricsPath serves Gatherer in the prometheus text format. Empty
	// disables it.
	MetricsPath string
	Gatherer    prometheus.Gatherer

	// CaptureDir, if set, receives one capture file per session named
	// after the session ID.
	CaptureDir string

	Transport      TransportConfig
	SessionHandler SessionHandler
	Logger         zerolog.Logger

	upgrader websocket.Upgrader
}

// SessionHandler runs one client session. The transport is closed after it
// returns.
type SessionHandler func(ctx context.Context, s *Session, t *Transport) error

// A Session describes one connected client.
type Session struct {
	ID         uuid.UUID
	RemoteAddr net.Addr
	Started    time.Time
}

// Handler returns the HTTP routes of s.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	if s.MetricsPath != "" {
		g := s.Gatherer
		if g == nil {
			g = prometheus.DefaultGatherer
		}
		r.Method(http.MethodGet, s.MetricsPath, promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	}

	path := s.WSPath
	if path == "" {
		path = "/"
	}
	r.Get(path, s.serveWS)

	return r
}

// Serve accepts connections on l until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	hs := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- hs.Serve(l) }()

	s.Logger.Info().Stringer("addr", l.Addr()).Msg("listening")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ListenAndServe listens on the TCP address addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, l)
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied.
		s.Logger.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("websocket upgrade failed")
		return
	}

	sess := &Session{
		ID:         uuid.New(),
		RemoteAddr: conn.RemoteAddr(),
		Started:    time.Now(),
	}
	log := s.Logger.With().Stringer("session", sess.ID).Logger()

	cfg := s.Transport
	cfg.Logger = log
	if s.CaptureDir != "" {
		cw, err := s.openCapture(sess.ID)
		if err != nil {
			log.Error().Err(err).Msg("capture disabled for session")
		} else {
			cfg.Capture = cw
			defer cw.Close()
		}
	}

	t := NewServerTransport(conn, cfg)
	defer t.Close()

	cfg.Metrics.sessionOpened()
	defer cfg.Metrics.sessionClosed()

	log.Info().Stringer("remote", sess.RemoteAddr).Msg("session opened")

	err = s.SessionHandler(r.Context(), sess, t)
	if err != nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		log.Warn().Err(err).Dur("duration", time.Since(sess.Started)).Msg("session closed")
		return
	}
	log.Info().Dur("duration", time.Since(sess.Started)).Msg("session closed")
}

func (s *Server) openCapture(id uuid.UUID) (*CaptureWriter, error) {
	if err := os.MkdirAll(s.CaptureDir, 0o755); err != nil {
		return nil, fmt.Errorf("create capture dir: %w", err)
	}
	f, err := os.Create(filepath.Join(s.CaptureDir, id.String()+".cap"))
	if err != nil {
		return nil, fmt.Errorf("create capture file: %w", err)
	}
	return NewCaptureWriter(f), nil
}
