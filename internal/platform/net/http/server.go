package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"floaty/internal/platform/config"
	"floaty/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server owns the chi mux and the stdlib server in front of it
type Server struct {
	addr string
	mux  *chi.Mux
	srv  *stdhttp.Server
}

// NewServer reads HOST, PORT and the timeouts from cfg. opts see the mux before
// any route is mounted, which is where root middleware goes
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.MayString("HOST", "") + cfg.MayPort("PORT", ":4000")
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	m.NotFound(NotFound)
	m.MethodNotAllowed(MethodNotAllowed)
	return &Server{
		addr: addr,
		mux:  m,
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: cfg.MayDuration("READ_HEADER_TIMEOUT", 10*time.Second),
			ReadTimeout:       cfg.MayDuration("READ_TIMEOUT", 30*time.Second),
			WriteTimeout:      cfg.MayDuration("WRITE_TIMEOUT", 60*time.Second),
			IdleTimeout:       cfg.MayDuration("IDLE_TIMEOUT", 2*time.Minute),
		},
	}
}

// Router returns the Router facade over the mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr returns the configured listen address
func (s *Server) Addr() string { return s.addr }

// Handler returns the root handler
func (s *Server) Handler() stdhttp.Handler { return s.mux }

// Run listens on Addr and blocks until Shutdown
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve blocks serving ln. A clean Shutdown returns nil
func (s *Server) Serve(_ context.Context, ln net.Listener) error {
	logger.Named("http").Info().Str("addr", ln.Addr().String()).Msg("http listening")
	err := s.srv.Serve(ln)
	if errors.Is(err, stdhttp.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown drains in flight requests
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
