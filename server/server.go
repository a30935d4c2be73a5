package server

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"
)

// Server binds one listener and answers every request on it with Body
type Server struct {
	config Config
	out    io.Writer

	mu sync.Mutex
	ln net.Listener
}

// New returns a Server for c. The startup line is written to out.
func New(c Config, out io.Writer) (*Server, error) {
	switch c.Engine {
	case "":
		c.Engine = EngineNetHTTP
	case EngineNetHTTP, EngineFastHTTP:
	default:
		return nil, fmt.Errorf("unknown engine %q, expected %s or %s", c.Engine, EngineNetHTTP, EngineFastHTTP)
	}
	if out == nil {
		out = io.Discard
	}
	return &Server{config: c, out: out}, nil
}

// Listen binds the TCP listener and announces the port.
// Nothing is written to out when the bind fails.
func (s *Server) Listen() error {
	addr := s.config.Addr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		berr := &BindError{Addr: addr, Err: err}
		if berr.Reason() == ReasonAddrInUse {
			logPortOwner(s.config.Port)
		}
		log.Error().Err(err).Str("addr", addr).Str("reason", berr.Reason()).Msg("listen failed")
		return berr
	}

	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()

	port := ln.Addr().(*net.TCPAddr).Port
	log.Debug().Str("addr", ln.Addr().String()).Str("engine", s.config.Engine).Msg("listening")
	fmt.Fprintf(s.out, "Server is running on port %d\n", port)
	return nil
}

// Addr returns the bound address, or nil before Listen
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Serve accepts connections until the listener is closed.
// Closing the listener is not reported as an error.
func (s *Server) Serve() error {
	s.mu.Lock()
	ln := s.ln
	s.mu.Unlock()
	if ln == nil {
		return errors.New("serve called before listen")
	}

	var err error
	switch s.config.Engine {
	case EngineFastHTTP:
		srv := &fasthttp.Server{
			Handler: FastHandler,
			Logger:  fastLogger{},
		}
		err = srv.Serve(ln)
	default:
		srv := &http.Server{Handler: http.HandlerFunc(Handler)}
		err = srv.Serve(ln)
	}

	if err != nil && !errors.Is(err, net.ErrClosed) {
		log.Error().Err(err).Msg("serve exited")
		return err
	}
	return nil
}

// ListenAndServe binds and then serves for the life of the process
func (s *Server) ListenAndServe() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

// Close releases the listener. In-flight requests are not waited for.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Close()
}

// fastLogger routes fasthttp's own messages into zerolog
type fastLogger struct{}

func (fastLogger) Printf(format string, args ...interface{}) {
	log.Debug().Str("engine", EngineFastHTTP).Msgf(format, args...)
}
