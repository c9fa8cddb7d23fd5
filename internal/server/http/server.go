// Package http exposes the credential service over HTTP: route wiring,
// request decoding, bearer-token gating and error-to-status mapping. All
// decision logic lives in the services and auth packages; handlers here are
// plumbing only.
package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/dmitrijs2005/gatekeeper/internal/server/services"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type HTTPServer struct {
	address         string
	users           *services.UserService
	logger          logging.Logger
	jwtSecret       []byte
	shutdownTimeout time.Duration
}

func NewHTTPServer(a string, l logging.Logger, us *services.UserService, secretKey string, shutdownTimeout time.Duration) (*HTTPServer, error) {
	return &HTTPServer{
		address:         a,
		logger:          l.With("module", "http_server"),
		users:           us,
		jwtSecret:       []byte(secretKey),
		shutdownTimeout: shutdownTimeout,
	}, nil
}

func (s *HTTPServer) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(s.requestLog)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))

	r.Get("/api/ping", s.Ping)

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", s.RegisterUser)
		r.Post("/login", s.Login)
		r.With(s.requireAuth).Get("/info", s.Info)
	})

	return r
}

func (s *HTTPServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:      s.routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutCtx); err != nil {
			s.logger.Error(ctx, err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	// wait for in-flight requests to drain
	<-stopped

	return nil
}
