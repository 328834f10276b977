// Package api exposes the screening engine as a stateless JSON HTTP API.
// Every request carries its own responses; nothing is stored between calls.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/dshills/tdahscreen/internal/content"
	"github.com/dshills/tdahscreen/internal/scoring"
)

var (
	corsAllowedHeaders = []string{"Authorization", "Content-Type"}
	corsAllowedMethods = []string{"GET", "POST", "OPTIONS"}
)

// Server serves the screening routes for one engine and content document.
type Server struct {
	engine         *scoring.Engine
	content        *content.Content
	allowedOrigins []string
}

// NewServer returns a Server. A nil content document disables GET /content.
func NewServer(engine *scoring.Engine, c *content.Content, allowedOrigins []string) *Server {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return &Server{engine: engine, content: c, allowedOrigins: allowedOrigins}
}

func (s *Server) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/healthz", s.HealthFunc).Methods("GET")
	r.HandleFunc("/questions", s.ListQuestionsFunc).Methods("GET")
	r.HandleFunc("/questions/{id}", s.GetQuestionFunc).Methods("GET")
	r.HandleFunc("/assessments", s.AssessFunc).Methods("POST")
	r.HandleFunc("/feedback", s.FeedbackFunc).Methods("POST")
	r.HandleFunc("/severity/{score}", s.SeverityFunc).Methods("GET")
	r.HandleFunc("/descriptions/{category}/{severity}", s.DescriptionFunc).Methods("GET")
	r.HandleFunc("/content", s.ContentFunc).Methods("GET")
	glog.V(2).Infof("set up routes for screening server")
}

// Handler returns the routed handler wrapped with CORS.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	s.SetupRoutes(r)
	return handlers.CORS(
		handlers.AllowedHeaders(corsAllowedHeaders),
		handlers.AllowedMethods(corsAllowedMethods),
		handlers.AllowedOrigins(s.allowedOrigins),
	)(r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down,
// waiting at most shutdownTimeout for in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		glog.Infof("http screening server listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	glog.Info("shutting down http screening server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
