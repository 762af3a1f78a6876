package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/Darshil0305/guitar-tabs-api/logging"
	"github.com/Darshil0305/guitar-tabs-api/tabgen"
)

// Server is the HTTP front end over the tab generation pipeline
type Server struct {
	pipeline *tabgen.Pipeline
	addr     string
	logger   logging.Logger
	httpSrv  *http.Server
}

// New creates a server for the given pipeline and listen address
func New(pipeline *tabgen.Pipeline, addr string) *Server {
	return &Server{
		pipeline: pipeline,
		addr:     addr,
		logger:   logging.WithFields(logging.Fields{"component": "http_server"}),
	}
}

// Router builds the API routes
func (s *Server) Router() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/api/health", s.handleHealth).Methods("GET")
	router.HandleFunc("/api/generate-tabs", s.handleGenerateTabs).Methods("POST")

	return cors.Default().Handler(router)
}

// ListenAndServe starts serving and blocks until shutdown
func (s *Server) ListenAndServe() error {
	s.httpSrv = &http.Server{
		Addr:         s.addr,
		Handler:      s.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 10 * time.Minute, // full pipeline runs inside a request
	}

	s.logger.Info("Listening", logging.Fields{"addr": s.addr})
	return s.httpSrv.ListenAndServe()
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
