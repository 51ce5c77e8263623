package stubapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/recruit/internal/client/models"
	"github.com/dmitrijs2005/recruit/internal/logging"
	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address  string
	data     *Data
	log      logging.Logger
	secret   []byte
	tokenTTL time.Duration
}

func NewServer(address string, data *Data, l logging.Logger, secretKey string, tokenTTL time.Duration) *Server {
	return &Server{
		address:  address,
		data:     data,
		log:      l.With("module", "stub_api"),
		secret:   []byte(secretKey),
		tokenTTL: tokenTTL,
	}
}

// Handler returns the router with every route registered under /api.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.logRequests)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.fail(w, r, failure(ErrNotFound, "Route not found"))
	})

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/login", s.login).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", s.register).Methods(http.MethodPost)
	api.HandleFunc("/auth/register/upload", s.uploadResume).Methods(http.MethodPost)
	api.HandleFunc("/auth/register/confirm", s.confirmRegistration).Methods(http.MethodPost)
	api.HandleFunc("/jobs", s.listJobs).Methods(http.MethodGet)
	api.HandleFunc("/jobs/{id}", s.getJob).Methods(http.MethodGet)

	authed := api.NewRoute().Subrouter()
	authed.Use(s.authenticate)

	employer := authed.NewRoute().Subrouter()
	employer.Use(s.requireRole(models.RoleEmployer))
	employer.HandleFunc("/jobs", s.createJob).Methods(http.MethodPost)
	employer.HandleFunc("/jobs/{id}", s.updateJob).Methods(http.MethodPut)
	employer.HandleFunc("/jobs/{id}", s.deleteJob).Methods(http.MethodDelete)
	employer.HandleFunc("/companies/applications", s.companyApplications).Methods(http.MethodGet)
	employer.HandleFunc("/applications/{id}/status", s.setApplicationStatus).Methods(http.MethodPut)

	candidate := authed.NewRoute().Subrouter()
	candidate.Use(s.requireRole(models.RoleCandidate))
	candidate.HandleFunc("/applications", s.apply).Methods(http.MethodPost)
	candidate.HandleFunc("/candidates/applications", s.candidateApplications).Methods(http.MethodGet)
	candidate.HandleFunc("/candidates/profile", s.getProfile).Methods(http.MethodGet)
	candidate.HandleFunc("/candidates/profile", s.putProfile).Methods(http.MethodPut)
	candidate.HandleFunc("/candidates/assessment-scores", s.assessmentScores).Methods(http.MethodGet)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *Server) serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.log.Info(ctx, "Stopping stub API...")
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(sctx)
	}()

	s.log.Info(ctx, "Starting stub API", "address", listen.Addr().String())

	if err := srv.Serve(listen); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-stopped
}
