package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"sharemart/internal/config"
	"sharemart/internal/domain"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Server exposes the marketplace REST API. Callers identify themselves with
// the X-Sharer-User-Id header.
type Server struct {
	cfg        *config.Config
	users      domain.UserService
	items      domain.ItemService
	bookings   domain.BookingService
	requests   domain.RequestService
	rateLimits domain.RateLimitRepository
	logger     *zerolog.Logger
	server     *http.Server
}

func NewServer(
	cfg *config.Config,
	users domain.UserService,
	items domain.ItemService,
	bookings domain.BookingService,
	requests domain.RequestService,
	rateLimits domain.RateLimitRepository,
	logger *zerolog.Logger,
) *Server {
	s := &Server{
		cfg:        cfg,
		users:      users,
		items:      items,
		bookings:   bookings,
		requests:   requests,
		rateLimits: rateLimits,
		logger:     logger,
	}

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))
	r.Use(newIPLimiter(s.cfg.RateLimit).middleware)
	r.Use(s.userRateLimitMiddleware)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", s.handleCreateUser)
		r.Get("/", s.handleListUsers)
		r.Get("/{userId}", s.handleGetUser)
		r.Patch("/{userId}", s.handleUpdateUser)
		r.Delete("/{userId}", s.handleDeleteUser)
	})

	r.Route("/items", func(r chi.Router) {
		r.Post("/", s.handleCreateItem)
		r.Get("/", s.handleListOwnerItems)
		r.Get("/search", s.handleSearchItems)
		r.Get("/{itemId}", s.handleGetItem)
		r.Patch("/{itemId}", s.handleUpdateItem)
		r.Delete("/{itemId}", s.handleDeleteItem)
		r.Post("/{itemId}/comment", s.handlePostComment)
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", s.handleCreateBooking)
		r.Get("/", s.handleListBookings)
		r.Get("/owner", s.handleListOwnerBookings)
		r.Get("/{bookingId}", s.handleGetBooking)
		r.Patch("/{bookingId}", s.handleApproveBooking)
	})

	r.Route("/requests", func(r chi.Router) {
		r.Post("/", s.handleCreateRequest)
		r.Get("/", s.handleListOwnRequests)
		r.Get("/all", s.handleListOtherRequests)
		r.Get("/{requestId}", s.handleGetRequest)
	})

	return r
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.server.Addr).Msg("http server listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// callerID extracts the identity header; all item, booking and request
// endpoints require it.
func callerID(r *http.Request) (int64, bool) {
	raw := r.Header.Get(userIDHeader)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// pageParams reads from/size with defaults. Range validation stays in the
// services; only unparsable values are rejected here.
func (s *Server) pageParams(r *http.Request) (int, int, error) {
	from := 0
	size := s.cfg.HTTP.DefaultPageSize

	if raw := r.URL.Query().Get("from"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid from: %q", raw)
		}
		from = v
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid size: %q", raw)
		}
		size = v
	}
	return from, size, nil
}
