package bootstrap

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/clientenv/pkg/clientinfo"
	"github.com/dmitrymomot/clientenv/pkg/logger"
)

// Handler serves the bootstrap page and its JSON API.
type Handler struct {
	cfg     Config
	builder *clientinfo.Builder
	log     *slog.Logger
	newSeed func(n int) (Seed, error)
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithLogger sets the handler logger. Nil is ignored.
func WithLogger(l *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithBuilder sets the descriptor builder. Nil is ignored.
func WithBuilder(b *clientinfo.Builder) HandlerOption {
	return func(h *Handler) {
		if b != nil {
			h.builder = b
		}
	}
}

// WithSeedSource replaces NewSeed, e.g. with a deterministic source in tests.
func WithSeedSource(fn func(n int) (Seed, error)) HandlerOption {
	return func(h *Handler) {
		if fn != nil {
			h.newSeed = fn
		}
	}
}

// NewHandler returns a Handler for cfg.
func NewHandler(cfg Config, opts ...HandlerOption) *Handler {
	if cfg.SeedSize < 1 {
		cfg.SeedSize = 5
	}
	h := &Handler{
		cfg:     cfg,
		builder: clientinfo.NewBuilder(),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		newSeed: NewSeed,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes returns the router:
//
//	GET  /               bootstrap HTML page
//	GET  /health         liveness probe
//	GET  /api/bootstrap  flags JSON
//	GET  /api/client     descriptor of the requesting client
//	POST /api/client     descriptor of a posted navigator record
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(clientinfo.Middleware(h.builder, clientinfo.WithTimezoneHeader(h.cfg.TimezoneHeader)))

	r.Get("/", h.page)
	r.Get("/health", h.health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/bootstrap", h.flags)
		r.Get("/client", h.client)
		r.Post("/client", h.describe)
	})
	return r
}

// Flags builds the payload for the request.
func (h *Handler) Flags(r *http.Request) (Flags, error) {
	seed, err := h.newSeed(h.cfg.SeedSize)
	if err != nil {
		return Flags{}, err
	}
	info, ok := clientinfo.FromContext(r.Context())
	if !ok {
		info = h.builder.Build(clientinfo.FromRequest(r))
	}
	return NewFlags(h.cfg, seed, info), nil
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	flags, err := h.Flags(r)
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "seed_unavailable", "seed material unavailable", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	opts := PageOptions{
		Title:       h.cfg.Title,
		Lang:        flags.ClientInfo.Language(),
		EntryScript: h.cfg.EntryScript,
	}
	if err := Page(flags, opts).Render(r.Context(), w); err != nil {
		h.log.ErrorContext(r.Context(), "render bootstrap page", logger.Error(err))
	}
}

func (h *Handler) flags(w http.ResponseWriter, r *http.Request) {
	flags, err := h.Flags(r)
	if err != nil {
		h.fail(w, r, http.StatusInternalServerError, "seed_unavailable", "seed material unavailable", err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	h.json(w, r, http.StatusOK, flags)
}

func (h *Handler) client(w http.ResponseWriter, r *http.Request) {
	info, ok := clientinfo.FromContext(r.Context())
	if !ok {
		info = h.builder.Build(clientinfo.FromRequest(r))
	}
	h.json(w, r, http.StatusOK, info)
}

func (h *Handler) describe(w http.ResponseWriter, r *http.Request) {
	nav, err := clientinfo.DecodeNavigator(r.Body)
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, "invalid_navigator", clientinfo.ErrInvalidNavigator.Error(), err)
		return
	}
	info := h.builder.Build(nav)
	h.log.DebugContext(r.Context(), "client described", logger.Fields("client", info.Map()))
	h.json(w, r, http.StatusOK, info)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ALIVE"))
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.log.Log(r.Context(), level, "request failed", slog.String("code", code), logger.Error(err))

	h.json(w, r, status, map[string]errorDetail{"error": {Code: code, Message: message}})
}

func (h *Handler) json(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.ErrorContext(r.Context(), "encode response", logger.Error(err))
	}
}
