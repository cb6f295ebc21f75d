package public

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	searchapp "github.com/sngm3741/property-match-services/api/internal/search/application"
)

const defaultRequestTimeout = 15 * time.Second

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger         *log.Logger
	search         searchapp.SearchService
	properties     searchapp.PropertyQueryService
	preferences    searchapp.PreferenceService
	requestTimeout time.Duration
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger      *log.Logger
	Search      searchapp.SearchService
	Properties  searchapp.PropertyQueryService
	Preferences searchapp.PreferenceService
	// RequestTimeout bounds a whole request. A search runs several queries, each with its own timeout inside.
	RequestTimeout time.Duration
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Handler{
		logger:         cfg.Logger,
		search:         cfg.Search,
		properties:     cfg.Properties,
		preferences:    cfg.Preferences,
		requestTimeout: timeout,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Post("/search", h.searchHandler())
	r.With(authMiddleware).Post("/search/me", h.searchMeHandler())
	r.Get("/properties", h.propertyListHandler())
	r.Get("/properties/most-searched", h.mostSearchedHandler())
	r.With(authMiddleware).Get("/users/me/preferences", h.preferenceGetHandler())
	r.With(authMiddleware).Put("/users/me/preferences", h.preferenceReplaceHandler())
	r.With(authMiddleware).Get("/auth/verify", h.authVerifyHandler())
}

func (h *Handler) logf(format string, args ...any) {
	if h.logger != nil {
		h.logger.Printf(format, args...)
	}
}
