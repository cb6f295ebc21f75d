package admin

import (
	"log"

	"github.com/go-chi/chi/v5"

	adminapp "github.com/sngm3741/property-match-services/api/internal/admin/application"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger             *log.Logger
	propertyService    adminapp.PropertyService
	searchEventService adminapp.SearchEventService
}

// Config provides dependencies for Handler.
type Config struct {
	Logger             *log.Logger
	PropertyService    adminapp.PropertyService
	SearchEventService adminapp.SearchEventService
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:             cfg.Logger,
		propertyService:    cfg.PropertyService,
		searchEventService: cfg.SearchEventService,
	}
}

// Register mounts admin routes onto router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/properties", h.propertySearchHandler())
	r.Get("/properties/{id}", h.propertyDetailHandler())
	r.Patch("/properties/{id}", h.propertyUpdateHandler())
	r.Get("/search-events", h.searchEventListHandler())
}
