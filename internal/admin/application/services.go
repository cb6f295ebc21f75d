package application

import (
	"context"

	"github.com/sngm3741/property-match-services/api/internal/search/domain"
)

// PropertyRepository exposes admin operations on listings.
type PropertyRepository interface {
	Find(ctx context.Context, filter PropertyFilter) ([]domain.Property, error)
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	SetActive(ctx context.Context, id string, active bool) (*domain.Property, error)
}

// SearchEventRepository allows listing recorded search events.
type SearchEventRepository interface {
	List(ctx context.Context, filter SearchEventFilter) ([]domain.SearchEvent, error)
}

// PropertyFilter expresses admin search criteria.
type PropertyFilter struct {
	Keyword         string
	IncludeInactive bool
	Limit           int
}

// SearchEventFilter expresses admin criteria for search events.
type SearchEventFilter struct {
	UserID        string
	AnonymousOnly bool
	Limit         int
}

// PropertyService describes admin listing use-cases.
type PropertyService interface {
	List(ctx context.Context, filter PropertyFilter) ([]domain.Property, error)
	Detail(ctx context.Context, id string) (*domain.Property, error)
	SetActive(ctx context.Context, id string, active bool) (*domain.Property, error)
}

// SearchEventService describes admin search-event use-cases.
type SearchEventService interface {
	List(ctx context.Context, filter SearchEventFilter) ([]domain.SearchEvent, error)
}
