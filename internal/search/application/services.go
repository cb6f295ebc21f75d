package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sngm3741/property-match-services/api/internal/search/domain"
)

//go:generate mockgen -destination=../../mocks/search_mocks.go -package=mocks github.com/sngm3741/property-match-services/api/internal/search/application PropertyRepository,SearchEventRepository,PreferenceRepository,PropertyCache,SearchRecorder

// ErrPreferenceNotFound is returned when a user has never stored preferences.
var ErrPreferenceNotFound = errors.New("preference not found")

// PropertyQuerier runs filtered listing queries. Results are ordered by
// creation time, newest first.
type PropertyQuerier interface {
	Query(ctx context.Context, filter PropertyFilter) ([]domain.Property, error)
}

// SearchCounterRepository applies search telemetry to listings.
// IncrementSearchCounters must be a store-side atomic increment per listing.
type SearchCounterRepository interface {
	IncrementSearchCounters(ctx context.Context, ids []string, userID string) error
}

// PropertyRepository は検索コンテキストで物件を扱うためのポート。
type PropertyRepository interface {
	PropertyQuerier
	SearchCounterRepository
	MostSearched(ctx context.Context, limit int) ([]domain.Property, error)
}

// SearchEventRepository は検索イベントを永続化するポート。
type SearchEventRepository interface {
	Create(ctx context.Context, event *domain.SearchEvent) error
}

// PreferenceRepository stores per-user preference profiles.
type PreferenceRepository interface {
	Get(ctx context.Context, userID string) (*domain.UserPreference, error)
	Save(ctx context.Context, pref *domain.UserPreference) error
}

// PropertyCache caches the most searched ranking.
type PropertyCache interface {
	GetMostSearched(ctx context.Context, limit int) ([]domain.Property, bool, error)
	SetMostSearched(ctx context.Context, limit int, properties []domain.Property) error
}

// SearchRecorder receives the listings surfaced by a search.
type SearchRecorder interface {
	Record(properties []domain.Property, userID string)
}

// PropertyFilter expresses listing criteria. Nil bounds are not applied.
type PropertyFilter struct {
	ActiveOnly       bool
	LocationContains string
	MaxPrice         *float64
	MinBedrooms      *int
	MinSize          *int
	Amenities        []string
}

// Matches evaluates the filter against a single listing in memory.
func (f PropertyFilter) Matches(p domain.Property) bool {
	if f.ActiveOnly && !p.IsActive {
		return false
	}
	if f.LocationContains != "" && !containsFold(p.Location, f.LocationContains) {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinBedrooms != nil && p.Bedrooms < *f.MinBedrooms {
		return false
	}
	if f.MinSize != nil && p.SizeSqft < *f.MinSize {
		return false
	}
	if !p.HasAmenities(f.Amenities) {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Caller identifies a signed-in user. A nil *Caller means an anonymous search.
type Caller struct {
	UserID string
}

// SearchOutcome is what a search hands back to the transport layer.
type SearchOutcome struct {
	SearchID   string
	Preference domain.SearchPreference
	Result     domain.MatchResult
}

// SearchService describes the property match use-case.
// SearchService は物件マッチングのユースケースを提供する。
type SearchService interface {
	FindMatches(ctx context.Context, raw domain.RawPreference, caller *Caller) (SearchOutcome, error)
}

// PropertyQueryService describes listing read use-cases.
type PropertyQueryService interface {
	List(ctx context.Context) ([]domain.Property, error)
	MostSearched(ctx context.Context) ([]domain.Property, error)
}

// PreferenceService describes stored-preference use-cases.
type PreferenceService interface {
	Get(ctx context.Context, userID string) (*domain.UserPreference, error)
	Replace(ctx context.Context, userID string, raw domain.RawPreference) (*domain.UserPreference, error)
}
