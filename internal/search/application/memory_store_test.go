package application_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sngm3741/property-match-services/api/internal/search/application"
	"github.com/sngm3741/property-match-services/api/internal/search/domain"
)

// memoryStore is an in-process PropertyRepository used to exercise the cascade end to end.
type memoryStore struct {
	mu         sync.Mutex
	properties []domain.Property
	queries    []application.PropertyFilter
	fail       func(application.PropertyFilter) error
	block      bool
}

func newMemoryStore(properties ...domain.Property) *memoryStore {
	return &memoryStore{properties: properties}
}

func (s *memoryStore) Query(ctx context.Context, filter application.PropertyFilter) ([]domain.Property, error) {
	s.mu.Lock()
	s.queries = append(s.queries, filter)
	block := s.block
	var err error
	if s.fail != nil {
		err = s.fail(filter)
	}
	matches := make([]domain.Property, 0)
	for _, p := range s.properties {
		if filter.Matches(p) {
			matches = append(matches, clone(p))
		}
	}
	s.mu.Unlock()

	if block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, err
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})
	return matches, nil
}

func (s *memoryStore) IncrementSearchCounters(_ context.Context, ids []string, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		for i := range s.properties {
			if s.properties[i].ID != id {
				continue
			}
			s.properties[i].SearchCount++
			if userID != "" && !containsString(s.properties[i].SearchedBy, userID) {
				s.properties[i].SearchedBy = append(s.properties[i].SearchedBy, userID)
			}
		}
	}
	return nil
}

func (s *memoryStore) MostSearched(_ context.Context, limit int) ([]domain.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Property, 0, len(s.properties))
	for _, p := range s.properties {
		out = append(out, clone(p))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SearchCount != out[j].SearchCount {
			return out[i].SearchCount > out[j].SearchCount
		}
		return len(out[i].SearchedBy) > len(out[j].SearchedBy)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memoryStore) get(id string) domain.Property {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.properties {
		if p.ID == id {
			return clone(p)
		}
	}
	return domain.Property{}
}

func (s *memoryStore) queryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queries)
}

func clone(p domain.Property) domain.Property {
	p.Amenities = append([]string{}, p.Amenities...)
	p.SearchedBy = append([]string{}, p.SearchedBy...)
	return p
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}

var baseTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// listing builds an active listing created `age` hours before baseTime.
func listing(id, location string, price float64, bedrooms, size int, age int, amenities ...string) domain.Property {
	return domain.Property{
		ID:        id,
		Title:     "Listing " + id,
		Location:  location,
		Price:     price,
		Bedrooms:  bedrooms,
		SizeSqft:  size,
		Amenities: amenities,
		IsActive:  true,
		CreatedAt: baseTime.Add(-time.Duration(age) * time.Hour),
	}
}

func ids(properties []domain.Property) []string {
	return domain.PropertyIDs(properties)
}
