package application

import (
	"context"
	"log"

	"github.com/sngm3741/property-match-services/api/internal/search/domain"
)

const defaultMostSearchedLimit = 5

// propertyQueryService implements PropertyQueryService.
type propertyQueryService struct {
	repo              PropertyRepository
	cache             PropertyCache
	logger            *log.Logger
	mostSearchedLimit int
}

// NewPropertyQueryService creates a new listing read service. cache may be nil.
func NewPropertyQueryService(repo PropertyRepository, cache PropertyCache, logger *log.Logger, mostSearchedLimit int) PropertyQueryService {
	if mostSearchedLimit <= 0 {
		mostSearchedLimit = defaultMostSearchedLimit
	}
	return &propertyQueryService{
		repo:              repo,
		cache:             cache,
		logger:            logger,
		mostSearchedLimit: mostSearchedLimit,
	}
}

func (s *propertyQueryService) List(ctx context.Context) ([]domain.Property, error) {
	properties, err := s.repo.Query(ctx, PropertyFilter{ActiveOnly: true})
	if err != nil {
		return nil, domain.WrapRepositoryError("list properties", err)
	}
	return properties, nil
}

// MostSearched はキャッシュを優先し、未ヒットまたはキャッシュ障害時は Mongo の集計にフォールバックする。
func (s *propertyQueryService) MostSearched(ctx context.Context) ([]domain.Property, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.GetMostSearched(ctx, s.mostSearchedLimit)
		if err != nil {
			s.logf("most searched cache read failed: %v", err)
		} else if ok {
			return cached, nil
		}
	}

	properties, err := s.repo.MostSearched(ctx, s.mostSearchedLimit)
	if err != nil {
		return nil, domain.WrapRepositoryError("most searched properties", err)
	}

	if s.cache != nil {
		if err := s.cache.SetMostSearched(ctx, s.mostSearchedLimit, properties); err != nil {
			s.logf("most searched cache write failed: %v", err)
		}
	}
	return properties, nil
}

func (s *propertyQueryService) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
