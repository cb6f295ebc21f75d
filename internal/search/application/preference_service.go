package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sngm3741/property-match-services/api/internal/search/domain"
)

type preferenceService struct {
	repo PreferenceRepository
	now  func() time.Time
}

// NewPreferenceService creates the stored-preference use-case.
func NewPreferenceService(repo PreferenceRepository) PreferenceService {
	return &preferenceService{repo: repo, now: time.Now}
}

// Get returns the stored profile, or an empty one when none exists yet.
func (s *preferenceService) Get(ctx context.Context, userID string) (*domain.UserPreference, error) {
	userID = strings.TrimSpace(userID)
	pref, err := s.repo.Get(ctx, userID)
	if errors.Is(err, ErrPreferenceNotFound) || (err == nil && pref == nil) {
		return &domain.UserPreference{UserID: userID, Amenities: []string{}}, nil
	}
	if err != nil {
		return nil, domain.WrapRepositoryError("load preferences", err)
	}
	return pref, nil
}

// Replace は全必須項目を検証した上でプロファイルを丸ごと置き換える。
func (s *preferenceService) Replace(ctx context.Context, userID string, raw domain.RawPreference) (*domain.UserPreference, error) {
	pref, err := domain.NewSearchPreference(raw)
	if err != nil {
		return nil, err
	}

	budget := pref.Budget()
	bedrooms := pref.Bedrooms()
	size := pref.Size()
	stored := &domain.UserPreference{
		UserID:    strings.TrimSpace(userID),
		Location:  pref.Location(),
		Budget:    &budget,
		Bedrooms:  &bedrooms,
		Size:      &size,
		Amenities: pref.Amenities(),
		UpdatedAt: s.now().UTC(),
	}
	if err := s.repo.Save(ctx, stored); err != nil {
		return nil, domain.WrapRepositoryError("save preferences", err)
	}
	return stored, nil
}
