package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sngm3741/property-match-services/api/internal/search/domain"
)

// SearchServiceConfig provides dependencies for the search use-case.
type SearchServiceConfig struct {
	Matcher     *Matcher
	Events      SearchEventRepository
	Preferences PreferenceRepository
	Recorder    SearchRecorder
	Clock       func() time.Time
}

type searchService struct {
	matcher     *Matcher
	events      SearchEventRepository
	preferences PreferenceRepository
	recorder    SearchRecorder
	now         func() time.Time
}

// NewSearchService creates the property match use-case.
func NewSearchService(cfg SearchServiceConfig) SearchService {
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	return &searchService{
		matcher:     cfg.Matcher,
		events:      cfg.Events,
		preferences: cfg.Preferences,
		recorder:    cfg.Recorder,
		now:         now,
	}
}

// FindMatches は条件の解決、検索イベントの記録、カスケード検索、テレメトリ送信の順に処理する。
// イベント記録に失敗した場合は検索を行わずに RepositoryError を返す。
func (s *searchService) FindMatches(ctx context.Context, raw domain.RawPreference, caller *Caller) (SearchOutcome, error) {
	userID := ""
	if caller != nil {
		userID = strings.TrimSpace(caller.UserID)
	}

	pref, err := s.resolve(ctx, raw, userID)
	if err != nil {
		return SearchOutcome{}, err
	}

	event := &domain.SearchEvent{
		SearchID:   uuid.NewString(),
		UserID:     userID,
		Preference: pref,
		SearchedAt: s.now().UTC(),
	}
	if err := s.events.Create(ctx, event); err != nil {
		return SearchOutcome{}, domain.WrapRepositoryError("search event log", err)
	}

	result, err := s.matcher.Match(ctx, pref)
	if err != nil {
		return SearchOutcome{}, err
	}

	if result.Found() && s.recorder != nil {
		s.recorder.Record(result.Properties, userID)
	}

	return SearchOutcome{
		SearchID:   event.SearchID,
		Preference: pref,
		Result:     result,
	}, nil
}

func (s *searchService) resolve(ctx context.Context, raw domain.RawPreference, userID string) (domain.SearchPreference, error) {
	if userID == "" {
		return domain.NewSearchPreference(raw)
	}

	stored, err := s.preferences.Get(ctx, userID)
	if errors.Is(err, ErrPreferenceNotFound) || (err == nil && stored == nil) {
		stored = &domain.UserPreference{UserID: userID}
	} else if err != nil {
		return domain.SearchPreference{}, domain.WrapRepositoryError("load preferences", err)
	}

	merged, changed, err := stored.Apply(raw)
	if err != nil {
		return domain.SearchPreference{}, err
	}
	if changed {
		merged.UserID = userID
		merged.UpdatedAt = s.now().UTC()
		if err := s.preferences.Save(ctx, &merged); err != nil {
			return domain.SearchPreference{}, domain.WrapRepositoryError("save preferences", err)
		}
	}

	return merged.SearchPreference()
}
