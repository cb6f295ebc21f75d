package application_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/sngm3741/property-match-services/api/internal/mocks"
	"github.com/sngm3741/property-match-services/api/internal/search/application"
	"github.com/sngm3741/property-match-services/api/internal/search/domain"
)

type searchFixture struct {
	store    *memoryStore
	events   *mocks.MockSearchEventRepository
	prefs    *mocks.MockPreferenceRepository
	recorder *mocks.MockSearchRecorder
	service  application.SearchService
}

func newSearchFixture(t *testing.T, properties ...domain.Property) searchFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := searchFixture{
		store:    newMemoryStore(properties...),
		events:   mocks.NewMockSearchEventRepository(ctrl),
		prefs:    mocks.NewMockPreferenceRepository(ctrl),
		recorder: mocks.NewMockSearchRecorder(ctrl),
	}
	f.service = application.NewSearchService(application.SearchServiceConfig{
		Matcher:     application.NewMatcher(f.store, time.Second),
		Events:      f.events,
		Preferences: f.prefs,
		Recorder:    f.recorder,
		Clock:       func() time.Time { return baseTime },
	})
	return f
}

func completeRaw() domain.RawPreference {
	return domain.RawPreference{Location: "Austin", Budget: 300000, Bedrooms: 3, Size: 1200}
}

func TestFindMatchesAnonymous(t *testing.T) {
	t.Parallel()
	f := newSearchFixture(t, listing("a", "Austin, TX", 250000, 3, 1500, 1))

	var logged *domain.SearchEvent
	gomock.InOrder(
		f.events.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, event *domain.SearchEvent) error {
				logged = event
				return nil
			}),
		f.recorder.EXPECT().Record(gomock.Any(), "").Do(
			func(properties []domain.Property, _ string) {
				if got := ids(properties); !reflect.DeepEqual(got, []string{"a"}) {
					t.Errorf("recorded ids = %v", got)
				}
			}),
	)

	outcome, err := f.service.FindMatches(context.Background(), completeRaw(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Result.Tier != domain.TierExact {
		t.Fatalf("tier = %s", outcome.Result.Tier)
	}
	if logged == nil || !logged.Anonymous() || logged.SearchID != outcome.SearchID || outcome.SearchID == "" {
		t.Fatalf("logged event = %+v, outcome id = %q", logged, outcome.SearchID)
	}
	if !logged.SearchedAt.Equal(baseTime) {
		t.Fatalf("searchedAt = %v", logged.SearchedAt)
	}
	if logged.Preference.Budget() != 300000 {
		t.Fatalf("logged preference = %+v", logged.Preference)
	}
}

func TestFindMatchesValidationErrorSkipsEventLog(t *testing.T) {
	t.Parallel()
	f := newSearchFixture(t)

	raw := completeRaw()
	raw.Budget = "cheap"
	_, err := f.service.FindMatches(context.Background(), raw, nil)
	if !domain.IsValidationError(err) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if f.store.queryCount() != 0 {
		t.Fatal("no query may run for invalid input")
	}
}

func TestFindMatchesEventLogFailureAbortsSearch(t *testing.T) {
	t.Parallel()
	f := newSearchFixture(t, listing("a", "Austin, TX", 250000, 3, 1500, 1))

	cause := errors.New("insert failed")
	f.events.EXPECT().Create(gomock.Any(), gomock.Any()).Return(cause)

	_, err := f.service.FindMatches(context.Background(), completeRaw(), nil)
	if !domain.IsRepositoryError(err) || !errors.Is(err, cause) {
		t.Fatalf("err = %v, want RepositoryError", err)
	}
	if f.store.queryCount() != 0 {
		t.Fatal("matching must not run when the event log fails")
	}
}

func TestFindMatchesNotFoundSkipsTelemetry(t *testing.T) {
	t.Parallel()
	f := newSearchFixture(t, listing("a", "Boise, ID", 900000, 1, 600, 1))
	f.events.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := f.service.FindMatches(context.Background(), completeRaw(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Result.Found() || outcome.Result.Message() != "No matching properties found." {
		t.Fatalf("outcome = %+v", outcome.Result)
	}
}

func TestFindMatchesForUserMergesAndSaves(t *testing.T) {
	t.Parallel()
	f := newSearchFixture(t, listing("a", "Austin, TX", 250000, 3, 1500, 1))

	budget := 100000.0
	bedrooms := 3
	size := 1200
	stored := &domain.UserPreference{
		UserID:   "user-1",
		Location: "Austin",
		Budget:   &budget,
		Bedrooms: &bedrooms,
		Size:     &size,
	}

	f.prefs.EXPECT().Get(gomock.Any(), "user-1").Return(stored, nil)
	f.prefs.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, saved *domain.UserPreference) error {
			if saved.UserID != "user-1" || *saved.Budget != 300000 || saved.Location != "Austin" {
				t.Errorf("saved = %+v", saved)
			}
			if !saved.UpdatedAt.Equal(baseTime) {
				t.Errorf("updatedAt = %v", saved.UpdatedAt)
			}
			return nil
		})
	f.events.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event *domain.SearchEvent) error {
			if event.UserID != "user-1" {
				t.Errorf("event user = %q", event.UserID)
			}
			return nil
		})
	f.recorder.EXPECT().Record(gomock.Any(), "user-1")

	outcome, err := f.service.FindMatches(context.Background(), domain.RawPreference{Budget: "300000"}, &application.Caller{UserID: " user-1 "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Preference.Budget() != 300000 || outcome.Result.Tier != domain.TierExact {
		t.Fatalf("outcome = %+v", outcome)
	}
}

func TestFindMatchesForUserIncompleteProfile(t *testing.T) {
	t.Parallel()
	f := newSearchFixture(t)

	f.prefs.EXPECT().Get(gomock.Any(), "user-1").Return(nil, application.ErrPreferenceNotFound)
	// the partial profile is still persisted before the search is refused.
	f.prefs.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.service.FindMatches(context.Background(), domain.RawPreference{Location: "Austin"}, &application.Caller{UserID: "user-1"})
	var validationErr *domain.ValidationError
	if !errors.As(err, &validationErr) || validationErr.Message != "Please set your search preferences in settings first." {
		t.Fatalf("err = %v", err)
	}
}

func TestFindMatchesForUserWithoutChangesSkipsSave(t *testing.T) {
	t.Parallel()
	f := newSearchFixture(t, listing("a", "Austin, TX", 250000, 3, 1500, 1))

	budget := 300000.0
	bedrooms := 3
	size := 1200
	f.prefs.EXPECT().Get(gomock.Any(), "user-1").Return(&domain.UserPreference{
		UserID: "user-1", Location: "Austin", Budget: &budget, Bedrooms: &bedrooms, Size: &size,
	}, nil)
	f.events.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.recorder.EXPECT().Record(gomock.Any(), "user-1")

	if _, err := f.service.FindMatches(context.Background(), domain.RawPreference{}, &application.Caller{UserID: "user-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFindMatchesForUserPreferenceLoadFailure(t *testing.T) {
	t.Parallel()
	f := newSearchFixture(t)

	f.prefs.EXPECT().Get(gomock.Any(), "user-1").Return(nil, errors.New("timeout"))

	_, err := f.service.FindMatches(context.Background(), completeRaw(), &application.Caller{UserID: "user-1"})
	if !domain.IsRepositoryError(err) {
		t.Fatalf("err = %v, want RepositoryError", err)
	}
}
