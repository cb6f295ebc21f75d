package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/sngm3741/property-match-services/api/internal/mocks"
	"github.com/sngm3741/property-match-services/api/internal/search/application"
	"github.com/sngm3741/property-match-services/api/internal/search/domain"
)

func TestPreferenceGetReturnsEmptyProfile(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPreferenceRepository(ctrl)
	repo.EXPECT().Get(gomock.Any(), "user-1").Return(nil, application.ErrPreferenceNotFound)

	got, err := application.NewPreferenceService(repo).Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.UserID != "user-1" || got.Complete() || got.Amenities == nil {
		t.Fatalf("got %+v", got)
	}
}

func TestPreferenceGetFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPreferenceRepository(ctrl)
	repo.EXPECT().Get(gomock.Any(), "user-1").Return(nil, errors.New("timeout"))

	if _, err := application.NewPreferenceService(repo).Get(context.Background(), "user-1"); !domain.IsRepositoryError(err) {
		t.Fatalf("err = %v, want RepositoryError", err)
	}
}

func TestPreferenceReplace(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPreferenceRepository(ctrl)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, saved *domain.UserPreference) error {
			if saved.UserID != "user-1" || !saved.Complete() || *saved.Bedrooms != 2 {
				t.Errorf("saved = %+v", saved)
			}
			return nil
		})

	got, err := application.NewPreferenceService(repo).Replace(context.Background(), "user-1", domain.RawPreference{
		Location:  "Austin",
		Budget:    "250000",
		Bedrooms:  1.2,
		Size:      900,
		Amenities: []any{"Pool"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Location != "Austin" || len(got.Amenities) != 1 {
		t.Fatalf("got %+v", got)
	}
}

func TestPreferenceReplaceRejectsIncompleteInput(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockPreferenceRepository(ctrl)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	_, err := application.NewPreferenceService(repo).Replace(context.Background(), "user-1", domain.RawPreference{Location: "Austin"})
	if !domain.IsValidationError(err) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}
