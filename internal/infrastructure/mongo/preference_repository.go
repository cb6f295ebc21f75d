package mongo

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sngm3741/property-match-services/api/internal/search/application"
	"github.com/sngm3741/property-match-services/api/internal/search/domain"
)

// PreferenceRepository は users コレクションに保存された検索条件プロファイルを扱う。
type PreferenceRepository struct {
	collection *mongo.Collection
}

func NewPreferenceRepository(db *mongo.Database, collectionName string) *PreferenceRepository {
	return &PreferenceRepository{collection: db.Collection(collectionName)}
}

// Get returns application.ErrPreferenceNotFound when the user has no profile yet.
func (r *PreferenceRepository) Get(ctx context.Context, userID string) (*domain.UserPreference, error) {
	var doc UserPreferenceDocument
	err := r.collection.FindOne(ctx, bson.M{"userId": strings.TrimSpace(userID)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, application.ErrPreferenceNotFound
	}
	if err != nil {
		return nil, err
	}
	pref := mapUserPreferenceDocument(doc)
	return &pref, nil
}

// Save はプロファイルを upsert する。createdAt は初回作成時のみ設定される。
func (r *PreferenceRepository) Save(ctx context.Context, pref *domain.UserPreference) error {
	if pref == nil {
		return errors.New("preference is nil")
	}
	userID := strings.TrimSpace(pref.UserID)
	if userID == "" {
		return errors.New("preference user id is empty")
	}

	updatedAt := pref.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	update := bson.M{
		"$set": bson.M{
			"preferences": snapshotFromUserPreference(*pref),
			"updatedAt":   updatedAt,
		},
		"$setOnInsert": bson.M{
			"userId":    userID,
			"createdAt": updatedAt,
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"userId": userID}, update, options.Update().SetUpsert(true))
	return err
}

func snapshotFromUserPreference(pref domain.UserPreference) PreferenceSnapshotDocument {
	return PreferenceSnapshotDocument{
		Location:  strings.TrimSpace(pref.Location),
		Budget:    pref.Budget,
		Bedrooms:  pref.Bedrooms,
		SizeSqft:  pref.Size,
		Amenities: append([]string{}, pref.Amenities...),
	}
}

func mapUserPreferenceDocument(doc UserPreferenceDocument) domain.UserPreference {
	amenities, _ := domain.NormalizeAmenities(doc.Preferences.Amenities)
	return domain.UserPreference{
		UserID:    doc.UserID,
		Location:  doc.Preferences.Location,
		Budget:    doc.Preferences.Budget,
		Bedrooms:  doc.Preferences.Bedrooms,
		Size:      doc.Preferences.SizeSqft,
		Amenities: amenities,
		UpdatedAt: doc.UpdatedAt,
	}
}
