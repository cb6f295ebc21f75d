package mongo

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	adminapp "github.com/sngm3741/property-match-services/api/internal/admin/application"
	"github.com/sngm3741/property-match-services/api/internal/search/domain"
)

// SearchEventRepository は検索イベントの追記と管理画面向けの参照を担う。
type SearchEventRepository struct {
	collection *mongo.Collection
}

func NewSearchEventRepository(db *mongo.Database, collectionName string) *SearchEventRepository {
	return &SearchEventRepository{collection: db.Collection(collectionName)}
}

// Create は検索イベントを 1 件追記し、採番した ID を event に書き戻す。
func (r *SearchEventRepository) Create(ctx context.Context, event *domain.SearchEvent) error {
	if event == nil {
		return errors.New("search event is nil")
	}
	doc := SearchEventDocument{
		ID:          primitive.NewObjectID(),
		SearchID:    event.SearchID,
		UserID:      strings.TrimSpace(event.UserID),
		Preferences: snapshotFromSearchPreference(event.Preference),
		SearchedAt:  event.SearchedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	event.ID = doc.ID.Hex()
	return nil
}

// List returns recent events, newest first.
func (r *SearchEventRepository) List(ctx context.Context, filter adminapp.SearchEventFilter) ([]domain.SearchEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "searchedAt", Value: -1}, {Key: "_id", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.collection.Find(ctx, buildSearchEventFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := make([]domain.SearchEvent, 0)
	for cursor.Next(ctx) {
		var doc SearchEventDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		events = append(events, mapSearchEventDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func buildSearchEventFilter(filter adminapp.SearchEventFilter) bson.M {
	mongoFilter := bson.M{}
	if userID := strings.TrimSpace(filter.UserID); userID != "" {
		mongoFilter["userId"] = userID
	} else if filter.AnonymousOnly {
		mongoFilter["userId"] = bson.M{"$exists": false}
	}
	return mongoFilter
}

func mapSearchEventDocument(doc SearchEventDocument) domain.SearchEvent {
	return domain.SearchEvent{
		ID:         doc.ID.Hex(),
		SearchID:   doc.SearchID,
		UserID:     doc.UserID,
		Preference: searchPreferenceFromSnapshot(doc.Preferences),
		SearchedAt: doc.SearchedAt,
	}
}

// snapshotFromSearchPreference は正規化済みの条件をそのまま埋め込みドキュメントにする。
func snapshotFromSearchPreference(pref domain.SearchPreference) PreferenceSnapshotDocument {
	budget := pref.Budget()
	bedrooms := pref.Bedrooms()
	size := pref.Size()
	return PreferenceSnapshotDocument{
		Location:  pref.Location(),
		Budget:    &budget,
		Bedrooms:  &bedrooms,
		SizeSqft:  &size,
		Amenities: pref.Amenities(),
	}
}

func searchPreferenceFromSnapshot(doc PreferenceSnapshotDocument) domain.SearchPreference {
	var (
		budget   float64
		bedrooms int
		size     int
	)
	if doc.Budget != nil {
		budget = *doc.Budget
	}
	if doc.Bedrooms != nil {
		bedrooms = *doc.Bedrooms
	}
	if doc.SizeSqft != nil {
		size = *doc.SizeSqft
	}
	return domain.RestoreSearchPreference(doc.Location, budget, bedrooms, size, doc.Amenities)
}
