package mongo

import (
	"context"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sngm3741/property-match-services/api/internal/search/application"
	"github.com/sngm3741/property-match-services/api/internal/search/domain"
)

// PropertyRepository implements application.PropertyRepository using MongoDB.
type PropertyRepository struct {
	collection *mongo.Collection
}

// NewPropertyRepository creates a new Mongo-backed property repository.
func NewPropertyRepository(db *mongo.Database, collectionName string) *PropertyRepository {
	return &PropertyRepository{collection: db.Collection(collectionName)}
}

// Query は PropertyFilter を Mongo クエリへ落とし込み、作成日時の新しい順に返す。
func (r *PropertyRepository) Query(ctx context.Context, filter application.PropertyFilter) ([]domain.Property, error) {
	opts := options.Find().SetSort(newestFirst())
	cursor, err := r.collection.Find(ctx, buildPropertyFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	return decodeProperties(ctx, cursor)
}

// IncrementSearchCounters は対象物件ごとに $inc / $addToSet の updateOne をまとめた BulkWrite を 1 回発行する。
// 加算はサーバー側で原子的に行われるため、並行検索でも更新は失われない。
func (r *PropertyRepository) IncrementSearchCounters(ctx context.Context, ids []string, userID string) error {
	models := buildCounterUpdates(ids, userID)
	if len(models) == 0 {
		return nil
	}
	_, err := r.collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	return err
}

// MostSearched は searchCount、次いで searchedBy の人数で並べた上位の物件を返す。
func (r *PropertyRepository) MostSearched(ctx context.Context, limit int) ([]domain.Property, error) {
	if limit <= 0 {
		limit = 5
	}
	pipeline := mongo.Pipeline{
		{{Key: "$addFields", Value: bson.M{
			"searchedByCount": bson.M{"$size": bson.M{"$ifNull": bson.A{"$searchedBy", bson.A{}}}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "searchCount", Value: -1},
			{Key: "searchedByCount", Value: -1},
			{Key: "createdAt", Value: -1},
		}}},
		{{Key: "$limit", Value: int64(limit)}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	return decodeProperties(ctx, cursor)
}

func buildPropertyFilter(filter application.PropertyFilter) bson.M {
	mongoFilter := bson.M{}
	if filter.ActiveOnly {
		mongoFilter["isActive"] = true
	}
	if location := strings.TrimSpace(filter.LocationContains); location != "" {
		mongoFilter["location"] = containsPattern(location)
	}
	if filter.MaxPrice != nil {
		mongoFilter["price"] = bson.M{"$lte": *filter.MaxPrice}
	}
	if filter.MinBedrooms != nil {
		mongoFilter["bedrooms"] = bson.M{"$gte": *filter.MinBedrooms}
	}
	if filter.MinSize != nil {
		mongoFilter["size_sqft"] = bson.M{"$gte": *filter.MinSize}
	}
	if len(filter.Amenities) > 0 {
		mongoFilter["amenities"] = bson.M{"$all": append([]string{}, filter.Amenities...)}
	}
	return mongoFilter
}

func buildCounterUpdates(ids []string, userID string) []mongo.WriteModel {
	update := bson.M{"$inc": bson.M{"searchCount": 1}}
	if userID = strings.TrimSpace(userID); userID != "" {
		update["$addToSet"] = bson.M{"searchedBy": userID}
	}

	models := make([]mongo.WriteModel, 0, len(ids))
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
		if err != nil {
			continue
		}
		if _, ok := seen[objectID]; ok {
			continue
		}
		seen[objectID] = struct{}{}
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": objectID}).
			SetUpdate(update))
	}
	return models
}

// containsPattern は大文字小文字を区別しない部分一致の正規表現を作る。入力はエスケープする。
func containsPattern(value string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(value), Options: "i"}
}

func newestFirst() bson.D {
	return bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}
}

func decodeProperties(ctx context.Context, cursor *mongo.Cursor) ([]domain.Property, error) {
	defer cursor.Close(ctx)

	properties := make([]domain.Property, 0)
	for cursor.Next(ctx) {
		var doc PropertyDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		properties = append(properties, mapPropertyDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return properties, nil
}

func mapPropertyDocument(doc PropertyDocument) domain.Property {
	return domain.Property{
		ID:          doc.ID.Hex(),
		ListingID:   doc.ListingID,
		Title:       doc.Title,
		Description: doc.Description,
		Price:       doc.Price,
		Location:    doc.Location,
		Bedrooms:    doc.Bedrooms,
		Bathrooms:   doc.Bathrooms,
		SizeSqft:    doc.SizeSqft,
		Amenities:   append([]string{}, doc.Amenities...),
		ImageURL:    doc.ImageURL,
		IsActive:    doc.IsActive,
		SearchCount: doc.SearchCount,
		SearchedBy:  append([]string{}, doc.SearchedBy...),
		CreatedAt:   doc.CreatedAt,
	}
}
