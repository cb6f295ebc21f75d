package mongo

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	adminapp "github.com/sngm3741/property-match-services/api/internal/admin/application"
	"github.com/sngm3741/property-match-services/api/internal/search/domain"
)

// AdminPropertyRepository は管理画面から物件を参照・公開切り替えするためのリポジトリ。
type AdminPropertyRepository struct {
	collection *mongo.Collection
}

// NewAdminPropertyRepository は物件コレクションを束縛したリポジトリを生成する。
func NewAdminPropertyRepository(db *mongo.Database, collectionName string) *AdminPropertyRepository {
	return &AdminPropertyRepository{collection: db.Collection(collectionName)}
}

// Find はキーワードを title / location / description の部分一致に変換する。
// IncludeInactive が false の場合は公開中の物件のみを返す。
func (r *AdminPropertyRepository) Find(ctx context.Context, filter adminapp.PropertyFilter) ([]domain.Property, error) {
	opts := options.Find().SetSort(newestFirst())
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}

	cursor, err := r.collection.Find(ctx, buildAdminPropertyFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	return decodeProperties(ctx, cursor)
}

// FindByID は ObjectID の16進表現で 1 件取得する。該当なしは mongo.ErrNoDocuments を返す。
func (r *AdminPropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}

	var doc PropertyDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		return nil, err
	}
	property := mapPropertyDocument(doc)
	return &property, nil
}

// SetActive updates isActive only and returns the updated listing.
func (r *AdminPropertyRepository) SetActive(ctx context.Context, id string, active bool) (*domain.Property, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc PropertyDocument
	err = r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"isActive": active}},
		opts,
	).Decode(&doc)
	if err != nil {
		return nil, err
	}
	property := mapPropertyDocument(doc)
	return &property, nil
}

func buildAdminPropertyFilter(filter adminapp.PropertyFilter) bson.M {
	mongoFilter := bson.M{}
	if !filter.IncludeInactive {
		mongoFilter["isActive"] = true
	}
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		pattern := containsPattern(keyword)
		mongoFilter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"location": pattern},
			bson.M{"description": pattern},
		}
	}
	return mongoFilter
}
