package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collections names the collections the API works with.
type Collections struct {
	Properties   string
	SearchEvents string
	Users        string
}

type collectionIndexes struct {
	collection string
	models     []mongo.IndexModel
}

// EnsureIndexes creates the indexes the cascade queries and the profile lookups rely on.
// CreateMany は既存の同一定義インデックスに対しては何もしない。
func EnsureIndexes(ctx context.Context, db *mongo.Database, names Collections) error {
	for _, plan := range indexPlan(names) {
		if _, err := db.Collection(plan.collection).Indexes().CreateMany(ctx, plan.models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", plan.collection, err)
		}
	}
	return nil
}

// indexPlan groups index models by collection. 同名のコレクションが複数指定された場合はモデルを連結する。
func indexPlan(names Collections) []collectionIndexes {
	var plans []collectionIndexes
	add := func(collection string, models ...mongo.IndexModel) {
		if collection == "" {
			return
		}
		for i := range plans {
			if plans[i].collection == collection {
				plans[i].models = append(plans[i].models, models...)
				return
			}
		}
		plans = append(plans, collectionIndexes{collection: collection, models: models})
	}

	add(names.Properties,
		mongo.IndexModel{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "createdAt", Value: -1}}},
		mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		mongo.IndexModel{Keys: bson.D{{Key: "searchCount", Value: -1}}},
	)
	add(names.SearchEvents,
		mongo.IndexModel{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "searchedAt", Value: -1}}},
		mongo.IndexModel{Keys: bson.D{{Key: "searchId", Value: 1}}},
	)
	// users は既存のアカウント文書と共有されうるため、userId を持つ文書だけを一意にする。
	add(names.Users,
		mongo.IndexModel{
			Keys: bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"userId": bson.M{"$type": "string"}}),
		},
	)
	return plans
}
