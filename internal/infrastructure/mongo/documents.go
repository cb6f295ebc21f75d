package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PropertyDocument は MongoDB 上での物件スキーマを Go 構造体として表現したもの。
// searchCount / searchedBy は検索テレメトリからのみ更新される。
type PropertyDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ListingID   int                `bson:"id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Price       float64            `bson:"price"`
	Location    string             `bson:"location"`
	Bedrooms    int                `bson:"bedrooms"`
	Bathrooms   int                `bson:"bathrooms"`
	SizeSqft    int                `bson:"size_sqft"`
	Amenities   []string           `bson:"amenities,omitempty"`
	ImageURL    string             `bson:"image_url,omitempty"`
	IsActive    bool               `bson:"isActive"`
	SearchedBy  []string           `bson:"searchedBy,omitempty"`
	SearchCount int                `bson:"searchCount"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

// PreferenceSnapshotDocument は検索条件の埋め込みドキュメント。検索イベントとユーザー設定で共用する。
type PreferenceSnapshotDocument struct {
	Location  string   `bson:"location,omitempty"`
	Budget    *float64 `bson:"budget,omitempty"`
	Bedrooms  *int     `bson:"bedrooms,omitempty"`
	SizeSqft  *int     `bson:"size_sqft,omitempty"`
	Amenities []string `bson:"amenities,omitempty"`
}

// SearchEventDocument は 1 回の検索試行を記録するドキュメント。作成後は更新しない。
type SearchEventDocument struct {
	ID          primitive.ObjectID         `bson:"_id"`
	SearchID    string                     `bson:"searchId"`
	UserID      string                     `bson:"userId,omitempty"`
	Preferences PreferenceSnapshotDocument `bson:"preferences"`
	SearchedAt  time.Time                  `bson:"searchedAt"`
}

// UserPreferenceDocument は users コレクション上の検索条件プロファイル。
type UserPreferenceDocument struct {
	ID          primitive.ObjectID         `bson:"_id,omitempty"`
	UserID      string                     `bson:"userId"`
	Preferences PreferenceSnapshotDocument `bson:"preferences"`
	CreatedAt   time.Time                  `bson:"createdAt,omitempty"`
	UpdatedAt   time.Time                  `bson:"updatedAt,omitempty"`
}
