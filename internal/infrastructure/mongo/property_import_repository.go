package mongo

import (
	"context"
	"errors"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sngm3741/property-match-services/api/internal/importer"
	"github.com/sngm3741/property-match-services/api/internal/search/domain"
)

// PropertyImportRepository は取り込みツールから物件を業務 ID (id) 単位で upsert する。
// searchCount / searchedBy / isActive は既存値を保持する。
type PropertyImportRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewPropertyImportRepository(db *mongo.Database, collectionName string) *PropertyImportRepository {
	return &PropertyImportRepository{collection: db.Collection(collectionName), now: time.Now}
}

// UpsertListing inserts unknown listings and rewrites known ones only when a compared field changed.
func (r *PropertyImportRepository) UpsertListing(ctx context.Context, listing domain.Property) (importer.Action, error) {
	var existing PropertyDocument
	err := r.collection.FindOne(ctx, bson.M{"id": listing.ListingID}).Decode(&existing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		doc := newImportedDocument(listing, r.now().UTC())
		if _, err := r.collection.InsertOne(ctx, doc); err != nil {
			return importer.Unchanged, err
		}
		return importer.Inserted, nil
	}
	if err != nil {
		return importer.Unchanged, err
	}

	if !listingChanged(existing, listing) {
		return importer.Unchanged, nil
	}
	update := bson.M{"$set": bson.M{
		"title":       listing.Title,
		"description": listing.Description,
		"price":       listing.Price,
		"location":    listing.Location,
		"bedrooms":    listing.Bedrooms,
		"bathrooms":   listing.Bathrooms,
		"size_sqft":   listing.SizeSqft,
		"amenities":   listing.Amenities,
		"image_url":   listing.ImageURL,
	}}
	if _, err := r.collection.UpdateByID(ctx, existing.ID, update); err != nil {
		return importer.Unchanged, err
	}
	return importer.Updated, nil
}

func newImportedDocument(listing domain.Property, now time.Time) PropertyDocument {
	return PropertyDocument{
		ID:          primitive.NewObjectID(),
		ListingID:   listing.ListingID,
		Title:       listing.Title,
		Description: listing.Description,
		Price:       listing.Price,
		Location:    listing.Location,
		Bedrooms:    listing.Bedrooms,
		Bathrooms:   listing.Bathrooms,
		SizeSqft:    listing.SizeSqft,
		Amenities:   append([]string{}, listing.Amenities...),
		ImageURL:    listing.ImageURL,
		IsActive:    true,
		SearchedBy:  []string{},
		CreatedAt:   now,
	}
}

func listingChanged(existing PropertyDocument, listing domain.Property) bool {
	return existing.Title != listing.Title ||
		existing.Price != listing.Price ||
		existing.Location != listing.Location ||
		existing.Bedrooms != listing.Bedrooms ||
		existing.Bathrooms != listing.Bathrooms ||
		existing.SizeSqft != listing.SizeSqft ||
		existing.ImageURL != listing.ImageURL ||
		!slices.Equal(existing.Amenities, listing.Amenities)
}
