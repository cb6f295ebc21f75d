package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	adminapp "github.com/sngm3741/property-match-services/api/internal/admin/application"
	"github.com/sngm3741/property-match-services/api/internal/search/application"
	"github.com/sngm3741/property-match-services/api/internal/search/domain"
)

func TestBuildPropertyFilterExactTier(t *testing.T) {
	t.Parallel()

	budget := 300000.0
	bedrooms := 3
	size := 1200
	filter := buildPropertyFilter(application.PropertyFilter{
		ActiveOnly:       true,
		LocationContains: "New York (NY)",
		MaxPrice:         &budget,
		MinBedrooms:      &bedrooms,
		MinSize:          &size,
		Amenities:        []string{"Pool", "Gym"},
	})

	if filter["isActive"] != true {
		t.Fatalf("isActive = %v", filter["isActive"])
	}
	location, ok := filter["location"].(primitive.Regex)
	if !ok {
		t.Fatalf("location is %T", filter["location"])
	}
	if location.Pattern != `New York \(NY\)` || location.Options != "i" {
		t.Fatalf("location regex = %+v", location)
	}
	if got := filter["price"].(bson.M)["$lte"]; got != budget {
		t.Fatalf("price = %v", got)
	}
	if got := filter["bedrooms"].(bson.M)["$gte"]; got != bedrooms {
		t.Fatalf("bedrooms = %v", got)
	}
	if got := filter["size_sqft"].(bson.M)["$gte"]; got != size {
		t.Fatalf("size_sqft = %v", got)
	}
	all := filter["amenities"].(bson.M)["$all"].([]string)
	if len(all) != 2 || all[0] != "Pool" || all[1] != "Gym" {
		t.Fatalf("amenities = %v", all)
	}
}

func TestBuildPropertyFilterOmitsUnsetBounds(t *testing.T) {
	t.Parallel()

	filter := buildPropertyFilter(application.PropertyFilter{ActiveOnly: true, LocationContains: "  "})
	if len(filter) != 1 {
		t.Fatalf("filter = %v, want only isActive", filter)
	}

	zero := 0
	filter = buildPropertyFilter(application.PropertyFilter{MinBedrooms: &zero})
	if _, ok := filter["bedrooms"]; !ok {
		t.Fatal("a zero lower bound is still a bound")
	}
	if _, ok := filter["isActive"]; ok {
		t.Fatal("isActive must not be set when ActiveOnly is false")
	}
	if _, ok := filter["$or"]; ok {
		t.Fatal("search filters never carry a keyword clause")
	}
}

func TestBuildCounterUpdates(t *testing.T) {
	t.Parallel()

	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	models := buildCounterUpdates([]string{a.Hex(), "not-an-id", b.Hex(), a.Hex()}, " user-1 ")
	if len(models) != 2 {
		t.Fatalf("len = %d, want 2", len(models))
	}

	first, ok := models[0].(*mongo.UpdateOneModel)
	if !ok {
		t.Fatalf("model is %T", models[0])
	}
	if first.Filter.(bson.M)["_id"] != a {
		t.Fatalf("filter = %v", first.Filter)
	}
	update := first.Update.(bson.M)
	if update["$inc"].(bson.M)["searchCount"] != 1 {
		t.Fatalf("$inc = %v", update["$inc"])
	}
	if update["$addToSet"].(bson.M)["searchedBy"] != "user-1" {
		t.Fatalf("$addToSet = %v", update["$addToSet"])
	}
}

func TestBuildCounterUpdatesAnonymous(t *testing.T) {
	t.Parallel()

	models := buildCounterUpdates([]string{primitive.NewObjectID().Hex()}, "")
	update := models[0].(*mongo.UpdateOneModel).Update.(bson.M)
	if _, ok := update["$addToSet"]; ok {
		t.Fatal("anonymous searches must not touch searchedBy")
	}
	if len(buildCounterUpdates(nil, "user-1")) != 0 {
		t.Fatal("empty batch must produce no writes")
	}
}

func TestBuildAdminPropertyFilter(t *testing.T) {
	t.Parallel()

	filter := buildAdminPropertyFilter(adminapp.PropertyFilter{Keyword: "loft", IncludeInactive: true})
	if _, ok := filter["isActive"]; ok {
		t.Fatal("inactive listings requested")
	}
	if or, ok := filter["$or"].(bson.A); !ok || len(or) != 3 {
		t.Fatalf("$or = %v", filter["$or"])
	}

	filter = buildAdminPropertyFilter(adminapp.PropertyFilter{})
	if filter["isActive"] != true {
		t.Fatalf("filter = %v", filter)
	}
}

func TestBuildSearchEventFilter(t *testing.T) {
	t.Parallel()

	if got := buildSearchEventFilter(adminapp.SearchEventFilter{UserID: "u1", AnonymousOnly: true}); got["userId"] != "u1" {
		t.Fatalf("user filter = %v", got)
	}
	anonymous := buildSearchEventFilter(adminapp.SearchEventFilter{AnonymousOnly: true})
	if anonymous["userId"].(bson.M)["$exists"] != false {
		t.Fatalf("anonymous filter = %v", anonymous)
	}
	if len(buildSearchEventFilter(adminapp.SearchEventFilter{})) != 0 {
		t.Fatal("no criteria should match everything")
	}
}

func TestSnapshotRoundTripKeepsPreference(t *testing.T) {
	t.Parallel()

	pref := domain.RestoreSearchPreference("Austin", 250000, 2, 800, []string{"Pool"})
	restored := searchPreferenceFromSnapshot(snapshotFromSearchPreference(pref))
	if restored.Location() != "Austin" || restored.Budget() != 250000 || restored.Bedrooms() != 2 || restored.Size() != 800 {
		t.Fatalf("restored = %+v", restored)
	}
	if got := restored.Amenities(); len(got) != 1 || got[0] != "Pool" {
		t.Fatalf("amenities = %v", got)
	}
}

func TestListingChanged(t *testing.T) {
	t.Parallel()

	existing := PropertyDocument{
		Title: "Loft", Price: 100, Location: "Austin", Bedrooms: 2, Bathrooms: 1,
		SizeSqft: 800, Amenities: []string{"Pool"}, ImageURL: "a.jpg",
		SearchCount: 7, SearchedBy: []string{"u1"},
	}
	same := domain.Property{
		Title: "Loft", Price: 100, Location: "Austin", Bedrooms: 2, Bathrooms: 1,
		SizeSqft: 800, Amenities: []string{"Pool"}, ImageURL: "a.jpg",
	}
	if listingChanged(existing, same) {
		t.Fatal("telemetry fields must not count as a change")
	}

	moved := same
	moved.Amenities = []string{"Pool", "Gym"}
	if !listingChanged(existing, moved) {
		t.Fatal("amenity change not detected")
	}
}
