package domain

import "time"

// Property represents a listing that can be surfaced by a search.
type Property struct {
	ID          string
	ListingID   int
	Title       string
	Description string
	Price       float64
	Location    string
	Bedrooms    int
	Bathrooms   int
	SizeSqft    int
	Amenities   []string
	ImageURL    string
	IsActive    bool
	SearchCount int
	SearchedBy  []string
	CreatedAt   time.Time
}

// HasAmenities は要求アメニティをすべて備えているかを集合包含で判定する。
// 空の要求は常に満たされる。
func (p Property) HasAmenities(required []string) bool {
	if len(required) == 0 {
		return true
	}
	owned := makeAmenitySet(p.Amenities)
	for _, amenity := range required {
		if _, ok := owned[normalizeAmenity(amenity)]; !ok {
			return false
		}
	}
	return true
}

// PropertyIDs returns the store identifiers of the given properties in order.
func PropertyIDs(properties []Property) []string {
	ids := make([]string, 0, len(properties))
	for _, p := range properties {
		if p.ID == "" {
			continue
		}
		ids = append(ids, p.ID)
	}
	return ids
}

func makeAmenitySet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = normalizeAmenity(item)
		if item == "" {
			continue
		}
		set[item] = struct{}{}
	}
	return set
}
