package admin

import (
	"time"

	"github.com/sngm3741/property-match-services/api/internal/search/domain"
)

type adminPropertyUpdateRequest struct {
	IsActive *bool `json:"isActive"`
}

type adminPropertyResponse struct {
	ID          string    `json:"_id"`
	ListingID   int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Location    string    `json:"location"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   int       `json:"bathrooms"`
	SizeSqft    int       `json:"size_sqft"`
	Amenities   []string  `json:"amenities"`
	ImageURL    string    `json:"image_url,omitempty"`
	IsActive    bool      `json:"isActive"`
	SearchCount int       `json:"searchCount"`
	SearchedBy  []string  `json:"searchedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

type adminPreferenceSnapshot struct {
	Location  string   `json:"location"`
	Budget    float64  `json:"budget"`
	Bedrooms  int      `json:"bedrooms"`
	Size      int      `json:"size"`
	Amenities []string `json:"amenities"`
}

type adminSearchEventResponse struct {
	ID          string                  `json:"id"`
	SearchID    string                  `json:"searchId"`
	UserID      string                  `json:"userId,omitempty"`
	Anonymous   bool                    `json:"anonymous"`
	Preferences adminPreferenceSnapshot `json:"preferences"`
	SearchedAt  time.Time               `json:"searchedAt"`
}

func toAdminPropertyResponse(p domain.Property) adminPropertyResponse {
	return adminPropertyResponse{
		ID:          p.ID,
		ListingID:   p.ListingID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Location:    p.Location,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		SizeSqft:    p.SizeSqft,
		Amenities:   nonNil(p.Amenities),
		ImageURL:    p.ImageURL,
		IsActive:    p.IsActive,
		SearchCount: p.SearchCount,
		SearchedBy:  nonNil(p.SearchedBy),
		CreatedAt:   p.CreatedAt,
	}
}

func toAdminSearchEventResponse(event domain.SearchEvent) adminSearchEventResponse {
	pref := event.Preference
	return adminSearchEventResponse{
		ID:        event.ID,
		SearchID:  event.SearchID,
		UserID:    event.UserID,
		Anonymous: event.Anonymous(),
		Preferences: adminPreferenceSnapshot{
			Location:  pref.Location(),
			Budget:    pref.Budget(),
			Bedrooms:  pref.Bedrooms(),
			Size:      pref.Size(),
			Amenities: pref.Amenities(),
		},
		SearchedAt: event.SearchedAt,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
