package public

import (
	"time"

	"github.com/sngm3741/property-match-services/api/internal/search/domain"
)

// preferenceRequest はどの項目も型を問わずに受け取る。検証は domain 側で行う。
type preferenceRequest struct {
	Location  any `json:"location"`
	Budget    any `json:"budget"`
	Bedrooms  any `json:"bedrooms"`
	Size      any `json:"size"`
	Amenities any `json:"amenities"`
}

func (req preferenceRequest) raw() domain.RawPreference {
	return domain.RawPreference{
		Location:  req.Location,
		Budget:    req.Budget,
		Bedrooms:  req.Bedrooms,
		Size:      req.Size,
		Amenities: req.Amenities,
	}
}

type propertyResponse struct {
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

type preferenceResponse struct {
	Location  string     `json:"location,omitempty"`
	Budget    *float64   `json:"budget"`
	Bedrooms  *int       `json:"bedrooms"`
	Size      *int       `json:"size"`
	Amenities []string   `json:"amenities"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func toPropertyResponse(p domain.Property) propertyResponse {
	amenities := p.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	searchedBy := p.SearchedBy
	if searchedBy == nil {
		searchedBy = []string{}
	}
	return propertyResponse{
		ID:          p.ID,
		ListingID:   p.ListingID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Location:    p.Location,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		SizeSqft:    p.SizeSqft,
		Amenities:   amenities,
		ImageURL:    p.ImageURL,
		IsActive:    p.IsActive,
		SearchCount: p.SearchCount,
		SearchedBy:  searchedBy,
		CreatedAt:   p.CreatedAt,
	}
}

func toPropertyResponses(properties []domain.Property) []propertyResponse {
	items := make([]propertyResponse, 0, len(properties))
	for _, p := range properties {
		items = append(items, toPropertyResponse(p))
	}
	return items
}

func toPreferenceResponse(pref *domain.UserPreference) preferenceResponse {
	resp := preferenceResponse{Amenities: []string{}}
	if pref == nil {
		return resp
	}
	resp.Location = pref.Location
	resp.Budget = pref.Budget
	resp.Bedrooms = pref.Bedrooms
	resp.Size = pref.Size
	if len(pref.Amenities) > 0 {
		resp.Amenities = append(resp.Amenities, pref.Amenities...)
	}
	if !pref.UpdatedAt.IsZero() {
		updated := pref.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}
