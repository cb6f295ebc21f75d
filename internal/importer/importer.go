// Package importer loads listing data files and upserts them into the property store.
package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sngm3741/property-match-services/api/internal/search/domain"
)

// Action is what the store did with one imported listing.
type Action int

const (
	Unchanged Action = iota
	Inserted
	Updated
)

// Store persists imported listings keyed by their business id.
type Store interface {
	UpsertListing(ctx context.Context, listing domain.Property) (Action, error)
}

// Files names the three source files. Characteristics and images are joined onto basics by id.
type Files struct {
	Basics          string
	Characteristics string
	Images          string
}

// Summary counts the outcome of an import run.
type Summary struct {
	Inserted  int
	Updated   int
	Unchanged int
}

// Record は結合後の 1 物件分の入力データ。
type Record struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Location    string   `json:"location"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	SizeSqft    int      `json:"size_sqft"`
	Amenities   []string `json:"amenities"`
	ImageURL    string   `json:"image_url"`
}

// Run はファイルを読み込んで結合し、1 件ずつ upsert する。途中で失敗した場合はそこまでの件数とエラーを返す。
func Run(ctx context.Context, store Store, files Files) (Summary, error) {
	records, err := Load(files)
	if err != nil {
		return Summary{}, err
	}
	return Apply(ctx, store, records)
}

// Apply upserts already merged records.
func Apply(ctx context.Context, store Store, records []Record) (Summary, error) {
	var summary Summary
	for _, record := range records {
		listing, err := record.Property()
		if err != nil {
			return summary, err
		}
		action, err := store.UpsertListing(ctx, listing)
		if err != nil {
			return summary, fmt.Errorf("upsert listing %d: %w", record.ID, err)
		}
		switch action {
		case Inserted:
			summary.Inserted++
		case Updated:
			summary.Updated++
		default:
			summary.Unchanged++
		}
	}
	return summary, nil
}

// Load reads the three files and merges them.
func Load(files Files) ([]Record, error) {
	basics, err := readObjects(files.Basics)
	if err != nil {
		return nil, err
	}
	characteristics, err := readObjects(files.Characteristics)
	if err != nil {
		return nil, err
	}
	images, err := readObjects(files.Images)
	if err != nil {
		return nil, err
	}
	return Merge(basics, characteristics, images)
}

// Merge は basics の並び順を保ったまま、同じ id の characteristics / images の項目を後勝ちで重ねる。
// basics に存在しない id のデータは無視する。
func Merge(basics []map[string]json.RawMessage, extras ...[]map[string]json.RawMessage) ([]Record, error) {
	lookups := make([]map[string]map[string]json.RawMessage, 0, len(extras))
	for _, objects := range extras {
		index := make(map[string]map[string]json.RawMessage, len(objects))
		for _, object := range objects {
			if key := idKey(object); key != "" {
				index[key] = object
			}
		}
		lookups = append(lookups, index)
	}

	records := make([]Record, 0, len(basics))
	for i, basic := range basics {
		key := idKey(basic)
		if key == "" {
			return nil, fmt.Errorf("basics[%d]: id is required", i)
		}
		merged := make(map[string]json.RawMessage, len(basic))
		for field, value := range basic {
			merged[field] = value
		}
		for _, index := range lookups {
			for field, value := range index[key] {
				merged[field] = value
			}
		}

		payload, err := json.Marshal(merged)
		if err != nil {
			return nil, err
		}
		var record Record
		if err := json.Unmarshal(payload, &record); err != nil {
			return nil, fmt.Errorf("listing %s: %w", key, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// Property validates the record and converts it to a listing. Imported listings start active.
func (r Record) Property() (domain.Property, error) {
	title := strings.TrimSpace(r.Title)
	location := strings.TrimSpace(r.Location)
	if title == "" || location == "" || r.Price == nil {
		return domain.Property{}, fmt.Errorf("listing %d: title, price and location are required", r.ID)
	}
	amenities, err := domain.NormalizeAmenities(r.Amenities)
	if err != nil {
		return domain.Property{}, fmt.Errorf("listing %d: %w", r.ID, err)
	}
	return domain.Property{
		ListingID:   r.ID,
		Title:       title,
		Description: strings.TrimSpace(r.Description),
		Price:       *r.Price,
		Location:    location,
		Bedrooms:    r.Bedrooms,
		Bathrooms:   r.Bathrooms,
		SizeSqft:    r.SizeSqft,
		Amenities:   amenities,
		ImageURL:    strings.TrimSpace(r.ImageURL),
		IsActive:    true,
	}, nil
}

func readObjects(path string) ([]map[string]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s の読み込みに失敗しました: %w", path, err)
	}
	var objects []map[string]json.RawMessage
	if err := json.Unmarshal(data, &objects); err != nil {
		return nil, fmt.Errorf("%s の解析に失敗しました: %w", path, err)
	}
	return objects, nil
}

// idKey は数値・文字列どちらの id も同じキーとして扱う。
func idKey(object map[string]json.RawMessage) string {
	raw, ok := object["id"]
	if !ok {
		return ""
	}
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	return string(raw)
}
