package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	msgMissingPreferences = "Missing required property preferences."
	msgInvalidNumbers     = "Budget, bedrooms, and size must be valid numbers."
	msgSetPreferences     = "Please set your search preferences in settings first."

	// maxLowerBound keeps rounded-up lower bounds inside int range.
	maxLowerBound = math.MaxInt32
)

// RawPreference carries request values before validation. Each field holds
// whatever the transport decoded (string, number, list, nil).
type RawPreference struct {
	Location  any
	Budget    any
	Bedrooms  any
	Size      any
	Amenities any
}

// SearchPreference は正規化済みの検索条件。生成後は変更できない。
type SearchPreference struct {
	location  string
	budget    float64
	bedrooms  int
	size      int
	amenities []string
}

// NewSearchPreference は生の入力値を検証・型変換し、SearchPreference を返す。
// 必須項目の欠落や数値化できない値は ValidationError になる。
func NewSearchPreference(raw RawPreference) (SearchPreference, error) {
	if isMissing(raw.Location) || isMissing(raw.Budget) || isMissing(raw.Bedrooms) || isMissing(raw.Size) {
		return SearchPreference{}, &ValidationError{Message: msgMissingPreferences}
	}

	location, err := coerceLocation(raw.Location)
	if err != nil {
		return SearchPreference{}, err
	}
	budget, err := coerceNumber(raw.Budget)
	if err != nil {
		return SearchPreference{}, err
	}
	bedrooms, err := coerceLowerBound(raw.Bedrooms)
	if err != nil {
		return SearchPreference{}, err
	}
	size, err := coerceLowerBound(raw.Size)
	if err != nil {
		return SearchPreference{}, err
	}
	amenities, err := NormalizeAmenities(raw.Amenities)
	if err != nil {
		return SearchPreference{}, err
	}

	return SearchPreference{
		location:  location,
		budget:    budget,
		bedrooms:  bedrooms,
		size:      size,
		amenities: amenities,
	}, nil
}

// RestoreSearchPreference rebuilds a preference from already-typed values,
// e.g. a persisted search event snapshot.
func RestoreSearchPreference(location string, budget float64, bedrooms, size int, amenities []string) SearchPreference {
	normalized, _ := NormalizeAmenities(amenities)
	return SearchPreference{
		location:  strings.TrimSpace(location),
		budget:    budget,
		bedrooms:  bedrooms,
		size:      size,
		amenities: normalized,
	}
}

func (p SearchPreference) Location() string { return p.location }
func (p SearchPreference) Budget() float64  { return p.budget }
func (p SearchPreference) Bedrooms() int    { return p.bedrooms }
func (p SearchPreference) Size() int        { return p.size }

// Amenities returns a copy of the required amenity set.
func (p SearchPreference) Amenities() []string {
	return append([]string{}, p.amenities...)
}

// UserPreference は利用者ごとに保存される検索条件プロファイル。未設定の項目は nil / 空で表す。
type UserPreference struct {
	UserID    string
	Location  string
	Budget    *float64
	Bedrooms  *int
	Size      *int
	Amenities []string
	UpdatedAt time.Time
}

// Apply はリクエストで指定された項目だけを上書きしたプロファイルを返す。
// changed はいずれかの項目が上書きされたかどうか。指定値が数値化できない場合は ValidationError。
func (u UserPreference) Apply(raw RawPreference) (merged UserPreference, changed bool, err error) {
	merged = u
	merged.Amenities = append([]string{}, u.Amenities...)

	if !isMissing(raw.Location) {
		location, err := coerceLocation(raw.Location)
		if err != nil {
			return u, false, err
		}
		merged.Location = location
		changed = true
	}
	if !isMissing(raw.Budget) {
		budget, err := coerceNumber(raw.Budget)
		if err != nil {
			return u, false, err
		}
		merged.Budget = &budget
		changed = true
	}
	if !isMissing(raw.Bedrooms) {
		bedrooms, err := coerceLowerBound(raw.Bedrooms)
		if err != nil {
			return u, false, err
		}
		merged.Bedrooms = &bedrooms
		changed = true
	}
	if !isMissing(raw.Size) {
		size, err := coerceLowerBound(raw.Size)
		if err != nil {
			return u, false, err
		}
		merged.Size = &size
		changed = true
	}
	amenities, err := NormalizeAmenities(raw.Amenities)
	if err != nil {
		return u, false, err
	}
	if len(amenities) > 0 {
		merged.Amenities = amenities
		changed = true
	}
	return merged, changed, nil
}

// Complete reports whether every required field is set.
func (u UserPreference) Complete() bool {
	return strings.TrimSpace(u.Location) != "" && u.Budget != nil && u.Bedrooms != nil && u.Size != nil
}

// SearchPreference converts a complete profile into a SearchPreference.
func (u UserPreference) SearchPreference() (SearchPreference, error) {
	if !u.Complete() {
		return SearchPreference{}, &ValidationError{Message: msgSetPreferences}
	}
	if math.IsNaN(*u.Budget) || math.IsInf(*u.Budget, 0) {
		return SearchPreference{}, &ValidationError{Message: msgInvalidNumbers}
	}
	return RestoreSearchPreference(u.Location, *u.Budget, *u.Bedrooms, *u.Size, u.Amenities), nil
}

// NormalizeAmenities trims every amenity, drops blanks and duplicates and
// keeps first-seen order. Accepts nil, a single string or a list.
func NormalizeAmenities(value any) ([]string, error) {
	var items []string
	switch v := value.(type) {
	case nil:
		return []string{}, nil
	case string:
		items = []string{v}
	case []string:
		items = v
	case []any:
		items = make([]string, 0, len(v))
		for _, item := range v {
			switch s := item.(type) {
			case nil:
				continue
			case string:
				items = append(items, s)
			case float64, json.Number, int, int64, bool:
				items = append(items, fmt.Sprint(s))
			default:
				return nil, &ValidationError{Message: "Amenities must be a list of text values."}
			}
		}
	default:
		return nil, &ValidationError{Message: "Amenities must be a list of text values."}
	}

	result := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = normalizeAmenity(item)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result, nil
}

func normalizeAmenity(value string) string {
	return strings.TrimSpace(value)
}

func isMissing(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case json.Number:
		return strings.TrimSpace(string(v)) == ""
	case *string:
		return v == nil || strings.TrimSpace(*v) == ""
	case *float64:
		return v == nil
	case *int:
		return v == nil
	}
	return false
}

func coerceLocation(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v), nil
	case *string:
		return strings.TrimSpace(*v), nil
	case json.Number:
		return strings.TrimSpace(v.String()), nil
	case float64, int, int64:
		return fmt.Sprint(v), nil
	}
	return "", &ValidationError{Message: "Location must be text."}
}

func coerceNumber(value any) (float64, error) {
	var parsed float64
	switch v := value.(type) {
	case float64:
		parsed = v
	case float32:
		parsed = float64(v)
	case int:
		parsed = float64(v)
	case int32:
		parsed = float64(v)
	case int64:
		parsed = float64(v)
	case uint:
		parsed = float64(v)
	case uint32:
		parsed = float64(v)
	case uint64:
		parsed = float64(v)
	case *float64:
		parsed = *v
	case *int:
		parsed = float64(*v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, &ValidationError{Message: msgInvalidNumbers}
		}
		parsed = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, &ValidationError{Message: msgInvalidNumbers}
		}
		parsed = f
	case *string:
		f, err := strconv.ParseFloat(strings.TrimSpace(*v), 64)
		if err != nil {
			return 0, &ValidationError{Message: msgInvalidNumbers}
		}
		parsed = f
	default:
		return 0, &ValidationError{Message: msgInvalidNumbers}
	}
	if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, &ValidationError{Message: msgInvalidNumbers}
	}
	return parsed, nil
}

// coerceLowerBound は整数項目の下限値として数値を切り上げる。bedrooms >= 2.5 は bedrooms >= 3 と同値。
func coerceLowerBound(value any) (int, error) {
	parsed, err := coerceNumber(value)
	if err != nil {
		return 0, err
	}
	bound := math.Ceil(parsed)
	if bound > maxLowerBound {
		return maxLowerBound, nil
	}
	if bound < -maxLowerBound {
		return -maxLowerBound, nil
	}
	return int(bound), nil
}
