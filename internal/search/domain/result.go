package domain

// Tier は検索カスケードのどの段で結果が得られたかを表す。
type Tier string

const (
	TierExact          Tier = "exact"
	TierClose          Tier = "close"
	TierBedrooms       Tier = "bedrooms"
	TierLocationBudget Tier = "location_budget"
	TierLocationOnly   Tier = "location_only"
	TierBudgetOnly     Tier = "budget_only"
	TierBedroomsOnly   Tier = "bedrooms_only"
	TierSizeOnly       Tier = "size_only"
	TierNone           Tier = "none"
)

var tierMessages = map[Tier]string{
	TierExact:          "Exact match found.",
	TierClose:          "Close match based on most preferences.",
	TierBedrooms:       "Matched by location, budget, and bedrooms.",
	TierLocationBudget: "Matched by location and budget.",
	TierLocationOnly:   "Matched by location only.",
	TierBudgetOnly:     "Matched by budget only.",
	TierBedroomsOnly:   "Matched by bedrooms only.",
	TierSizeOnly:       "Matched by size only.",
	TierNone:           "No matching properties found.",
}

// Message returns the human-readable message for the tier.
func (t Tier) Message() string {
	if msg, ok := tierMessages[t]; ok {
		return msg
	}
	return tierMessages[TierNone]
}

func (t Tier) String() string {
	return string(t)
}

// MatchResult is the outcome of a cascading search.
type MatchResult struct {
	Tier       Tier
	Properties []Property
}

// NewMatchResult returns the result for tier, or the not-found result when
// properties is empty.
func NewMatchResult(tier Tier, properties []Property) MatchResult {
	if len(properties) == 0 {
		return NoMatch()
	}
	return MatchResult{Tier: tier, Properties: properties}
}

// NoMatch returns the terminal not-found outcome.
func NoMatch() MatchResult {
	return MatchResult{Tier: TierNone, Properties: []Property{}}
}

// Found reports whether any tier produced listings.
func (r MatchResult) Found() bool {
	return r.Tier != TierNone && len(r.Properties) > 0
}

func (r MatchResult) Message() string {
	return r.Tier.Message()
}
