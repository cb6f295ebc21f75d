package application

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sngm3741/property-match-services/api/internal/search/domain"
)

// Matcher は検索条件を段階的に緩めながら物件を探すカスケード検索。
// 段の順序は固定で、最初に 1 件以上ヒットした段の結果を返す。
type Matcher struct {
	repo         PropertyQuerier
	queryTimeout time.Duration
}

// NewMatcher builds a Matcher. A positive queryTimeout bounds every
// repository call individually.
func NewMatcher(repo PropertyQuerier, queryTimeout time.Duration) *Matcher {
	return &Matcher{repo: repo, queryTimeout: queryTimeout}
}

// Match runs the tiers in order and returns the first non-empty one, or the
// not-found result. Any repository failure aborts the cascade.
func (m *Matcher) Match(ctx context.Context, pref domain.SearchPreference) (domain.MatchResult, error) {
	budget := pref.Budget()
	bedrooms := pref.Bedrooms()
	size := pref.Size()

	base := PropertyFilter{
		ActiveOnly:       true,
		LocationContains: pref.Location(),
	}

	exact := base
	exact.MaxPrice = &budget
	exact.MinBedrooms = &bedrooms
	exact.MinSize = &size
	exact.Amenities = pref.Amenities()

	exactMatches, err := m.query(ctx, "exact match", exact)
	if err != nil {
		return domain.MatchResult{}, err
	}
	if len(exactMatches) > 0 {
		return domain.NewMatchResult(domain.TierExact, exactMatches), nil
	}

	withinBudget := base
	withinBudget.MaxPrice = &budget
	budgetMatches, err := m.query(ctx, "budget fallback", withinBudget)
	if err != nil {
		return domain.MatchResult{}, err
	}
	if result, ok := partitionFallback(budgetMatches, bedrooms, size); ok {
		return result, nil
	}

	return m.matchSingleFields(ctx, pref)
}

// partitionFallback は予算内の結果を「寝室+広さ」「寝室のみ」に振り分ける。
// どちらも空のときだけ予算内の結果全体を採用する。
func partitionFallback(properties []domain.Property, bedrooms, size int) (domain.MatchResult, bool) {
	if len(properties) == 0 {
		return domain.MatchResult{}, false
	}

	bySize := PropertyFilter{MinBedrooms: &bedrooms, MinSize: &size}
	byBedrooms := PropertyFilter{MinBedrooms: &bedrooms}

	sizeMatches := make([]domain.Property, 0)
	bedroomMatches := make([]domain.Property, 0)
	for _, p := range properties {
		switch {
		case bySize.Matches(p):
			sizeMatches = append(sizeMatches, p)
		case byBedrooms.Matches(p):
			bedroomMatches = append(bedroomMatches, p)
		}
	}

	if len(sizeMatches) > 0 {
		return domain.NewMatchResult(domain.TierClose, sizeMatches), true
	}
	if len(bedroomMatches) > 0 {
		return domain.NewMatchResult(domain.TierBedrooms, bedroomMatches), true
	}
	return domain.NewMatchResult(domain.TierLocationBudget, properties), true
}

type singleFieldQuery struct {
	tier   domain.Tier
	filter PropertyFilter
}

// matchSingleFields は 4 つの単一条件クエリを並行に実行し、全完了を待ってから優先順で採用する。
func (m *Matcher) matchSingleFields(ctx context.Context, pref domain.SearchPreference) (domain.MatchResult, error) {
	budget := pref.Budget()
	bedrooms := pref.Bedrooms()
	size := pref.Size()

	queries := []singleFieldQuery{
		{tier: domain.TierLocationOnly, filter: PropertyFilter{ActiveOnly: true, LocationContains: pref.Location()}},
		{tier: domain.TierBudgetOnly, filter: PropertyFilter{ActiveOnly: true, MaxPrice: &budget}},
		{tier: domain.TierBedroomsOnly, filter: PropertyFilter{ActiveOnly: true, MinBedrooms: &bedrooms}},
		{tier: domain.TierSizeOnly, filter: PropertyFilter{ActiveOnly: true, MinSize: &size}},
	}

	results := make([][]domain.Property, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		g.Go(func() error {
			properties, err := m.query(gctx, string(q.tier), q.filter)
			if err != nil {
				return err
			}
			results[i] = properties
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.MatchResult{}, err
	}

	for i, q := range queries {
		if len(results[i]) > 0 {
			return domain.NewMatchResult(q.tier, results[i]), nil
		}
	}
	return domain.NoMatch(), nil
}

func (m *Matcher) query(ctx context.Context, op string, filter PropertyFilter) ([]domain.Property, error) {
	if m.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.queryTimeout)
		defer cancel()
	}
	properties, err := m.repo.Query(ctx, filter)
	if err != nil {
		return nil, domain.WrapRepositoryError(op, err)
	}
	return properties, nil
}
