package services

import (
	"sort"
	"strings"

	"github.com/oumarknt31/Restaurant-ai-system/models"

	"github.com/shopspring/decimal"
)

// Recommendation is one ranked menu suggestion
type Recommendation struct {
	Dish  models.Dish `json:"dish"`
	Score int         `json:"score"`
}

// RecommendRequest is the rule-based recommender contract: free-text
// preference and budget are both optional.
type RecommendRequest struct {
	UserID     uint             `json:"user_id" binding:"required"`
	Preference string           `json:"preference"`
	MaxPrice   *decimal.Decimal `json:"max_price"`
	MaxResults int              `json:"max_results"`
}

// RecommendService scores the menu against keyword preferences and a budget.
// VIP-only dishes never surface for roles that cannot order them.
type RecommendService struct {
	users   *UserService
	catalog *CatalogService
}

func NewRecommendService(users *UserService, catalog *CatalogService) *RecommendService {
	return &RecommendService{users: users, catalog: catalog}
}

// keywords matched against dish name + description; each hit adds 2
var preferenceKeywords = map[string][]string{
	"spicy": {"spicy"},
	"vegan": {"vegan"},
	"fish":  {"fish"},
	"meat":  {"beef", "chicken", "meat"},
	"rice":  {"rice"},
}

// Recommend returns up to MaxResults dishes ranked by score (ties broken by
// price, cheapest first)
func (s *RecommendService) Recommend(req RecommendRequest) ([]Recommendation, error) {
	user, err := s.users.Get(req.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, newError(KindAccountInactive, "account is deactivated")
	}
	if user.IsBlacklisted {
		return nil, newError(KindAccountBlacklisted, "account is blacklisted")
	}

	dishes, err := s.catalog.ListVisibleTo(user.Role)
	if err != nil {
		return nil, err
	}

	preference := strings.ToLower(req.Preference)
	var recs []Recommendation
	for _, d := range dishes {
		if req.MaxPrice != nil && d.Price.GreaterThan(*req.MaxPrice) {
			continue
		}
		recs = append(recs, Recommendation{Dish: d, Score: scoreDish(d, preference)})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].Dish.Price.LessThan(recs[j].Dish.Price)
	})

	max := req.MaxResults
	if max <= 0 {
		max = 5
	}
	if len(recs) > max {
		recs = recs[:max]
	}
	return recs, nil
}

func scoreDish(d models.Dish, preference string) int {
	text := strings.ToLower(d.Name + " " + d.Description)

	score := 0
	for want, hits := range preferenceKeywords {
		if !strings.Contains(preference, want) {
			continue
		}
		for _, h := range hits {
			if strings.Contains(text, h) {
				score += 2
				break
			}
		}
	}

	// slight preference for cheaper dishes
	cheap := 5 - int(d.Price.Div(decimal.NewFromInt(5)).IntPart())
	if cheap > 0 {
		score += cheap
	}
	return score
}
