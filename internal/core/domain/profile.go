package domain

import "time"

const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceExpert       = "expert"
)

// CreatorProfile is the descriptive/portfolio record owned by exactly
// one creator user. Rating, total reviews, and earnings are stored
// aggregates maintained elsewhere; this service never computes them.
type CreatorProfile struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Bio             string    `json:"bio"`
	Skills          []string  `json:"skills"`
	ExperienceLevel string    `json:"experience_level"`
	PortfolioItems  []string  `json:"portfolio_items"`
	Rating          float64   `json:"rating"`
	TotalReviews    int       `json:"total_reviews"`
	TotalEarnings   float64   `json:"total_earnings"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
