package domain

import "time"

// ServiceListing is a sellable offering published by a creator.
// IsActive gates public visibility in search results.
type ServiceListing struct {
	ID                 string    `json:"id"`
	CreatorID          string    `json:"creator_id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Category           string    `json:"category"`
	Tags               []string  `json:"tags"`
	BasePrice          float64   `json:"base_price"`
	DeliveryTimeDays   int       `json:"delivery_time_days"`
	RevisionsIncluded  int       `json:"revisions_included"`
	Images             []string  `json:"images"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
