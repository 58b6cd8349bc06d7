package domain

import "time"

// Banner is a home-page carousel image.
type Banner struct {
	BannerID  string    `json:"id" dynamodbav:"banner_id"`
	Image     Asset     `json:"image" dynamodbav:"image"`
	CreatedAt time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated" dynamodbav:"updated_at"`
}
