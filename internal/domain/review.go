package domain

import "time"

// ReviewDateLayout is the human-readable date stamped on new reviews.
const ReviewDateLayout = "January 2, 2006"

type Review struct {
	ReviewID  string    `json:"id" dynamodbav:"review_id"`
	Reviewer  string    `json:"reviewer" dynamodbav:"reviewer"`
	Rating    int       `json:"rating" dynamodbav:"rating"`
	Review    string    `json:"review" dynamodbav:"review"`
	Date      string    `json:"date" dynamodbav:"date"`
	CreatedAt time.Time `json:"created" dynamodbav:"created_at"`
}

type CreateReviewRequest struct {
	Reviewer string `json:"reviewer" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Review   string `json:"review" validate:"required"`
}
