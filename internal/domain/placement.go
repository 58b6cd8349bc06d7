package domain

import "time"

type Placement struct {
	PlacementID string    `json:"id" dynamodbav:"placement_id"`
	Name        string    `json:"name" dynamodbav:"name"`
	CompanyName string    `json:"companyName" dynamodbav:"company_name"`
	PostName    string    `json:"postName" dynamodbav:"post_name"`
	Image       Asset     `json:"image" dynamodbav:"image"`
	CreatedAt   time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt   time.Time `json:"updated" dynamodbav:"updated_at"`
}

type CreatePlacementRequest struct {
	Name        string `validate:"required"`
	CompanyName string `validate:"required"`
	PostName    string `validate:"required"`
}

type UpdatePlacementRequest struct {
	Name        *string
	CompanyName *string
	PostName    *string
}
