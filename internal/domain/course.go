package domain

import "time"

type Course struct {
	CourseID    string    `json:"id" dynamodbav:"course_id"`
	Title       string    `json:"title" dynamodbav:"title"`
	Description string    `json:"description" dynamodbav:"description"`
	Duration    string    `json:"duration" dynamodbav:"duration"`
	Category    string    `json:"category" dynamodbav:"category"`
	Image       Asset     `json:"image" dynamodbav:"image"`
	CreatedAt   time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt   time.Time `json:"updated" dynamodbav:"updated_at"`
}

type CreateCourseRequest struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
	Duration    string `validate:"required"`
	Category    string `validate:"required"`
}

type UpdateCourseRequest struct {
	Title       *string
	Description *string
	Duration    *string
	Category    *string
}
