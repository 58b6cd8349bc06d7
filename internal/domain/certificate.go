package domain

import "time"

// IssueDateLayout is the wire format of Certificate.IssueDate.
const IssueDateLayout = "2006-01-02"

type Certificate struct {
	CertificateID string    `json:"id" dynamodbav:"certificate_id"`
	Title         string    `json:"title" dynamodbav:"title"`
	Issuer        string    `json:"issuer" dynamodbav:"issuer"`
	Description   string    `json:"description" dynamodbav:"description"`
	IssueDate     string    `json:"issueDate" dynamodbav:"issue_date"`
	Certificate   Asset     `json:"certificate" dynamodbav:"certificate"`
	CreatedAt     time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt     time.Time `json:"updated" dynamodbav:"updated_at"`
}

type CreateCertificateRequest struct {
	Title       string `validate:"required"`
	Issuer      string `validate:"required"`
	Description string `validate:"required"`
	IssueDate   string `validate:"required,datetime=2006-01-02"`
}

type UpdateCertificateRequest struct {
	Title       *string
	Issuer      *string
	Description *string
	IssueDate   *string `validate:"omitempty,datetime=2006-01-02"`
}
