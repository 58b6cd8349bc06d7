package domain

// OTPRecord stores a pending email verification code.
// PK: email. ExpiresAt is a Unix timestamp used as DynamoDB TTL, but the
// service checks it explicitly since TTL deletion is lazy.
type OTPRecord struct {
	Email     string `json:"email" dynamodbav:"email"`
	Code      string `json:"-" dynamodbav:"code"`
	ExpiresAt int64  `json:"expires_at" dynamodbav:"expires_at"`
}
