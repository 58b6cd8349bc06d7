package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")
	ErrExpired      = errors.New("expired")
	ErrDelivery     = errors.New("delivery failed")
)

// ErrorCode is the stable, machine-readable code returned alongside error messages.
type ErrorCode string

const (
	CodeInvalidInput   ErrorCode = "invalid_input"
	CodeConflict       ErrorCode = "conflict"
	CodeExpired        ErrorCode = "expired"
	CodeUnauthorized   ErrorCode = "unauthorized"
	CodeForbidden      ErrorCode = "forbidden"
	CodeNotFound       ErrorCode = "not_found"
	CodeDeliveryFailed ErrorCode = "delivery_failed"
	CodeServerError    ErrorCode = "server_error"
)
