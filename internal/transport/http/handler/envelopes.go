package handler

import (
	"encoding/json"
	"net/http"

	"github.com/institute-cms/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string           `json:"message,omitempty"`
	Error   string           `json:"error,omitempty"`
	Code    domain.ErrorCode `json:"code,omitempty"`
}

// SafeUser is the public view of a user returned to clients.
type SafeUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toSafeUser(u *domain.User) *SafeUser {
	if u == nil {
		return nil
	}
	return &SafeUser{ID: u.UserID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// LoginEnvelope wraps login responses.
type LoginEnvelope struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    *SafeUser `json:"user"`
}

// UserEnvelope wraps single-user mutation responses.
type UserEnvelope struct {
	Message string    `json:"message"`
	User    *SafeUser `json:"user"`
}

type VerifyEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code domain.ErrorCode, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg, Code: code})
}
