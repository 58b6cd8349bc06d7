package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/institute-cms/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteServiceError_Mapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   domain.ErrorCode
	}{
		{fmt.Errorf("field 'email' failed 'email': %w", domain.ErrBadRequest), http.StatusBadRequest, domain.CodeInvalidInput},
		{fmt.Errorf("email already registered: %w", domain.ErrConflict), http.StatusBadRequest, domain.CodeConflict},
		{fmt.Errorf("otp expired: %w", domain.ErrExpired), http.StatusBadRequest, domain.CodeExpired},
		{domain.ErrUnauthorized, http.StatusUnauthorized, domain.CodeUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden, domain.CodeForbidden},
		{fmt.Errorf("course not found: %w", domain.ErrNotFound), http.StatusNotFound, domain.CodeNotFound},
		{fmt.Errorf("send verification email: %w", domain.ErrDelivery), http.StatusInternalServerError, domain.CodeDeliveryFailed},
		{errors.New("dynamodb: throttled"), http.StatusInternalServerError, domain.CodeServerError},
	}
	for _, tc := range cases {
		t.Run(string(tc.code), func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeServiceError(rr, httptest.NewRequest(http.MethodGet, "/", nil), tc.err)

			assert.Equal(t, tc.status, rr.Code)
			var body MessageEnvelope
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

func TestWriteServiceError_HidesInternalText(t *testing.T) {
	rr := httptest.NewRecorder()
	writeServiceError(rr, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("secret table arn"))

	assert.NotContains(t, rr.Body.String(), "secret table arn")
}
