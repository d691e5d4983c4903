package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *Error
		code   string
		status int
	}{
		{"validation", Validation("bad input", nil), CodeValidation, http.StatusBadRequest},
		{"authentication", Authentication(""), CodeAuthentication, http.StatusUnauthorized},
		{"authorization", Authorization(""), CodeAuthorization, http.StatusForbidden},
		{"not found", NotFound("Swap"), CodeNotFound, http.StatusNotFound},
		{"conflict", Conflict("already connected"), CodeConflict, http.StatusConflict},
		{"quote expired", QuoteExpired(), CodeQuoteExpired, http.StatusBadRequest},
		{"insufficient balance", InsufficientBalance("ZEC"), CodeInsufficientBalance, http.StatusBadRequest},
		{"invalid address", InvalidAddress("Zcash address"), CodeInvalidAddress, http.StatusBadRequest},
		{"rate limited", RateLimited(""), CodeRateLimitExceeded, http.StatusTooManyRequests},
		{"external service", ExternalService("sideshift", "timeout"), CodeExternalService, http.StatusBadGateway},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, tc.err.Code)
			assert.Equal(t, tc.status, tc.err.Status)
			assert.True(t, tc.err.Operational)
			assert.NotEmpty(t, tc.err.Error())
		})
	}
}

func TestNotFoundMessage(t *testing.T) {
	assert.Equal(t, "Swap not found", NotFound("Swap").Error())
	assert.Equal(t, "Resource not found", NotFound("").Error())
}

func TestFrom(t *testing.T) {
	typed := Validation("bad", nil)
	assert.Same(t, typed, From(typed))

	plain := From(errors.New("boom"))
	require.NotNil(t, plain)
	assert.Equal(t, CodeUnknown, plain.Code)
	assert.Equal(t, http.StatusInternalServerError, plain.Status)
	assert.False(t, plain.Operational)

	nilErr := From(nil)
	assert.Equal(t, CodeUnknown, nilErr.Code)
	assert.Equal(t, "An unexpected error occurred", nilErr.Message)
}

func TestIs(t *testing.T) {
	assert.True(t, Is(QuoteExpired(), CodeQuoteExpired))
	assert.False(t, Is(QuoteExpired(), CodeValidation))
	assert.False(t, Is(errors.New("boom"), CodeValidation))
}

func TestWithDetails(t *testing.T) {
	base := New(CodeValidation, "bad", http.StatusBadRequest)
	detailed := base.WithDetails(map[string]string{"field": "required"})

	assert.Nil(t, base.Details)
	require.NotNil(t, detailed.Details)
	assert.Equal(t, base.Code, detailed.Code)
}
