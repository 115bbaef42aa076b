// AngelaMos | 2026
// validation_test.go

package core

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string           `json:"email"         validate:"required,email"`
	Price decimal.Decimal  `json:"price_per_unit" validate:"required,gt=0,lte=9999999999.99"`
	Qty   *decimal.Decimal `json:"quantity"      validate:"required,gte=0"`
	Role  string           `json:"userType"      validate:"required,oneof=farmer buyer"`
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"email":"a@b.co","price_per_unit":"1.50"}`},
		{name: "empty", body: ``, wantErr: "request body is empty"},
		{name: "malformed", body: `{"email":`, wantErr: "malformed JSON"},
		{name: "unknown field", body: `{"role":"admin"}`, wantErr: `unknown field "role"`},
		{name: "wrong type", body: `{"email":42}`, wantErr: "field email has the wrong type"},
		{name: "trailing data", body: `{"email":"a@b.co"}{}`, wantErr: "single JSON object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest("POST", "/", strings.NewReader(tt.body))
			var dst sampleRequest
			err := DecodeJSON(req, &dst)

			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "a@b.co", dst.Email)
				assert.True(t, dst.Price.Equal(decimal.RequireFromString("1.5")))
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, InputMessage(err), tt.wantErr)
			assert.NotContains(t, InputMessage(err), "invalid input")
		})
	}
}

func TestInputMessage_WrappedTwice(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("place order: %w", fmt.Errorf("%w: quantity exceeds stock", ErrInvalidInput))
	assert.Equal(t, "quantity exceeds stock", InputMessage(err))
}

func TestValidator_JSONNamesAndDecimals(t *testing.T) {
	t.Parallel()

	v := NewValidator()
	zero := decimal.Zero
	negative := decimal.NewFromInt(-1)

	valid := sampleRequest{
		Email: "farmer@example.com",
		Price: decimal.RequireFromString("0.01"),
		Qty:   &zero,
		Role:  "farmer",
	}
	require.NoError(t, v.Struct(valid))

	bad := sampleRequest{
		Email: "not-an-email",
		Price: decimal.RequireFromString("-2"),
		Qty:   &negative,
		Role:  "admin",
	}
	msg := FormatValidationError(v.Struct(bad))

	assert.Contains(t, msg, "email must be a valid email address")
	assert.Contains(t, msg, "price_per_unit must be greater than 0")
	assert.Contains(t, msg, "quantity must be at least 0")
	assert.Contains(t, msg, "userType must be one of: farmer buyer")

	tooHigh := valid
	tooHigh.Price = decimal.RequireFromString("10000000000")
	assert.Contains(t, FormatValidationError(v.Struct(tooHigh)),
		"price_per_unit must be at most 9999999999.99")

	missing := FormatValidationError(v.Struct(sampleRequest{}))
	assert.Contains(t, missing, "email is required")
	assert.Contains(t, missing, "quantity is required")
}

func TestFormatValidationError_NotValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "invalid request", FormatValidationError(errors.New("boom")))
}

func TestHasMaxDecimals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value  string
		places int32
		want   bool
	}{
		{"12", 2, true},
		{"12.5", 2, true},
		{"12.50", 2, true},
		{"12.505", 2, false},
		{"0.125", 3, true},
		{"0.1255", 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, HasMaxDecimals(decimal.RequireFromString(tt.value), tt.places))
		})
	}
}

func TestParseID(t *testing.T) {
	t.Parallel()

	id, ok := ParseID("6F9619FF-8B86-D011-B42D-00C04FC964FF")
	assert.True(t, ok)
	assert.Equal(t, "6f9619ff-8b86-d011-b42d-00c04fc964ff", id)

	_, ok = ParseID("42")
	assert.False(t, ok)
}
