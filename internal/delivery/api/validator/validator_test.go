package validator

import (
	"testing"

	domainerrors "cashmemo/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupRequest struct {
	Name     string   `json:"name" validate:"required,max=10"`
	Mobile   string   `json:"mobile" validate:"omitempty,bdmobile"`
	Email    string   `json:"email" validate:"omitempty,email"`
	Status   string   `json:"status" validate:"omitempty,oneof=pending paid"`
	Items    []string `json:"items" validate:"omitempty,min=1,max=2"`
	Quantity int      `json:"quantity" validate:"gte=0"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     signupRequest
		wantMsg string
	}{
		{name: "valid", req: signupRequest{Name: "Mina", Mobile: "01712345678"}},
		{name: "international mobile", req: signupRequest{Name: "Mina", Mobile: "+8801712345678"}},
		{name: "required uses json name", req: signupRequest{}, wantMsg: "name is required"},
		{name: "string max", req: signupRequest{Name: "abcdefghijk"}, wantMsg: "name must be at most 10 characters"},
		{name: "bad mobile", req: signupRequest{Name: "Mina", Mobile: "0171234"}, wantMsg: "mobile must be a valid Bangladeshi mobile number"},
		{name: "mobile with letters", req: signupRequest{Name: "Mina", Mobile: "0171234567a"}, wantMsg: "mobile must be a valid Bangladeshi mobile number"},
		{name: "email", req: signupRequest{Name: "Mina", Email: "nope"}, wantMsg: "email must be a valid email address"},
		{name: "oneof", req: signupRequest{Name: "Mina", Status: "lost"}, wantMsg: "status must be one of: pending paid"},
		{name: "slice max", req: signupRequest{Name: "Mina", Items: []string{"a", "b", "c"}}, wantMsg: "items must contain at most 2 items"},
		{name: "gte", req: signupRequest{Name: "Mina", Quantity: -1}, wantMsg: "quantity must be 0 or more"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.req)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantMsg, appErr.Message())
		})
	}
}
