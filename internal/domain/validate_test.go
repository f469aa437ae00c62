package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Name   string  `json:"name" validate:"required"`
		Status string  `json:"status" validate:"omitempty,oneof=On Off"`
		Price  float64 `json:"price" validate:"gte=0"`
		Email  string  `json:"email,omitempty" validate:"omitempty,email"`
	}

	tests := []struct {
		name    string
		input   payload
		wantErr string
	}{
		{name: "valid", input: payload{Name: "x", Status: "On"}},
		{name: "missing name", input: payload{}, wantErr: "name is required"},
		{name: "bad status", input: payload{Name: "x", Status: "Maybe"}, wantErr: "status must be one of: On Off"},
		{name: "negative price", input: payload{Name: "x", Price: -1}, wantErr: "price must be at least 0"},
		{name: "bad email", input: payload{Name: "x", Email: "nope"}, wantErr: "email is not a valid email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var ve ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantErr, ve.Message)
		})
	}
}
