package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Platform string   `json:"platform" validate:"required,oneof=ios android"`
	Radius   *float64 `json:"radius,omitempty" validate:"omitempty,gt=0"`
	Hour     *int     `json:"hour,omitempty" validate:"omitempty,min=0,max=23"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()
	negative := -1.0
	late := 24

	tests := []struct {
		name    string
		input   sample
		wantErr string
	}{
		{name: "valid", input: sample{Platform: "ios"}},
		{name: "missing platform", input: sample{}, wantErr: "platform is required"},
		{name: "unknown platform", input: sample{Platform: "web"}, wantErr: "platform must be one of [ios android]"},
		{name: "non-positive radius", input: sample{Platform: "android", Radius: &negative}, wantErr: "radius must be greater than 0"},
		{name: "hour out of range", input: sample{Platform: "android", Hour: &late}, wantErr: "hour must be at most 23"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
