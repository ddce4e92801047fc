package validator

import (
	"testing"

	domainerrors "pharmaduty/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Score   int     `json:"score" validate:"min=1,max=5"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Action  string  `json:"action" validate:"required,oneof=approve reject"`
	Comment string  `validate:"max=3"`
}

func TestCustomValidator_Validate(t *testing.T) {
	t.Parallel()

	badEmail := "not-an-email"

	tests := []struct {
		name   string
		input  sample
		fields map[string]string
	}{
		{
			name:  "valid",
			input: sample{Score: 3, Action: "approve"},
		},
		{
			name:  "every rule broken",
			input: sample{Score: 9, Email: &badEmail, Comment: "toolong"},
			fields: map[string]string{
				"score":   "must be at most 5",
				"email":   "must be a valid email address",
				"action":  "required",
				"Comment": "must be at most 3",
			},
		},
		{
			name:   "unknown action",
			input:  sample{Score: 1, Action: "archive"},
			fields: map[string]string{"action": "must be one of approve reject"},
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Validate(&tt.input)
			if tt.fields == nil {
				require.NoError(t, err)

				return
			}

			var validationErr *domainerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			got := make(map[string]string, len(validationErr.Fields))
			for _, f := range validationErr.Fields {
				got[f.Field] = f.Reason
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}
