package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name      string `validate:"required,max=5"`
	Status    string `validate:"omitempty,status"`
	Furniture string `validate:"omitempty,furniture"`
	Amount    string `validate:"required,money"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		input   sample
		wantErr string
	}{
		{
			name:  "Valid",
			input: sample{Name: "Anna", Status: "Contract/Deposit", Furniture: "Kitchen", Amount: "10.50"},
		},
		{
			name:  "Optional tags skipped when empty",
			input: sample{Name: "Anna", Amount: "1"},
		},
		{
			name:    "Missing required",
			input:   sample{Amount: "1"},
			wantErr: "Name is required",
		},
		{
			name:    "Too long",
			input:   sample{Name: "Alexander", Amount: "1"},
			wantErr: "Name must be at most 5 characters",
		},
		{
			name:    "Unknown status",
			input:   sample{Name: "Anna", Status: "Shipped", Amount: "1"},
			wantErr: "Status must be a known order status",
		},
		{
			name:    "Unknown furniture",
			input:   sample{Name: "Anna", Furniture: "Sofa", Amount: "1"},
			wantErr: "Furniture must be a known furniture type",
		},
		{
			name:    "Bad amount",
			input:   sample{Name: "Anna", Amount: "ten"},
			wantErr: "Amount must be a decimal amount",
		},
		{
			name:    "Amount beyond storable range",
			input:   sample{Name: "Anna", Amount: "1e20"},
			wantErr: "Amount must be a decimal amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestStructJoinsMessages(t *testing.T) {
	err := Struct(sample{Status: "x", Amount: "y"})
	assert.EqualError(t, err, "Name is required; Status must be a known order status; Amount must be a decimal amount")
}

func TestValidatorIsShared(t *testing.T) {
	assert.Same(t, Validator(), Validator())
}
