package errors

import "testing"

func TestValidateSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       bool
	}{
		{"one dot", 1, 1, false},
		{"typical", 80, 40, false},

		{"zero width", 0, 4, true},
		{"zero height", 2, 0, true},
		{"negative", -2, 4, true},
		{"side at limit", MaxDimension, 2, false},
		{"side too long", MaxDimension + 1, 2, true},
		{"too many dots", MaxDimension, MaxDimension, true},
		{"product overflows", 1 << 32, 1 << 32, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSize(tt.width, tt.height)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSize(%d, %d) error = %v, wantErr %v", tt.width, tt.height, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidInput {
				t.Errorf("ValidateSize(%d, %d) code = %q, want %q", tt.width, tt.height, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateRGB(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		wantErr bool
	}{
		{"black", 0, 0, 0, false},
		{"white", 255, 255, 255, false},
		{"mixed", 0, 128, 255, false},

		{"red too high", 256, 0, 0, true},
		{"green negative", 0, -1, 0, true},
		{"blue too high", 0, 0, 300, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRGB(tt.r, tt.g, tt.b)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRGB(%d, %d, %d) error = %v, wantErr %v", tt.r, tt.g, tt.b, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidColor) {
				t.Errorf("ValidateRGB(%d, %d, %d) returned wrong error code: %v", tt.r, tt.g, tt.b, err)
			}
		})
	}
}

func TestValidateCoordinates(t *testing.T) {
	if err := ValidateCoordinates([]int{1, 2}, []int{3, 4}); err != nil {
		t.Errorf("equal lengths: unexpected error %v", err)
	}
	if err := ValidateCoordinates([]int{1, 2}, []int{3}); !Is(err, ErrCodeInvalidInput) {
		t.Errorf("unequal lengths: error = %v, want %s", err, ErrCodeInvalidInput)
	}
}
