package validation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ValidateConvertFields Tests
// =============================================================================

func TestValidateConvertFields_AllValid(t *testing.T) {
	field, msg := ValidateConvertFields("10", "kWh", "J")
	assert.Empty(t, field)
	assert.Empty(t, msg)
}

func TestValidateConvertFields_MissingValue(t *testing.T) {
	field, msg := ValidateConvertFields("  ", "kWh", "J")
	assert.Equal(t, "value", field)
	assert.Equal(t, "value is required", msg)
}

func TestValidateConvertFields_MissingFrom(t *testing.T) {
	field, msg := ValidateConvertFields("1", "", "J")
	assert.Equal(t, "from", field)
	assert.Equal(t, "from is required", msg)
}

func TestValidateConvertFields_MissingTo(t *testing.T) {
	field, msg := ValidateConvertFields("1", "kWh", "")
	assert.Equal(t, "to", field)
	assert.Equal(t, "to is required", msg)
}

func TestValidateConvertFields_ChecksInOrder(t *testing.T) {
	field, _ := ValidateConvertFields("", "", "")
	assert.Equal(t, "value", field, "should check value first")

	field, _ = ValidateConvertFields("1", "", "")
	assert.Equal(t, "from", field, "should check from before to")
}

func TestValidateUnitFields(t *testing.T) {
	field, msg := ValidateUnitFields("kWh", "J")
	assert.Empty(t, field)
	assert.Empty(t, msg)

	field, msg = ValidateUnitFields("", "J")
	assert.Equal(t, "from", field)
	assert.Equal(t, "from is required", msg)

	field, _ = ValidateUnitFields("kWh", "")
	assert.Equal(t, "to", field)
}

// =============================================================================
// ParseValue Tests
// =============================================================================

func TestParseValue(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr error
	}{
		{name: "integer", in: "10", want: 10},
		{name: "decimal", in: "2.5", want: 2.5},
		{name: "negative", in: "-1", want: -1},
		{name: "exponent", in: "1e-10", want: 1e-10},
		{name: "whitespace", in: " 42 ", want: 42},
		{name: "zero", in: "0", want: 0},
		{name: "letters", in: "ten", wantErr: ErrInvalidValue},
		{name: "empty", in: "", wantErr: ErrInvalidValue},
		{name: "unit suffix", in: "10kWh", wantErr: ErrInvalidValue},
		{name: "NaN", in: "NaN", wantErr: ErrNonFiniteValue},
		{name: "infinity", in: "Inf", wantErr: ErrNonFiniteValue},
		{name: "negative infinity", in: "-Inf", wantErr: ErrNonFiniteValue},
		{name: "overflow", in: "1e400", wantErr: ErrNonFiniteValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsFiniteResult(t *testing.T) {
	assert.True(t, IsFiniteResult(0))
	assert.True(t, IsFiniteResult(-1e308))
	assert.False(t, IsFiniteResult(math.Inf(1)))
	assert.False(t, IsFiniteResult(math.Inf(-1)))
	assert.False(t, IsFiniteResult(math.NaN()))
}
