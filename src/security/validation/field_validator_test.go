package validation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain integer", "100", "100", false},
		{"decimal places", "99.95", "99.95", false},
		{"surrounding spaces", "  42.50  ", "42.5", false},
		{"zero rejected", "0", "", true},
		{"negative rejected", "-10", "", true},
		{"empty rejected", "   ", "", true},
		{"not a number", "ten dollars", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAmount(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidationFailed)
				return
			}
			require.NoError(t, err)
			want, _ := decimal.NewFromString(tc.want)
			assert.True(t, got.Equal(want), "got %s want %s", got, want)
		})
	}
}

func TestValidateGoalName(t *testing.T) {
	assert.NoError(t, ValidateGoalName("Viaje a España"))
	assert.NoError(t, ValidateGoalName("Laptop 2026"))

	assert.Error(t, ValidateGoalName(""))
	assert.Error(t, ValidateGoalName("   "))
	assert.Error(t, ValidateGoalName("<b>bold</b>"))

	tooLong := ""
	for i := 0; i < 51; i++ {
		tooLong += "a"
	}
	assert.Error(t, ValidateGoalName(tooLong))
}

func TestValidateDeadline(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	assert.NoError(t, ValidateDeadline(now.AddDate(0, 1, 0), now))
	assert.Error(t, ValidateDeadline(now.AddDate(0, 0, -1), now))
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "hello", SanitizeText("<script>alert(1)</script>hello"))
	assert.Equal(t, "coffee", SanitizeText("  coffee  "))
}

func TestStripUnprintable(t *testing.T) {
	assert.Equal(t, "abc", StripUnprintable("a\x00b\x1bc"))
	assert.Equal(t, "tab\tkept", StripUnprintable("tab\tkept"))
}
