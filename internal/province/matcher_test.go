package province

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercase with spaces",
			input:    "  dki jakarta ",
			expected: "DKI JAKARTA",
		},
		{
			name:     "collapse whitespace runs",
			input:    "Sumatera\t  Utara",
			expected: "SUMATERA UTARA",
		},
		{
			name:     "strip periods",
			input:    "D.I. Yogyakarta",
			expected: "DI YOGYAKARTA",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		wantID string
		wantOK bool
	}{
		{
			name:   "exact display name",
			input:  "DKI Jakarta",
			wantID: "dki-jakarta",
			wantOK: true,
		},
		{
			name:   "case and whitespace insensitive",
			input:  "  dki   JAKARTA ",
			wantID: "dki-jakarta",
			wantOK: true,
		},
		{
			name:   "alias match",
			input:  "NAD",
			wantID: "aceh",
			wantOK: true,
		},
		{
			name:   "dotted alias",
			input:  "D.I. Yogyakarta",
			wantID: "di-yogyakarta",
			wantOK: true,
		},
		{
			name:   "substring containment input contains name",
			input:  "Provinsi Gorontalo",
			wantID: "gorontalo",
			wantOK: true,
		},
		{
			name:   "exact beats substring for Riau",
			input:  "Riau",
			wantID: "riau",
			wantOK: true,
		},
		{
			name:   "kepulauan riau stays distinct",
			input:  "Kepulauan Riau",
			wantID: "kepulauan-riau",
			wantOK: true,
		},
		{
			name:   "unknown name",
			input:  "Atlantis",
			wantOK: false,
		},
		{
			name:   "empty input",
			input:  "   ",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, ok := Resolve(tt.input)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantID, rec.ID)
			}
		})
	}
}

// Resolve must be a fixed point under its own normalization.
func TestResolveIdempotentUnderNormalize(t *testing.T) {
	t.Parallel()

	inputs := []string{"dki jakarta", "  NAD ", "D.I. Yogyakarta", "Provinsi   Bali", "nope"}
	for _, in := range inputs {
		direct, okDirect := Resolve(in)
		normed, okNormed := Resolve(Normalize(in))
		require.Equal(t, okDirect, okNormed, "input %q", in)
		if okDirect {
			assert.Equal(t, direct.ID, normed.ID, "input %q", in)
		}
	}
}

// An exact alias hit must outrank any substring relationship.
func TestResolveAliasOutranksSubstring(t *testing.T) {
	t.Parallel()

	// "BANGKA BELITUNG" is an alias of bangka-belitung and also a
	// substring of the display name "Kepulauan Bangka Belitung"; the
	// alias tier must answer before containment is ever consulted.
	rec, ok := Resolve("Bangka Belitung")
	require.True(t, ok)
	assert.Equal(t, "bangka-belitung", rec.ID)
}
