//go:build !integration

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveProvinceArg(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		arg  string
		want string
		ok   bool
	}{
		{"by id", "dki-jakarta", "dki-jakarta", true},
		{"by display name", "DKI Jakarta", "dki-jakarta", true},
		{"by alias", "DIY", "di-yogyakarta", true},
		{"case insensitive", "jawa barat", "jawa-barat", true},
		{"unknown", "Atlantis", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec, ok := resolveProvinceArg(tt.arg)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, rec.ID)
			}
		})
	}
}
