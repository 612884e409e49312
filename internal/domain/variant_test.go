package domain

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantMapResolve(t *testing.T) {
	variants := NewVariantMap(map[string]map[string]string{
		"P1": {"Black-M": "V123", "Black-L": "V124"},
		"P2": {"S/M": "V200"},
	})

	tests := []struct {
		name      string
		productID string
		size      string
		color     string
		want      string
		wantErr   bool
	}{
		{
			name:      "resolves color and size composite key",
			productID: "P1",
			size:      "M",
			color:     "Black",
			want:      "V123",
		},
		{
			name:      "resolves size-only key when color is absent",
			productID: "P2",
			size:      "S/M",
			want:      "V200",
		},
		{
			name:      "fails when color is omitted for a colored product",
			productID: "P1",
			size:      "M",
			wantErr:   true,
		},
		{
			name:      "fails for unknown product",
			productID: "P9",
			size:      "M",
			color:     "Black",
			wantErr:   true,
		},
		{
			name:      "fails for unknown size under a known product",
			productID: "P1",
			size:      "XS",
			color:     "Black",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := variants.Resolve(tt.productID, tt.size, tt.color)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrVariantNotFound))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadVariantMap(t *testing.T) {
	t.Run("loads mapping from file", func(t *testing.T) {
		path := t.TempDir() + "/variants.json"
		err := os.WriteFile(path, []byte(`{"P1": {"Black-M": "V123"}}`), 0o644)
		require.NoError(t, err)

		variants, err := LoadVariantMap(path)
		require.NoError(t, err)

		got, err := variants.Resolve("P1", "M", "Black")
		require.NoError(t, err)
		assert.Equal(t, "V123", got)
	})

	t.Run("fails on missing file", func(t *testing.T) {
		_, err := LoadVariantMap("does-not-exist.json")
		assert.Error(t, err)
	})

	t.Run("fails on malformed JSON", func(t *testing.T) {
		path := t.TempDir() + "/variants.json"
		err := os.WriteFile(path, []byte(`not-json`), 0o644)
		require.NoError(t, err)

		_, err = LoadVariantMap(path)
		assert.Error(t, err)
	})
}
