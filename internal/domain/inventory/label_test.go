//go:build unit

package inventory_test

import (
	"testing"

	"phantom-mask/internal/domain/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLabel(t *testing.T) {
	tests := []struct {
		in      string
		want    inventory.Key
		wantErr bool
	}{
		{in: "True Barrier (green) (3 per pack)", want: inventory.Key{Name: "True Barrier", Color: "green", CountPerPack: 3}},
		{in: "MaskT (black) (10 per pack)", want: inventory.Key{Name: "MaskT", Color: "black", CountPerPack: 10}},
		{in: "Second Smile (light blue)  (6  per  pack)", want: inventory.Key{Name: "Second Smile", Color: "light blue", CountPerPack: 6}},
		{in: "MaskT (black)", wantErr: true},
		{in: "MaskT (black) (0 per pack)", wantErr: true},
		{in: "MaskT (black) (ten per pack)", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := inventory.ParseLabel(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, inventory.ErrInvalidLabel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyLabelRoundTrip(t *testing.T) {
	key := inventory.Key{Name: "Masquerade", Color: "blue", CountPerPack: 6}

	got, err := inventory.ParseLabel(key.Label())

	require.NoError(t, err)
	assert.Equal(t, key, got)
}
