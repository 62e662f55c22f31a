package lenstype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalText(t *testing.T) {
	tests := []struct {
		text string
		want Type
	}{
		{"converging", Converging},
		{"diverging", Diverging},
		{"achromatic", Achromatic},
		{"fresnel", Fresnel},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := UnmarshalText(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.text, got.String())
		})
	}
}

func TestUnmarshalText_Invalid(t *testing.T) {
	for _, text := range []string{"", "Converging", "concave"} {
		_, err := UnmarshalText(text)
		assert.Error(t, err, "text = %q", text)
	}
}
