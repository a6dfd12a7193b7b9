package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schnuffelll/shop-backend/pkg/e"
)

func TestGetExtensionFromMIME(t *testing.T) {
	tests := []struct {
		mime string
		want string
	}{
		{"image/jpeg", "jpg"},
		{"image/jpg", "jpg"},
		{"image/png", "png"},
		{"image/gif", "gif"},
		{"image/webp", "webp"},
	}

	for _, tt := range tests {
		ext, err := GetExtensionFromMIME(tt.mime)
		require.NoError(t, err, tt.mime)
		assert.Equal(t, tt.want, ext)
	}
}

func TestGetExtensionFromMIME_Unsupported(t *testing.T) {
	_, err := GetExtensionFromMIME("application/pdf")

	assert.ErrorIs(t, err, e.ErrUnsupportedMedia)
}
