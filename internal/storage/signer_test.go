package storage_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ADVENTURA_BACK-END/internal/storage"
)

func TestLocalSigner_SignPutURL(t *testing.T) {
	signer := storage.NewLocal("https://cdn.adventura.app/uploads", 10*time.Minute)

	signed, err := signer.SignPutURL(context.Background(), "adventures/abc/sunset.jpg", "image/jpeg")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(signed.UploadURL, "https://cdn.adventura.app/uploads/adventures/abc/sunset.jpg?"))
	assert.Contains(t, signed.UploadURL, "signature=")
	assert.Equal(t, "https://cdn.adventura.app/uploads/adventures/abc/sunset.jpg", signed.PhotoURL)
	assert.Equal(t, int((10 * time.Minute).Seconds()), signed.ExpiresIn)
	assert.Equal(t, "adventures/abc/sunset.jpg", signed.Key)
}

func TestLocalSigner_SignGetURL(t *testing.T) {
	signer := storage.NewLocal("", 0)

	signed, err := signer.SignGetURL(context.Background(), "adventures/abc/sunset.jpg")
	require.NoError(t, err)
	assert.Contains(t, signed.URL, "adventures/abc/sunset.jpg?")
	assert.Equal(t, int(storage.DefaultSignTTL.Seconds()), signed.ExpiresIn)
}

func TestKeyFromURL(t *testing.T) {
	base := "https://cdn.adventura.app/uploads"

	assert.Equal(t, "adventures/abc/sunset.jpg",
		storage.KeyFromURL("https://cdn.adventura.app/uploads/adventures/abc/sunset.jpg", base))
	assert.Equal(t, "adventures/abc/sunset.jpg",
		storage.KeyFromURL("https://cdn.adventura.app/uploads/adventures/abc/sunset.jpg?signature=x", base))
	assert.Empty(t, storage.KeyFromURL("https://elsewhere.example.com/a.jpg", base),
		"foreign URLs resolve to no key")
}

func TestContentTypeFromFilename(t *testing.T) {
	assert.Equal(t, "image/jpeg", storage.ContentTypeFromFilename("Sunset.JPG"))
	assert.Equal(t, "image/jpeg", storage.ContentTypeFromFilename("a.jpeg"))
	assert.Equal(t, "image/png", storage.ContentTypeFromFilename("a.png"))
	assert.Equal(t, "image/webp", storage.ContentTypeFromFilename("a.webp"))
	assert.Empty(t, storage.ContentTypeFromFilename("notes.txt"))
}
