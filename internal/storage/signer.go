// Package storage produces time-limited upload and download URLs for photo
// objects in an S3-compatible bucket. When no bucket is configured the
// signer degrades to deterministic pseudo-signed URLs so local development
// and tests work without cloud credentials.
package storage

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultSignTTL bounds how long a signed URL stays valid
const DefaultSignTTL = 15 * time.Minute

// SignedPut carries a presigned upload URL plus the public URL the object
// will have after upload.
type SignedPut struct {
	UploadURL string `json:"uploadUrl"`
	PhotoURL  string `json:"photoUrl"`
	ExpiresIn int    `json:"expiresIn"`
	Key       string `json:"key"`
}

// SignedGet carries a presigned download URL.
type SignedGet struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expiresIn"`
	Key       string `json:"key"`
}

// Signer issues presigned URLs for object keys.
type Signer interface {
	SignPutURL(ctx context.Context, key, contentType string) (*SignedPut, error)
	SignGetURL(ctx context.Context, key string) (*SignedGet, error)
	// BaseURL is the public prefix under which uploaded objects live.
	BaseURL() string
}

// ContentTypeFromFilename guesses an image content type from the filename
// extension; empty when unknown.
func ContentTypeFromFilename(filename string) string {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		return "image/jpeg"
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	case strings.HasSuffix(lower, ".webp"):
		return "image/webp"
	}
	return ""
}

// KeyFromURL recovers the object key of a photo URL issued by this signer;
// empty when the URL lives outside the signer's base.
func KeyFromURL(photoURL, baseURL string) string {
	prefix := strings.TrimRight(baseURL, "/") + "/"
	if !strings.HasPrefix(photoURL, prefix) {
		return ""
	}
	key := strings.TrimPrefix(photoURL, prefix)
	if i := strings.IndexByte(key, '?'); i >= 0 {
		key = key[:i]
	}
	return key
}

// Local is the unconfigured fallback signer. URLs carry a random signature
// query parameter but point at a fake base; uploads against them are
// expected to be intercepted (tests) or to fail loudly (misconfiguration).
type Local struct {
	baseURL string
	ttl     time.Duration
}

// NewLocal creates a fallback signer. An empty baseURL gets a placeholder.
func NewLocal(baseURL string, ttl time.Duration) *Local {
	if baseURL == "" {
		baseURL = "https://example-bucket.s3.local"
	}
	if ttl <= 0 {
		ttl = DefaultSignTTL
	}
	return &Local{baseURL: strings.TrimRight(baseURL, "/"), ttl: ttl}
}

func (l *Local) BaseURL() string { return l.baseURL }

func (l *Local) SignPutURL(ctx context.Context, key, contentType string) (*SignedPut, error) {
	signature := strings.ReplaceAll(uuid.NewString(), "-", "")
	expires := int(l.ttl.Seconds())
	return &SignedPut{
		UploadURL: l.baseURL + "/" + key + "?signature=" + signature + "&expires=" + strconv.Itoa(expires),
		PhotoURL:  l.baseURL + "/" + key,
		ExpiresIn: expires,
		Key:       key,
	}, nil
}

func (l *Local) SignGetURL(ctx context.Context, key string) (*SignedGet, error) {
	signature := strings.ReplaceAll(uuid.NewString(), "-", "")
	expires := int(l.ttl.Seconds())
	return &SignedGet{
		URL:       l.baseURL + "/" + key + "?signature=" + signature + "&expires=" + strconv.Itoa(expires),
		ExpiresIn: expires,
		Key:       key,
	}, nil
}
