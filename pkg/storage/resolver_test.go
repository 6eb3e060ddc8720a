package storage

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeDriver struct {
	signErr   error
	signedURL string
	publicURL string
	lastPath  string
	lastTTL   time.Duration
}

func (f *fakeDriver) Upload(ctx context.Context, file io.Reader, path, contentType string) (string, error) {
	return path, nil
}

func (f *fakeDriver) Delete(ctx context.Context, path string) error { return nil }

func (f *fakeDriver) CreateSignedURL(ctx context.Context, path string, ttl time.Duration) (string, error) {
	f.lastPath = path
	f.lastTTL = ttl
	if f.signErr != nil {
		return "", f.signErr
	}
	return f.signedURL, nil
}

func (f *fakeDriver) PublicURL(path string) string {
	if f.publicURL == "" {
		return ""
	}
	return f.publicURL + "/" + path
}

func (f *fakeDriver) Exists(ctx context.Context, path string) (bool, error) { return true, nil }

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"https://host/storage/v1/object/public/documentos/u1/doc.pdf": "u1/doc.pdf",
		"https://host/storage/v1/object/documentos/u1/selfie.jpg":     "u1/selfie.jpg",
		"u1/comprovante.png":  "u1/comprovante.png",
		"/u1/comprovante.png": "u1/comprovante.png",
	}
	for ref, want := range cases {
		assert.Equal(t, want, NormalizePath(ref), ref)
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, KindLink, Classify("u1/doc.pdf"))
	assert.Equal(t, KindLink, Classify("u1/DOC.PDF"))
	assert.Equal(t, KindImage, Classify("u1/selfie.jpg"))
	assert.Equal(t, KindImage, Classify("u1/selfie.webp"))
	assert.Equal(t, KindImage, Classify("u1/noextension"))
}

func TestResolveSigned(t *testing.T) {
	driver := &fakeDriver{signedURL: "https://signed.example/u1/doc.pdf?sig=abc"}
	resolver := NewResolver(driver, nil, nil)

	res := resolver.Resolve(context.Background(), "https://host/object/public/documentos/u1/doc.pdf")

	assert.True(t, res.Available)
	assert.Equal(t, KindLink, res.Kind)
	assert.Equal(t, driver.signedURL, res.URL)
	assert.Equal(t, OutcomeSigned, res.Outcome)
	assert.Equal(t, "u1/doc.pdf", driver.lastPath)
	assert.Equal(t, SignedURLTTL, driver.lastTTL)
}

func TestResolveFallbackToOriginalURL(t *testing.T) {
	driver := &fakeDriver{signErr: fmt.Errorf("sign failed"), publicURL: "https://bucket.example"}
	resolver := NewResolver(driver, nil, nil)

	ref := "https://host/object/public/documentos/u1/selfie.jpg"
	res := resolver.Resolve(context.Background(), ref)

	assert.True(t, res.Available)
	assert.Equal(t, KindImage, res.Kind)
	assert.Equal(t, ref, res.URL)
	assert.Equal(t, OutcomeOriginal, res.Outcome)
}

func TestResolveFallbackToPublicURL(t *testing.T) {
	driver := &fakeDriver{signErr: fmt.Errorf("sign failed"), publicURL: "https://bucket.example"}
	resolver := NewResolver(driver, nil, nil)

	res := resolver.Resolve(context.Background(), "u1/selfie.jpg")

	assert.True(t, res.Available)
	assert.Equal(t, "https://bucket.example/u1/selfie.jpg", res.URL)
	assert.Equal(t, OutcomePublic, res.Outcome)
}

func TestResolveUnavailable(t *testing.T) {
	driver := &fakeDriver{signErr: fmt.Errorf("sign failed")}
	resolver := NewResolver(driver, nil, nil)

	res := resolver.Resolve(context.Background(), "u1/selfie.jpg")

	assert.False(t, res.Available)
	assert.Empty(t, res.URL)
	assert.Equal(t, OutcomeUnavailable, res.Outcome)
}

type fakeRecorder struct {
	path    string
	kind    string
	outcome string
	calls   int
}

func (f *fakeRecorder) AttachmentResolved(ctx context.Context, path, kind, outcome string, took time.Duration) {
	f.path, f.kind, f.outcome = path, kind, outcome
	f.calls++
}

func TestResolveRecordsObservability(t *testing.T) {
	driver := &fakeDriver{signedURL: "https://signed.example/x"}
	recorder := &fakeRecorder{}
	resolver := NewResolver(driver, nil, recorder)

	resolver.Resolve(context.Background(), "https://host/public/documentos/u1/doc.pdf")

	assert.Equal(t, 1, recorder.calls)
	assert.Equal(t, "u1/doc.pdf", recorder.path)
	assert.Equal(t, KindLink, recorder.kind)
	assert.Equal(t, OutcomeSigned, recorder.outcome)
}
