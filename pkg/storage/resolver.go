package storage

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// SignedURLTTL is how long a signed attachment URL stays valid.
	SignedURLTTL = 1800 * time.Second

	// cacheTTL keeps cached URLs safely shorter lived than their signature.
	cacheTTL = 1500 * time.Second

	cacheKeyPrefix = "attachment:signed:"
)

// Attachment kinds. PDFs open as links, everything else renders inline.
const (
	KindLink  = "link"
	KindImage = "image"
)

// Resolution outcomes, recorded for observability.
const (
	OutcomeSigned      = "signed"
	OutcomeCached      = "cached"
	OutcomeOriginal    = "original_url"
	OutcomePublic      = "public_url"
	OutcomeUnavailable = "unavailable"
)

// Recorder receives one record per resolution. Implementations must not
// block; the resolver calls it fire-and-forget.
type Recorder interface {
	AttachmentResolved(ctx context.Context, path, kind, outcome string, took time.Duration)
}

// Resolution is the outcome of resolving one stored attachment reference.
type Resolution struct {
	Kind      string
	URL       string
	Available bool
	Outcome   string
}

// Resolver turns stored attachment references into viewable URLs. References
// come in three shapes: full URLs minted by the legacy frontend
// (.../public/documentos/<path> or .../documentos/<path>) and bare object
// paths. All three normalize to the object path inside the bucket.
type Resolver struct {
	driver   Driver
	rdb      *redis.Client
	recorder Recorder
}

func NewResolver(driver Driver, rdb *redis.Client, recorder Recorder) *Resolver {
	return &Resolver{
		driver:   driver,
		rdb:      rdb,
		recorder: recorder,
	}
}

// NormalizePath extracts the object path from a stored reference.
func NormalizePath(ref string) string {
	if idx := strings.Index(ref, "/public/documentos/"); idx >= 0 {
		return ref[idx+len("/public/documentos/"):]
	}
	if idx := strings.Index(ref, "/documentos/"); idx >= 0 {
		return ref[idx+len("/documentos/"):]
	}
	return strings.TrimPrefix(ref, "/")
}

// Classify reports how an attachment should render. Only the extension
// matters: PDFs become links, everything else an inline image.
func Classify(path string) string {
	if strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return KindLink
	}
	return KindImage
}

// Resolve produces a viewable URL for a stored reference. Signing failures
// degrade, never error: first the original absolute URL as stored, then the
// public bucket URL, then unavailable.
func (r *Resolver) Resolve(ctx context.Context, ref string) Resolution {
	start := time.Now()
	path := NormalizePath(ref)
	kind := Classify(path)

	res := r.resolve(ctx, ref, path, kind)
	if r.recorder != nil {
		r.recorder.AttachmentResolved(ctx, path, kind, res.Outcome, time.Since(start))
	}
	return res
}

func (r *Resolver) resolve(ctx context.Context, ref, path, kind string) Resolution {
	if path == "" {
		return Resolution{Kind: kind, Outcome: OutcomeUnavailable}
	}

	if r.rdb != nil {
		if cached, err := r.rdb.Get(ctx, cacheKeyPrefix+path).Result(); err == nil && cached != "" {
			return Resolution{Kind: kind, URL: cached, Available: true, Outcome: OutcomeCached}
		}
	}

	signed, err := r.driver.CreateSignedURL(ctx, path, SignedURLTTL)
	if err == nil && signed != "" {
		if r.rdb != nil {
			r.rdb.Set(ctx, cacheKeyPrefix+path, signed, cacheTTL)
		}
		return Resolution{Kind: kind, URL: signed, Available: true, Outcome: OutcomeSigned}
	}

	// Signing failed. An absolute stored reference may still work as-is.
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return Resolution{Kind: kind, URL: ref, Available: true, Outcome: OutcomeOriginal}
	}

	if public := r.driver.PublicURL(path); public != "" {
		return Resolution{Kind: kind, URL: public, Available: true, Outcome: OutcomePublic}
	}

	return Resolution{Kind: kind, Outcome: OutcomeUnavailable}
}
