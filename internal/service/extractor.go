// Package service orchestrates one metadata extraction request: credential
// refresh policy, engine invocation, and normalization of the raw catalog.
package service

import (
	"context"
	"time"

	"github.com/jonesrussell/media-extractor/internal/credentials"
	"github.com/jonesrussell/media-extractor/internal/domain"
	"github.com/jonesrussell/media-extractor/internal/format"
	"github.com/jonesrussell/media-extractor/internal/logger"
	"github.com/jonesrussell/media-extractor/internal/telemetry"
	"github.com/jonesrussell/media-extractor/internal/ytdlp"
)

// Engine is the extraction-engine seam. It is treated as a blocking,
// potentially slow collaborator; any error it returns maps to an
// ExtractionError.
type Engine interface {
	Extract(ctx context.Context, url string, opts ytdlp.Options) (*ytdlp.RawInfo, error)
}

// Acquirer is the credential-acquisition seam. It must replace the
// platform's cookie artifact atomically or report failure.
type Acquirer interface {
	Acquire(ctx context.Context, platform domain.Platform, seedURL string) error
}

// Request is one incoming extraction request after HTTP-layer validation.
type Request struct {
	Platform       domain.Platform
	VideoURL       string
	NoWatermark    bool
	RefreshCookies bool
}

// Extractor coordinates credentials, the extraction engine, and the format
// pipeline. It holds no per-request state; concurrent requests share only
// the credential store.
type Extractor struct {
	engine    Engine
	acquirer  Acquirer
	store     *credentials.Store
	userAgent string
	metrics   *telemetry.Metrics
	logger    logger.Logger
}

// NewExtractor creates an Extractor with the given collaborators.
// Metrics may be nil.
func NewExtractor(
	engine Engine,
	acquirer Acquirer,
	store *credentials.Store,
	userAgent string,
	metrics *telemetry.Metrics,
	log logger.Logger,
) *Extractor {
	return &Extractor{
		engine:    engine,
		acquirer:  acquirer,
		store:     store,
		userAgent: userAgent,
		metrics:   metrics,
		logger:    log,
	}
}

// Extract runs the full per-request pipeline and returns the normalized
// metadata. Failures are typed per the service error taxonomy.
func (e *Extractor) Extract(ctx context.Context, req Request) (*domain.VideoMetadata, error) {
	start := time.Now()

	if err := e.ensureCredentials(ctx, req); err != nil {
		e.metrics.RecordExtraction(req.Platform.String(), telemetry.OutcomeCredentialError, time.Since(start), 0)
		return nil, err
	}

	info, err := e.engine.Extract(ctx, req.VideoURL, e.buildOptions(req))
	if err != nil {
		e.metrics.RecordExtraction(req.Platform.String(), telemetry.OutcomeExtractionError, time.Since(start), 0)
		e.logger.Warn("Extraction engine failed",
			logger.String("video_url", req.VideoURL),
			logger.Error(err),
		)
		return nil, &ExtractionError{Err: err}
	}

	meta := format.Assemble(info)
	e.metrics.RecordExtraction(req.Platform.String(), telemetry.OutcomeSuccess, time.Since(start), len(meta.Formats))

	e.logger.Info("Metadata extracted",
		logger.String("platform", meta.Platform),
		logger.Int("formats", len(meta.Formats)),
		logger.Duration("elapsed", time.Since(start)),
	)
	return &meta, nil
}

// ensureCredentials applies the refresh policy: platforms on the credential
// allow-list get a synchronous acquisition when the caller forced a refresh
// or no artifact exists yet. Acquisition failure aborts the request before
// the engine is invoked; there is no unauthenticated fallback.
func (e *Extractor) ensureCredentials(ctx context.Context, req Request) error {
	if !req.Platform.RequiresCredentials() {
		return nil
	}
	if !req.RefreshCookies && e.store.Exists(req.Platform) {
		return nil
	}

	if err := e.acquirer.Acquire(ctx, req.Platform, req.VideoURL); err != nil {
		e.metrics.RecordCredentialRefresh(req.Platform.String(), false)
		e.logger.Error("Credential acquisition failed",
			logger.String("platform", req.Platform.String()),
			logger.Error(err),
		)
		return &CredentialError{Platform: req.Platform, Err: err}
	}

	e.metrics.RecordCredentialRefresh(req.Platform.String(), true)
	return nil
}

// buildOptions constructs the engine invocation options. The cookie file and
// the watermark pass-through are attached only when the target URL itself
// matches a credential domain.
func (e *Extractor) buildOptions(req Request) ytdlp.Options {
	opts := ytdlp.Options{
		Quiet:      true,
		NoWarnings: true,
		ForceURL:   true,
		UserAgent:  e.userAgent,
	}

	if p := domain.DetectPlatform(req.VideoURL); p.RequiresCredentials() {
		opts.CookieFile = e.store.Path(p)
		opts.NoWatermark = req.NoWatermark
	}
	return opts
}
