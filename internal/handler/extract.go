// Package handler contains the gin handlers for the media-extractor HTTP
// surface.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/media-extractor/internal/domain"
	"github.com/jonesrussell/media-extractor/internal/logger"
	"github.com/jonesrussell/media-extractor/internal/service"
)

// MetadataExtractor is the orchestrator seam consumed by the handler.
type MetadataExtractor interface {
	Extract(ctx context.Context, req service.Request) (*domain.VideoMetadata, error)
}

// ExtractHandler serves GET /extract-metadata/.
type ExtractHandler struct {
	extractor MetadataExtractor
	logger    logger.Logger
}

// NewExtractHandler creates an ExtractHandler.
func NewExtractHandler(extractor MetadataExtractor, log logger.Logger) *ExtractHandler {
	return &ExtractHandler{extractor: extractor, logger: log}
}

// extractQuery mirrors the query parameters of the extraction endpoint.
// The platform parameter is optional; without it the platform is inferred
// from the video URL.
type extractQuery struct {
	Platform       string `form:"platform"`
	VideoURL       string `form:"video_url" binding:"required"`
	NoWatermark    bool   `form:"no_watermark"`
	RefreshCookies bool   `form:"refresh_cookies"`
}

// HandleExtract validates the query, runs the extraction pipeline, and
// writes the normalized metadata or a taxonomy-mapped error.
func (h *ExtractHandler) HandleExtract(c *gin.Context) {
	var q extractQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "video_url query parameter is required"})
		return
	}

	platform := domain.ParsePlatform(q.Platform)
	if q.Platform == "" {
		platform = domain.DetectPlatform(q.VideoURL)
	}

	meta, err := h.extractor.Extract(c.Request.Context(), service.Request{
		Platform:       platform,
		VideoURL:       q.VideoURL,
		NoWatermark:    q.NoWatermark,
		RefreshCookies: q.RefreshCookies,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, meta)
}

// respondError maps the service error taxonomy onto HTTP statuses:
// credential failures are server-side (500, fixed message), extraction
// failures are client-visible (400, engine message interpolated).
func (h *ExtractHandler) respondError(c *gin.Context, err error) {
	var credErr *service.CredentialError
	if errors.As(err, &credErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cookie generation failed"})
		return
	}

	var extErr *service.ExtractionError
	if errors.As(err, &extErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error processing video: " + extErr.Error()})
		return
	}

	h.logger.Error("Unclassified extraction failure", logger.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
