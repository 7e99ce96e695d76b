package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/media-extractor/internal/domain"
	"github.com/jonesrussell/media-extractor/internal/handler"
	"github.com/jonesrussell/media-extractor/internal/logger"
	"github.com/jonesrussell/media-extractor/internal/service"
)

type stubExtractor struct {
	meta    *domain.VideoMetadata
	err     error
	lastReq service.Request
}

func (s *stubExtractor) Extract(_ context.Context, req service.Request) (*domain.VideoMetadata, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.meta, nil
}

func setupRouter(t *testing.T, ex *stubExtractor) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewExtractHandler(ex, logger.NewNop())
	r.GET("/extract-metadata/", h.HandleExtract)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, target string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	r.ServeHTTP(w, req)
	return w
}

func TestHandleExtract_Success(t *testing.T) {
	dur := 212.0
	ex := &stubExtractor{meta: &domain.VideoMetadata{
		Platform: "Youtube",
		Title:    "Test Video",
		Duration: &dur,
		Formats: []domain.MediaFormat{
			{FormatID: "22", Resolution: "720p", HasAudio: true, HasVideo: true, Ext: "mp4"},
		},
	}}
	r := setupRouter(t, ex)

	w := doRequest(t, r, "/extract-metadata/?platform=youtube&video_url="+
		url.QueryEscape("https://www.youtube.com/watch?v=abc"))

	require.Equal(t, http.StatusOK, w.Code)

	var got domain.VideoMetadata
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Youtube", got.Platform)
	assert.Equal(t, "Test Video", got.Title)
	require.Len(t, got.Formats, 1)
	assert.Equal(t, "720p", got.Formats[0].Resolution)

	assert.Equal(t, domain.PlatformYouTube, ex.lastReq.Platform)
}

func TestHandleExtract_MissingVideoURL(t *testing.T) {
	r := setupRouter(t, &stubExtractor{})

	w := doRequest(t, r, "/extract-metadata/?platform=youtube")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleExtract_PlatformInferredFromURL(t *testing.T) {
	ex := &stubExtractor{meta: &domain.VideoMetadata{}}
	r := setupRouter(t, ex)

	w := doRequest(t, r, "/extract-metadata/?video_url="+
		url.QueryEscape("https://www.tiktok.com/@user/video/1"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.PlatformTikTok, ex.lastReq.Platform)
}

func TestHandleExtract_FlagsPassedThrough(t *testing.T) {
	ex := &stubExtractor{meta: &domain.VideoMetadata{}}
	r := setupRouter(t, ex)

	w := doRequest(t, r, "/extract-metadata/?video_url="+
		url.QueryEscape("https://www.tiktok.com/@user/video/1")+
		"&no_watermark=true&refresh_cookies=true")

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, ex.lastReq.NoWatermark)
	assert.True(t, ex.lastReq.RefreshCookies)
}

func TestHandleExtract_ExtractionErrorIs400(t *testing.T) {
	ex := &stubExtractor{err: &service.ExtractionError{
		Err: errors.New("Unsupported URL: https://example.com/x"),
	}}
	r := setupRouter(t, ex)

	w := doRequest(t, r, "/extract-metadata/?video_url="+
		url.QueryEscape("https://example.com/x"))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error processing video: Unsupported URL")
}

func TestHandleExtract_CredentialErrorIs500(t *testing.T) {
	ex := &stubExtractor{err: &service.CredentialError{
		Platform: domain.PlatformTikTok,
		Err:      errors.New("fetch failed"),
	}}
	r := setupRouter(t, ex)

	w := doRequest(t, r, "/extract-metadata/?video_url="+
		url.QueryEscape("https://www.tiktok.com/@user/video/1"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Cookie generation failed")
}

func TestRoot(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewHealthHandler("0.1.0")
	r.GET("/", h.Root)

	w := doRequest(t, r, "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), `"docs"`)
}
