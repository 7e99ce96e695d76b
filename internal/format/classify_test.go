package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/media-extractor/internal/format"
	"github.com/jonesrussell/media-extractor/internal/ytdlp"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

func TestClassify_MP4WithVideoRetained(t *testing.T) {
	raw := []ytdlp.RawFormat{
		{FormatID: "22", Ext: "mp4", VCodec: "h264", ACodec: "aac", Resolution: "720p"},
		{FormatID: "137", Ext: "mp4", VCodec: "h264", ACodec: "none", Resolution: "1080p"},
	}

	got := format.Classify(raw)

	require.Len(t, got, 2)
	assert.True(t, got[0].HasVideo)
	assert.True(t, got[0].HasAudio)
	assert.Equal(t, "720p", got[0].Resolution)
	assert.True(t, got[1].HasVideo)
	assert.False(t, got[1].HasAudio)
	assert.Equal(t, "1080p", got[1].Resolution)
}

func TestClassify_NonMP4VideoExcluded(t *testing.T) {
	raw := []ytdlp.RawFormat{
		{FormatID: "248", Ext: "webm", VCodec: "vp9", ACodec: "none", Resolution: "1080p"},
		{FormatID: "43", Ext: "webm", VCodec: "vp8", ACodec: "vorbis", Resolution: "360p"},
	}

	assert.Empty(t, format.Classify(raw))
}

func TestClassify_AudioOnlyRetainedAnyContainer(t *testing.T) {
	raw := []ytdlp.RawFormat{
		{FormatID: "140", Ext: "m4a", VCodec: "none", ACodec: "aac", ABR: f64(128)},
		{FormatID: "251", Ext: "webm", VCodec: "none", ACodec: "opus", ABR: f64(160)},
	}

	got := format.Classify(raw)

	require.Len(t, got, 2)
	for _, f := range got {
		assert.False(t, f.HasVideo)
		assert.True(t, f.HasAudio)
		assert.Equal(t, "audio only", f.Resolution)
	}
}

func TestClassify_M3U8AlwaysExcluded(t *testing.T) {
	raw := []ytdlp.RawFormat{
		{FormatID: "hls", Ext: "mp4", VCodec: "h264", ACodec: "aac", URL: "https://cdn.example.com/live/index.m3u8"},
		{FormatID: "hls-audio", Ext: "m4a", VCodec: "none", ACodec: "aac", URL: "https://cdn.example.com/live/audio.m3u8"},
	}

	assert.Empty(t, format.Classify(raw))
}

func TestClassify_NeitherCodecExcluded(t *testing.T) {
	raw := []ytdlp.RawFormat{
		{FormatID: "sb0", Ext: "mhtml", VCodec: "none", ACodec: "none"},
		{FormatID: "blank"},
	}

	assert.Empty(t, format.Classify(raw))
}

func TestClassify_ResolutionFallsBackToAudioOnly(t *testing.T) {
	// Known quirk: an mp4 with a video codec but no resolution label still
	// gets the "audio only" fallback.
	raw := []ytdlp.RawFormat{
		{FormatID: "18", Ext: "mp4", VCodec: "h264", ACodec: "aac"},
	}

	got := format.Classify(raw)

	require.Len(t, got, 1)
	assert.True(t, got[0].HasVideo)
	assert.Equal(t, "audio only", got[0].Resolution)
}

func TestClassify_FileSizePrefersDeclared(t *testing.T) {
	raw := []ytdlp.RawFormat{
		{Ext: "mp4", VCodec: "h264", Filesize: i64(100), FilesizeApprox: i64(200)},
		{Ext: "mp4", VCodec: "h264", FilesizeApprox: i64(200)},
		{Ext: "mp4", VCodec: "h264"},
	}

	got := format.Classify(raw)

	require.Len(t, got, 3)
	require.NotNil(t, got[0].FileSize)
	assert.Equal(t, int64(100), *got[0].FileSize)
	require.NotNil(t, got[1].FileSize)
	assert.Equal(t, int64(200), *got[1].FileSize)
	assert.Nil(t, got[2].FileSize)
}

func TestClassify_PerFormatCookiesParsed(t *testing.T) {
	raw := []ytdlp.RawFormat{
		{Ext: "mp4", VCodec: "h264", Cookies: "sid=abc; Domain=.tiktok.com; secure"},
		{Ext: "mp4", VCodec: "h264"},
	}

	got := format.Classify(raw)

	require.Len(t, got, 2)
	assert.Equal(t, map[string]any{"sid": "abc", "sid_secure": true}, got[0].Cookies)
	assert.Nil(t, got[1].Cookies)
}

func TestClassify_PreservesCatalogOrderWithoutDedup(t *testing.T) {
	raw := []ytdlp.RawFormat{
		{FormatID: "22", Ext: "mp4", VCodec: "h264", Resolution: "720p"},
		{FormatID: "140", Ext: "m4a", VCodec: "none", ACodec: "aac"},
		{FormatID: "22", Ext: "mp4", VCodec: "h264", Resolution: "720p"},
	}

	got := format.Classify(raw)

	require.Len(t, got, 3)
	assert.Equal(t, "22", got[0].FormatID)
	assert.Equal(t, "140", got[1].FormatID)
	assert.Equal(t, "22", got[2].FormatID)
}

func TestClassify_Idempotent(t *testing.T) {
	raw := []ytdlp.RawFormat{
		{FormatID: "22", Ext: "mp4", VCodec: "h264", ACodec: "aac", Resolution: "720p"},
		{FormatID: "140", Ext: "m4a", VCodec: "none", ACodec: "aac", ABR: f64(128)},
	}

	assert.Equal(t, format.Classify(raw), format.Classify(raw))
}

func TestAssemble_EndToEnd(t *testing.T) {
	info := &ytdlp.RawInfo{
		ExtractorKey: "Youtube",
		Title:        "Test Video",
		Duration:     f64(212),
		Thumbnail:    "https://i.example.com/thumb.jpg",
		Formats: []ytdlp.RawFormat{
			{FormatID: "22", Ext: "mp4", VCodec: "h264", ACodec: "aac", Resolution: "720p"},
			{FormatID: "248", Ext: "webm", VCodec: "vp9", ACodec: "none"},
			{FormatID: "140", Ext: "m4a", VCodec: "none", ACodec: "aac", ABR: f64(128), URL: "https://cdn.example.com/a.m4a"},
		},
	}

	meta := format.Assemble(info)

	assert.Equal(t, "Youtube", meta.Platform)
	assert.Equal(t, "Test Video", meta.Title)
	require.NotNil(t, meta.Duration)
	assert.Equal(t, float64(212), *meta.Duration)
	assert.Equal(t, "https://i.example.com/thumb.jpg", meta.Thumbnail)

	// webm entry excluded, original order preserved
	require.Len(t, meta.Formats, 2)

	mp4 := meta.Formats[0]
	assert.Equal(t, "22", mp4.FormatID)
	assert.Equal(t, "720p", mp4.Resolution)
	assert.True(t, mp4.HasVideo)
	assert.True(t, mp4.HasAudio)

	m4a := meta.Formats[1]
	assert.Equal(t, "140", m4a.FormatID)
	assert.Equal(t, "audio only", m4a.Resolution)
	assert.False(t, m4a.HasVideo)
	assert.True(t, m4a.HasAudio)
	require.NotNil(t, m4a.Bitrate)
	assert.Equal(t, float64(128), *m4a.Bitrate)
}

func TestAssemble_Defaults(t *testing.T) {
	meta := format.Assemble(&ytdlp.RawInfo{})

	assert.Equal(t, "Unknown Platform", meta.Platform)
	assert.Equal(t, "Unknown Title", meta.Title)
	assert.Nil(t, meta.Duration)
	assert.Empty(t, meta.Thumbnail)
	assert.Empty(t, meta.Formats)
}
