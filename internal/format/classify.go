// Package format implements the normalization pipeline for raw stream
// catalogs: filtering, audio/video classification, and assembly of the
// client-facing metadata shape. Everything in this package is a pure
// function of its input.
package format

import (
	"strings"

	"github.com/jonesrussell/media-extractor/internal/domain"
	"github.com/jonesrussell/media-extractor/internal/ytdlp"
)

const (
	// noneCodec is the engine's sentinel for "this track is absent".
	noneCodec = "none"
	// audioOnlyResolution labels formats without a usable resolution.
	audioOnlyResolution = "audio only"
	// m3u8Suffix marks live-streaming playlists, which are never surfaced
	// because they are not fetchable as a single file.
	m3u8Suffix = ".m3u8"
	// mp4Ext is the only video container retained.
	mp4Ext = "mp4"
)

// hasCodec reports whether a codec field names a real codec. Both the empty
// string and the "none" sentinel count as absent.
func hasCodec(codec string) bool {
	return codec != "" && codec != noneCodec
}

// retain decides whether a raw descriptor survives filtering:
// m3u8 playlists are always excluded; MP4 entries with a video codec and
// audio-only entries of any container are kept; everything else is dropped.
func retain(f ytdlp.RawFormat) bool {
	if strings.HasSuffix(f.URL, m3u8Suffix) {
		return false
	}
	if f.Ext == mp4Ext && hasCodec(f.VCodec) {
		return true
	}
	return hasCodec(f.ACodec) && !hasCodec(f.VCodec)
}

// classify reshapes one retained descriptor into the client-facing format.
func classify(f ytdlp.RawFormat) domain.MediaFormat {
	// Resolution falls back to "audio only" even when a video codec is
	// present but the resolution label is missing. This is a quirk kept
	// from the original filtering logic; downstream clients depend on the
	// current shape.
	resolution := audioOnlyResolution
	if hasCodec(f.VCodec) && f.Resolution != "" {
		resolution = f.Resolution
	}

	return domain.MediaFormat{
		FormatID:   f.FormatID,
		Resolution: resolution,
		URL:        f.URL,
		HasAudio:   hasCodec(f.ACodec),
		HasVideo:   hasCodec(f.VCodec),
		Bitrate:    f.ABR,
		AudioCodec: f.ACodec,
		Ext:        f.Ext,
		FileSize:   fileSize(f),
		Cookies:    ParseCookieString(f.Cookies),
	}
}

// fileSize prefers the declared exact size over the approximate one.
// Returns nil when neither is present; no unit conversion is performed.
func fileSize(f ytdlp.RawFormat) *int64 {
	if f.Filesize != nil {
		return f.Filesize
	}
	return f.FilesizeApprox
}

// Classify filters and reclassifies a raw catalog. Output preserves the
// catalog's original order and performs no deduplication: the same quality
// can legitimately appear under different containers or cookie scopes.
func Classify(raw []ytdlp.RawFormat) []domain.MediaFormat {
	formats := make([]domain.MediaFormat, 0, len(raw))
	for _, f := range raw {
		if retain(f) {
			formats = append(formats, classify(f))
		}
	}
	return formats
}
