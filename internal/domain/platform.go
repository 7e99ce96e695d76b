// Package domain holds the core entities of the media-extractor service:
// the platform enumeration and the normalized metadata returned to clients.
package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Platform identifies a video source platform. Only platforms on the
// credential allow-list are distinguished; everything else is PlatformOther.
type Platform string

const (
	// PlatformYouTube requires session cookies for authorized stream URLs.
	PlatformYouTube Platform = "youtube"
	// PlatformTikTok requires session cookies for authorized stream URLs.
	PlatformTikTok Platform = "tiktok"
	// PlatformOther covers every platform without a credential requirement.
	PlatformOther Platform = "other"
)

// unknownPlatformLabel is the client-facing fallback when the extraction
// engine does not report a source identifier.
const unknownPlatformLabel = "Unknown Platform"

var labelCaser = cases.Title(language.English)

// ParsePlatform maps a caller-supplied platform identifier onto the closed
// enumeration. Unrecognized identifiers map to PlatformOther.
func ParsePlatform(s string) Platform {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "youtube":
		return PlatformYouTube
	case "tiktok":
		return PlatformTikTok
	default:
		return PlatformOther
	}
}

// DetectPlatform infers the platform from a video page URL.
func DetectPlatform(rawURL string) Platform {
	u := strings.ToLower(rawURL)
	switch {
	case strings.Contains(u, "tiktok.com"):
		return PlatformTikTok
	case strings.Contains(u, "youtube.com"), strings.Contains(u, "youtu.be"):
		return PlatformYouTube
	default:
		return PlatformOther
	}
}

// String returns the lowercase platform identifier.
func (p Platform) String() string {
	return string(p)
}

// RequiresCredentials reports whether the platform needs a session cookie
// artifact before the extraction engine is invoked.
func (p Platform) RequiresCredentials() bool {
	return p == PlatformYouTube || p == PlatformTikTok
}

// CookieDomain returns the cookie domain written to the credential artifact
// for this platform, or empty for platforms without a credential requirement.
func (p Platform) CookieDomain() string {
	switch p {
	case PlatformTikTok:
		return ".tiktok.com"
	case PlatformYouTube:
		return ".youtube.com"
	default:
		return ""
	}
}

// PlatformLabel converts the extraction engine's self-reported extractor key
// into the client-facing platform label. The key is lowercased then
// title-cased ("youtube" -> "Youtube"), matching the shape clients already
// depend on. An empty key falls back to "Unknown Platform".
func PlatformLabel(extractorKey string) string {
	if extractorKey == "" {
		return unknownPlatformLabel
	}
	return labelCaser.String(strings.ToLower(extractorKey))
}
