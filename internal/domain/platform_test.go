package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonesrussell/media-extractor/internal/domain"
)

func TestParsePlatform(t *testing.T) {
	assert.Equal(t, domain.PlatformYouTube, domain.ParsePlatform("youtube"))
	assert.Equal(t, domain.PlatformYouTube, domain.ParsePlatform(" YouTube "))
	assert.Equal(t, domain.PlatformTikTok, domain.ParsePlatform("tiktok"))
	assert.Equal(t, domain.PlatformOther, domain.ParsePlatform("vimeo"))
	assert.Equal(t, domain.PlatformOther, domain.ParsePlatform(""))
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url  string
		want domain.Platform
	}{
		{"https://www.youtube.com/watch?v=abc123", domain.PlatformYouTube},
		{"https://youtu.be/abc123", domain.PlatformYouTube},
		{"https://www.tiktok.com/@user/video/123", domain.PlatformTikTok},
		{"https://WWW.TIKTOK.COM/@user/video/123", domain.PlatformTikTok},
		{"https://vimeo.com/12345", domain.PlatformOther},
		{"", domain.PlatformOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.DetectPlatform(tt.url), "url %q", tt.url)
	}
}

func TestRequiresCredentials(t *testing.T) {
	assert.True(t, domain.PlatformYouTube.RequiresCredentials())
	assert.True(t, domain.PlatformTikTok.RequiresCredentials())
	assert.False(t, domain.PlatformOther.RequiresCredentials())
}

func TestCookieDomain(t *testing.T) {
	assert.Equal(t, ".youtube.com", domain.PlatformYouTube.CookieDomain())
	assert.Equal(t, ".tiktok.com", domain.PlatformTikTok.CookieDomain())
	assert.Equal(t, "", domain.PlatformOther.CookieDomain())
}

func TestPlatformLabel(t *testing.T) {
	assert.Equal(t, "Youtube", domain.PlatformLabel("Youtube"))
	assert.Equal(t, "Tiktok", domain.PlatformLabel("TikTok"))
	assert.Equal(t, "Generic", domain.PlatformLabel("generic"))
	assert.Equal(t, "Unknown Platform", domain.PlatformLabel(""))
}
