package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonesrussell/media-extractor/internal/format"
)

func TestParseCookieString(t *testing.T) {
	got := format.ParseCookieString("a=1; Domain=x.com; secure; b=2")

	assert.Equal(t, map[string]any{
		"a":        "1",
		"a_secure": true,
		"b":        "2",
	}, got)
}

func TestParseCookieString_Empty(t *testing.T) {
	assert.Nil(t, format.ParseCookieString(""))
}

func TestParseCookieString_MetadataDoesNotMoveCurrentName(t *testing.T) {
	// The secure flag attaches to the most recently seen cookie name, not
	// to a metadata attribute that appeared in between.
	got := format.ParseCookieString("sid=abc; Path=/; Expires=Wed, 21 Oct 2026 07:28:00 GMT; secure")

	assert.Equal(t, map[string]any{
		"sid":        "abc",
		"sid_secure": true,
	}, got)
}

func TestParseCookieString_SecureWithoutPriorName(t *testing.T) {
	// A bare secure flag with no preceding cookie must not fabricate a name.
	got := format.ParseCookieString("Domain=x.com; secure")

	assert.Empty(t, got)
}

func TestParseCookieString_SecureKeyedFormSkipped(t *testing.T) {
	got := format.ParseCookieString("a=1; Secure=true; b=2")

	assert.Equal(t, map[string]any{"a": "1", "b": "2"}, got)
}

func TestParseCookieString_ValueContainingEquals(t *testing.T) {
	got := format.ParseCookieString("token=abc=def")

	assert.Equal(t, map[string]any{"token": "abc=def"}, got)
}

func TestParseCookieString_MalformedSegmentIgnored(t *testing.T) {
	got := format.ParseCookieString("a=1; garbage; b=2")

	assert.Equal(t, map[string]any{"a": "1", "b": "2"}, got)
}
