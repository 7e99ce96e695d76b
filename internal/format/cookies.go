package format

import "strings"

// ParseCookieString decodes the semicolon-delimited cookie string the
// extraction engine attaches to some formats into a name -> value mapping.
// A bare "secure" token marks the most recently seen cookie with a synthetic
// "<name>_secure" boolean entry. Keyed metadata attributes (domain, path,
// secure, expires) are skipped and do not move the current-name pointer.
//
// Empty input returns nil, which serializes as an absent field. Parsing is
// best-effort: segments that are neither name=value nor a recognized bare
// flag are silently ignored.
func ParseCookieString(s string) map[string]any {
	if s == "" {
		return nil
	}

	cookies := make(map[string]any)
	currentName := ""

	for _, part := range strings.Split(s, "; ") {
		if name, value, ok := strings.Cut(part, "="); ok {
			switch strings.ToLower(name) {
			case "domain", "path", "secure", "expires":
				// cookie metadata, not a new cookie
			default:
				currentName = name
				cookies[currentName] = value
			}
		} else if strings.EqualFold(part, "secure") && currentName != "" {
			cookies[currentName+"_secure"] = true
		}
	}

	return cookies
}
