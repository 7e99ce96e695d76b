package credentials

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jonesrussell/media-extractor/internal/domain"
	"github.com/jonesrussell/media-extractor/internal/logger"
)

// cookieTTL is the expiry written for acquired session cookies.
const cookieTTL = 365 * 24 * time.Hour

// errSeedURLRequired is returned when no seed URL is available for the fetch.
var errSeedURLRequired = errors.New("seed URL is required to acquire credentials")

// HTTPAcquirer obtains a platform session by fetching the video page URL
// directly and persisting the cookies the platform sets on that response.
type HTTPAcquirer struct {
	client    *http.Client
	store     *Store
	userAgent string
	logger    logger.Logger
}

// NewHTTPAcquirer creates an acquirer writing through the given store.
func NewHTTPAcquirer(client *http.Client, store *Store, userAgent string, log logger.Logger) *HTTPAcquirer {
	return &HTTPAcquirer{
		client:    client,
		store:     store,
		userAgent: userAgent,
		logger:    log,
	}
}

// Acquire fetches seedURL and atomically replaces the platform's cookie
// artifact with the session cookies from the response. Any failure leaves
// the previous artifact untouched.
func (a *HTTPAcquirer) Acquire(ctx context.Context, platform domain.Platform, seedURL string) error {
	if seedURL == "" {
		return errSeedURLRequired
	}
	if !platform.RequiresCredentials() {
		return fmt.Errorf("platform %q does not use credentials", platform)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, seedURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("build credential request: %w", err)
	}
	req.Header.Set("User-Agent", a.userAgent)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch credentials: %w", err)
	}
	defer resp.Body.Close()

	// Drain the body so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	expires := time.Now().Add(cookieTTL).Unix()
	received := resp.Cookies()
	cookies := make([]Cookie, 0, len(received))
	for _, ck := range received {
		cookies = append(cookies, Cookie{
			Domain:            platform.CookieDomain(),
			IncludeSubdomains: true,
			Path:              "/",
			Secure:            false,
			Expires:           expires,
			Name:              ck.Name,
			Value:             ck.Value,
		})
	}

	if err := a.store.Write(platform, cookies); err != nil {
		return err
	}

	a.logger.Info("Credential artifact refreshed",
		logger.String("platform", platform.String()),
		logger.Int("cookies", len(cookies)),
	)
	return nil
}
