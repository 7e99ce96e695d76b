// Package ytdlp adapts the external yt-dlp extraction engine. The engine is a
// black box: this package only builds its invocation, runs it, and decodes the
// JSON report it prints.
package ytdlp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultBinPath is used when no binary path is configured.
const DefaultBinPath = "yt-dlp"

// Options are the per-request options passed to the engine.
type Options struct {
	// Quiet suppresses the engine's progress output.
	Quiet bool
	// NoWarnings suppresses the engine's warning output.
	NoWarnings bool
	// ForceURL asks the engine to resolve direct URLs without downloading.
	ForceURL bool
	// UserAgent is sent as the request User-Agent header.
	UserAgent string
	// CookieFile is the path to a Netscape cookie file, empty to omit.
	CookieFile string
	// NoWatermark toggles platform-specific watermark removal, passed
	// through verbatim.
	NoWatermark bool
}

// Client runs the yt-dlp binary and decodes its single-video JSON report.
type Client struct {
	binPath string
	timeout time.Duration
}

// NewClient creates a Client for the given binary path. A zero timeout means
// the subprocess is bounded only by the caller's context.
func NewClient(binPath string, timeout time.Duration) *Client {
	if binPath == "" {
		binPath = DefaultBinPath
	}
	return &Client{binPath: binPath, timeout: timeout}
}

// Extract invokes the engine once for the given URL and returns its raw
// report. The subprocess is killed if ctx is cancelled.
func (c *Client) Extract(ctx context.Context, url string, opts Options) (*RawInfo, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.binPath, buildArgs(url, opts)...)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("yt-dlp: %s", commandError(err))
	}

	var info RawInfo
	if err := json.Unmarshal(out, &info); err != nil {
		return nil, fmt.Errorf("decode yt-dlp output: %w", err)
	}
	return &info, nil
}

// buildArgs maps Options onto yt-dlp command-line flags.
func buildArgs(url string, opts Options) []string {
	args := []string{"--dump-single-json", "--no-playlist"}
	if opts.Quiet {
		args = append(args, "--quiet")
	}
	if opts.NoWarnings {
		args = append(args, "--no-warnings")
	}
	if opts.ForceURL {
		args = append(args, "--simulate")
	}
	if opts.UserAgent != "" {
		args = append(args, "--user-agent", opts.UserAgent)
	}
	if opts.CookieFile != "" {
		args = append(args, "--cookies", opts.CookieFile)
	}
	if opts.NoWatermark {
		args = append(args, "--extractor-args", "tiktok:no_watermark")
	}
	return append(args, url)
}

// commandError extracts the engine's stderr text from an exec failure so the
// caller can surface the engine's own message.
func commandError(err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
		return strings.TrimSpace(string(exitErr.Stderr))
	}
	return err.Error()
}
