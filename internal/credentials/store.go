// Package credentials manages the on-disk session cookie artifacts that
// authorize the extraction engine against platforms on the credential
// allow-list. One Netscape-format cookie file is kept per platform.
package credentials

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonesrussell/media-extractor/internal/domain"
)

// netscapeHeader is the first line of every cookie file.
const netscapeHeader = "# Netscape HTTP Cookie File"

// Cookie is one line of a Netscape cookie file: tab-separated domain,
// include-subdomains flag, path, secure flag, unix expiry, name, value.
type Cookie struct {
	Domain            string
	IncludeSubdomains bool
	Path              string
	Secure            bool
	Expires           int64
	Name              string
	Value             string
}

// Store keeps one cookie artifact per platform under a single directory.
// Writers replace the whole file atomically; readers never lock.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. The directory is created lazily on
// first write.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the artifact path for a platform.
func (s *Store) Path(p domain.Platform) string {
	return filepath.Join(s.dir, p.String()+"_cookies.txt")
}

// Exists reports whether the artifact for a platform is present on disk.
func (s *Store) Exists(p domain.Platform) bool {
	_, err := os.Stat(s.Path(p))
	return err == nil
}

// Write atomically replaces the platform's artifact with the given cookies.
// Content goes to a temp file in the same directory and is renamed over the
// target, so a concurrent reader never observes a partially written file.
func (s *Store) Write(p domain.Platform, cookies []Cookie) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create cookie dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, p.String()+"_cookies_*.tmp")
	if err != nil {
		return fmt.Errorf("create temp cookie file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := writeNetscape(tmp, cookies); err != nil {
		tmp.Close()
		return fmt.Errorf("write cookie file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close cookie file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path(p)); err != nil {
		return fmt.Errorf("replace cookie file: %w", err)
	}
	return nil
}

// writeNetscape serializes cookies in Netscape HTTP Cookie File format.
func writeNetscape(w io.Writer, cookies []Cookie) error {
	if _, err := fmt.Fprintln(w, netscapeHeader); err != nil {
		return err
	}
	for _, ck := range cookies {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			ck.Domain, boolFlag(ck.IncludeSubdomains), ck.Path,
			boolFlag(ck.Secure), ck.Expires, ck.Name, ck.Value)
		if err != nil {
			return err
		}
	}
	return nil
}

func boolFlag(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
