package service

import (
	"fmt"

	"github.com/jonesrussell/media-extractor/internal/domain"
)

// CredentialError indicates the credential acquirer failed before the
// extraction engine was invoked. The request is aborted; there is no
// unauthenticated fallback and no automatic retry.
type CredentialError struct {
	Platform domain.Platform
	Err      error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("credential acquisition for %s failed: %v", e.Platform, e.Err)
}

func (e *CredentialError) Unwrap() error {
	return e.Err
}

// ExtractionError indicates the extraction engine failed for the requested
// URL (network, unsupported site, parsing). The engine's own message is
// preserved for the client response.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return e.Err.Error()
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
