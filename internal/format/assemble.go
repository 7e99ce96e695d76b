package format

import (
	"github.com/jonesrussell/media-extractor/internal/domain"
	"github.com/jonesrussell/media-extractor/internal/ytdlp"
)

// unknownTitle is the client-facing fallback when the engine reports no title.
const unknownTitle = "Unknown Title"

// Assemble merges the engine's report into the single response entity:
// platform label, title and duration/thumbnail defaults, and the filtered
// format catalog. It is a pure merge and performs no further filtering;
// duration and thumbnail stay absent when the engine provides none.
func Assemble(info *ytdlp.RawInfo) domain.VideoMetadata {
	title := info.Title
	if title == "" {
		title = unknownTitle
	}

	return domain.VideoMetadata{
		Platform:  domain.PlatformLabel(info.ExtractorKey),
		Title:     title,
		Duration:  info.Duration,
		Thumbnail: info.Thumbnail,
		Formats:   Classify(info.Formats),
	}
}
