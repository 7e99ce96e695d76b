package domain

// MediaFormat is one downloadable rendition of a video after filtering and
// classification. Fields mirror what the extraction engine reported; absent
// values stay absent in the JSON response rather than being zero-filled.
type MediaFormat struct {
	FormatID   string         `json:"format_id,omitempty"`
	Resolution string         `json:"resolution"`
	URL        string         `json:"url,omitempty"`
	HasAudio   bool           `json:"has_audio"`
	HasVideo   bool           `json:"has_video"`
	Bitrate    *float64       `json:"bitrate,omitempty"`
	AudioCodec string         `json:"audio_codec,omitempty"`
	Ext        string         `json:"ext,omitempty"`
	FileSize   *int64         `json:"file_size,omitempty"`
	Cookies    map[string]any `json:"cookies,omitempty"`
}

// VideoMetadata is the single response entity for one extraction request.
// Formats keep the order of the engine's raw catalog.
type VideoMetadata struct {
	Platform  string        `json:"platform"`
	Title     string        `json:"title"`
	Duration  *float64      `json:"duration,omitempty"`
	Thumbnail string        `json:"thumbnail,omitempty"`
	Formats   []MediaFormat `json:"formats"`
}
