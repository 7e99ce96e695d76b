package ytdlp

// RawFormat is one stream descriptor exactly as the extraction engine reports
// it. No field is guaranteed to be present; absence is a valid state and is
// carried as the zero value (or nil for numeric fields).
type RawFormat struct {
	FormatID       string   `json:"format_id"`
	Ext            string   `json:"ext"`
	VCodec         string   `json:"vcodec"`
	ACodec         string   `json:"acodec"`
	Resolution     string   `json:"resolution"`
	ABR            *float64 `json:"abr"`
	Filesize       *int64   `json:"filesize"`
	FilesizeApprox *int64   `json:"filesize_approx"`
	URL            string   `json:"url"`
	Cookies        string   `json:"cookies"`
}

// RawInfo is the engine's top-level report for a video: identification,
// display metadata, and the ordered catalog of stream descriptors.
type RawInfo struct {
	ExtractorKey string      `json:"extractor_key"`
	Title        string      `json:"title"`
	Duration     *float64    `json:"duration"`
	Thumbnail    string      `json:"thumbnail"`
	Formats      []RawFormat `json:"formats"`
}
