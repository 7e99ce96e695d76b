package ytdlp

// Exported for testing.
var BuildArgs = buildArgs
