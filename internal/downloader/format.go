package downloader

// QualityMP3 marks an audio-only request; retrieval is followed by a
// transcode phase.
const QualityMP3 = "mp3"

// fallbackFormat is used for unrecognized quality tokens.
const fallbackFormat = "best"

// formatSpecs is the fixed quality token to retrieval format table.
var formatSpecs = map[string]string{
	"480p":     "bestvideo[height<=480]+bestaudio/best[height<=480]",
	"720p":     "bestvideo[height<=720]+bestaudio/best[height<=720]",
	"1080p":    "bestvideo[height<=1080]+bestaudio/best[height<=1080]",
	"4k":       "bestvideo[height<=2160]+bestaudio/best[height<=2160]",
	QualityMP3: "bestaudio/best",
}

// ResolveFormat maps a quality token to the retrieval format
// specification. Unknown tokens resolve to the best available stream.
func ResolveFormat(quality string) string {
	if spec, ok := formatSpecs[quality]; ok {
		return spec
	}
	return fallbackFormat
}
