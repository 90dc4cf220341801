package downloader

import "context"

// Executor drives one retrieval job end-to-end and returns the path of
// the produced artifact.
type Executor interface {
	Run(ctx context.Context, url, quality string) (filePath string, err error)
}

// Transcoder converts a retrieved file to an mp3 artifact.
type Transcoder interface {
	ToMP3(ctx context.Context, inputPath string) (outputPath string, err error)
}

// Probe resolves lightweight metadata about a link without downloading it.
type Probe interface {
	Title(ctx context.Context, url string) (string, error)
}
