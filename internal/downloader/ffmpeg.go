package downloader

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	ffmpegCommand = "ffmpeg"
	audioCodec    = "libmp3lame"
	audioBitrate  = "320k"
)

// FFmpegTranscoder converts retrieved files to mp3 by shelling out to
// ffmpeg.
type FFmpegTranscoder struct {
	bin string
}

// NewFFmpegTranscoder creates a transcoder using the ffmpeg binary on PATH.
func NewFFmpegTranscoder() *FFmpegTranscoder {
	return &FFmpegTranscoder{bin: ffmpegCommand}
}

// ToMP3 converts inputPath to an mp3 file at 320 kbps next to the
// input. The partial output is removed on failure.
func (t *FFmpegTranscoder) ToMP3(ctx context.Context, inputPath string) (string, error) {
	outputPath := MP3Path(inputPath)

	cmd := exec.CommandContext(ctx, t.bin, BuildFFmpegArgs(inputPath, outputPath)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		os.Remove(outputPath)
		return "", fmt.Errorf("ffmpeg failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	return outputPath, nil
}

// BuildFFmpegArgs builds the ffmpeg command arguments
func BuildFFmpegArgs(inputPath, outputPath string) []string {
	return []string{
		"-y", // Overwrite output file
		"-i", inputPath,
		"-vn", // Drop video streams
		"-c:a", audioCodec,
		"-b:a", audioBitrate,
		"-nostats",
		outputPath,
	}
}

// MP3Path derives the mp3 artifact path from the input file path.
func MP3Path(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".mp3"
}
