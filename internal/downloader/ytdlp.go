package downloader

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/lrstanley/go-ytdlp"
)

// YTDLPExecutor runs retrieval jobs through the yt-dlp engine and, for
// audio requests, a second transcode phase.
type YTDLPExecutor struct {
	dir        string
	transcoder Transcoder
}

// NewYTDLPExecutor creates an executor that materializes files under dir.
func NewYTDLPExecutor(dir string, transcoder Transcoder) *YTDLPExecutor {
	return &YTDLPExecutor{
		dir:        dir,
		transcoder: transcoder,
	}
}

// Run fetches the best-matching stream for the quality token into the
// download directory and returns the artifact path. For mp3 requests
// the retrieved file is converted and removed; only the mp3 remains.
// The engine call blocks for as long as the transfer takes; cancel via
// ctx if a timeout is needed.
func (e *YTDLPExecutor) Run(ctx context.Context, url, quality string) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", &RetrievalError{Err: fmt.Errorf("failed to create download dir: %w", err)}
	}

	// One job, one filename prefix: parallel jobs never collide on
	// identically titled content.
	outTemplate := filepath.Join(e.dir, jobID()+"-%(title)s.%(ext)s")

	dl := ytdlp.New().
		Format(ResolveFormat(quality)).
		RestrictFilenames().
		ForceOverwrites().
		Output(outTemplate)

	log.Printf("[JOB] Fetching %s (quality=%s)", url, quality)

	result, err := dl.Run(ctx, url)
	if err != nil {
		return "", &RetrievalError{Err: err}
	}

	path, err := artifactPath(result)
	if err != nil {
		return "", &RetrievalError{Err: err}
	}

	if quality == QualityMP3 {
		return e.transcodeAndCleanup(ctx, path)
	}

	return path, nil
}

// transcodeAndCleanup converts a retrieved file to mp3. The source file
// is removed in both outcomes; only the mp3 may remain.
func (e *YTDLPExecutor) transcodeAndCleanup(ctx context.Context, srcPath string) (string, error) {
	log.Printf("[JOB] Transcoding %s to mp3", srcPath)

	mp3Path, err := e.transcoder.ToMP3(ctx, srcPath)
	if removeErr := os.Remove(srcPath); removeErr != nil {
		log.Printf("[JOB] Failed to remove source file %s: %v", srcPath, removeErr)
	}
	if err != nil {
		return "", &TranscodeError{Err: err}
	}
	return mp3Path, nil
}

func artifactPath(result *ytdlp.Result) (string, error) {
	info, err := result.GetExtractedInfo()
	if err != nil {
		return "", fmt.Errorf("failed to read extracted info: %w", err)
	}
	if len(info) == 0 || info[0].Filename == nil || *info[0].Filename == "" {
		return "", fmt.Errorf("engine produced no file")
	}
	return *info[0].Filename, nil
}

func jobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("job%d", time.Now().UnixNano())
	}
	return id.String()
}
