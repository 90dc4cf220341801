package service

import (
	"context"
	"log"
	"time"

	"github.com/artur/thor-downloader/internal/database/models"
	"github.com/artur/thor-downloader/internal/database/repository"
	"github.com/artur/thor-downloader/internal/downloader"
	"github.com/artur/thor-downloader/internal/platform"
	"github.com/artur/thor-downloader/internal/quota"
)

// Orchestrator composes the quota gate, the job executor and the usage
// ledger into one download request flow. One instance is constructed
// at startup and shared by all handlers.
type Orchestrator struct {
	gate      *quota.Gate
	executor  downloader.Executor
	downloads *repository.DownloadRepository
}

// NewOrchestrator creates an Orchestrator with injected dependencies.
func NewOrchestrator(gate *quota.Gate, executor downloader.Executor, downloads *repository.DownloadRepository) *Orchestrator {
	return &Orchestrator{
		gate:      gate,
		executor:  executor,
		downloads: downloads,
	}
}

// Request runs one download end-to-end: quota check, job execution,
// ledger write. On quota denial no job is started and no record is
// written. Executor failures propagate verbatim. A failed ledger write
// is logged but the produced artifact is still returned; the ledger may
// under-count in that case.
func (o *Orchestrator) Request(ctx context.Context, url, quality string, userID int64) (string, error) {
	log.Printf("[ORCH] Request user=%d quality=%s url=%s", userID, quality, url)

	if err := o.gate.MayDownload(userID); err != nil {
		log.Printf("[ORCH] Denied user=%d: %v", userID, err)
		return "", err
	}

	filePath, err := o.executor.Run(ctx, url, quality)
	if err != nil {
		log.Printf("[ORCH] Job failed user=%d: %v", userID, err)
		return "", err
	}

	// Resolved here once more for the ledger label; an unmatched URL
	// is recorded with an empty platform key rather than failing the job.
	var platformKey string
	if p, ok := platform.Classify(url); ok {
		platformKey = p.Key
	}

	record := &models.Download{
		UserID:       userID,
		URL:          url,
		Platform:     platformKey,
		Quality:      quality,
		DownloadDate: time.Now(),
	}
	if err := o.downloads.Record(record); err != nil {
		log.Printf("[ORCH] Failed to record download for user=%d: %v", userID, err)
	}

	log.Printf("[ORCH] Completed user=%d file=%s", userID, filePath)
	return filePath, nil
}
