package handler

import (
	"sync"
	"time"

	"github.com/artur/thor-downloader/internal/platform"
	"github.com/google/uuid"
)

// maxPendingLinks bounds the in-memory link table; the oldest entry is
// evicted when the cap is hit.
const maxPendingLinks = 1000

// pendingLink holds a submitted URL between the quality menu being
// shown and a button being pressed.
type pendingLink struct {
	URL      string
	Platform platform.Platform
	UserID   int64
	AddedAt  time.Time
}

type pendingLinks struct {
	mu    sync.Mutex
	links map[string]pendingLink
}

func newPendingLinks() *pendingLinks {
	return &pendingLinks{
		links: make(map[string]pendingLink),
	}
}

// Add stores the link and returns its token.
func (p *pendingLinks) Add(link pendingLink) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.links) >= maxPendingLinks {
		p.evictOldestLocked()
	}

	token := uuid.NewString()
	link.AddedAt = time.Now()
	p.links[token] = link
	return token
}

// Get returns the link for a token. The entry stays so the user can
// retry another quality after a failed attempt.
func (p *pendingLinks) Get(token string) (pendingLink, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	link, ok := p.links[token]
	return link, ok
}

func (p *pendingLinks) evictOldestLocked() {
	var oldestToken string
	var oldest time.Time
	for token, link := range p.links {
		if oldestToken == "" || link.AddedAt.Before(oldest) {
			oldestToken = token
			oldest = link.AddedAt
		}
	}
	if oldestToken != "" {
		delete(p.links, oldestToken)
	}
}
