package handler

import (
	"testing"

	"github.com/artur/thor-downloader/internal/platform"
)

func TestPendingLinks_AddGet(t *testing.T) {
	pending := newPendingLinks()

	yt, _ := platform.ByName("YouTube")
	token := pending.Add(pendingLink{
		URL:      "https://youtube.com/watch?v=abc",
		Platform: yt,
		UserID:   12345,
	})

	link, ok := pending.Get(token)
	if !ok {
		t.Fatal("Expected link to be found")
	}
	if link.URL != "https://youtube.com/watch?v=abc" {
		t.Errorf("URL = %q", link.URL)
	}
	if link.Platform.Key != "youtube" {
		t.Errorf("Platform = %q", link.Platform.Key)
	}
	if link.UserID != 12345 {
		t.Errorf("UserID = %d, the requester binding depends on it", link.UserID)
	}
	if link.AddedAt.IsZero() {
		t.Error("Expected AddedAt to be set")
	}

	// Entry survives a read so the user can retry another quality.
	if _, ok := pending.Get(token); !ok {
		t.Error("Expected link to remain after Get")
	}
}

func TestPendingLinks_UnknownToken(t *testing.T) {
	pending := newPendingLinks()

	if _, ok := pending.Get("no-such-token"); ok {
		t.Error("Expected unknown token to miss")
	}
}

func TestPendingLinks_Eviction(t *testing.T) {
	pending := newPendingLinks()

	first := pending.Add(pendingLink{URL: "https://youtube.com/watch?v=first"})
	for i := 0; i < maxPendingLinks; i++ {
		pending.Add(pendingLink{URL: "https://youtube.com/watch?v=filler"})
	}

	if _, ok := pending.Get(first); ok {
		t.Error("Expected oldest link to be evicted at capacity")
	}
	if len(pending.links) > maxPendingLinks {
		t.Errorf("Table exceeded cap: %d", len(pending.links))
	}
}
