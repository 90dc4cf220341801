package handler

import (
	"fmt"
	"strings"

	"github.com/artur/thor-downloader/internal/platform"
	"github.com/google/uuid"
)

// Callback payloads. The download payload carries a server-side link
// token and a quality token, never the URL itself: Telegram caps
// callback data at 64 bytes and neither field may contain a separator.
const (
	callbackUpgrade = "upgrade"
	callbackHelp    = "help"

	downloadPrefix = "dl"
)

// downloadCallback is the decoded form of a dl payload.
type downloadCallback struct {
	Token   string
	Quality string
}

func encodeDownloadCallback(token, quality string) string {
	return downloadPrefix + ":" + token + ":" + quality
}

// parseDownloadCallback validates and decodes a dl payload. The token
// must be a uuid and the quality one of the menu tokens, so both
// fields are separator-free by construction.
func parseDownloadCallback(data string) (downloadCallback, error) {
	parts := strings.Split(data, ":")
	if len(parts) != 3 || parts[0] != downloadPrefix {
		return downloadCallback{}, fmt.Errorf("malformed download callback: %q", data)
	}
	if _, err := uuid.Parse(parts[1]); err != nil {
		return downloadCallback{}, fmt.Errorf("invalid link token: %w", err)
	}
	if !platform.KnownQuality(parts[2]) {
		return downloadCallback{}, fmt.Errorf("unknown quality token: %q", parts[2])
	}
	return downloadCallback{Token: parts[1], Quality: parts[2]}, nil
}
