package downloader

import (
	"context"
	"fmt"

	"github.com/kkdai/youtube/v2"
)

// YouTubeProbe fetches video metadata through the YouTube client. Used
// to label the quality menu; the transfer itself goes through the
// retrieval engine.
type YouTubeProbe struct {
	client youtube.Client
}

func NewYouTubeProbe() *YouTubeProbe {
	return &YouTubeProbe{
		client: youtube.Client{},
	}
}

// Title returns the video title for a YouTube link.
func (p *YouTubeProbe) Title(ctx context.Context, url string) (string, error) {
	video, err := p.client.GetVideoContext(ctx, url)
	if err != nil {
		return "", fmt.Errorf("failed to get video info: %w", err)
	}
	return video.Title, nil
}
