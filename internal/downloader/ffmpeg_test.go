package downloader

import (
	"strings"
	"testing"
)

func TestBuildFFmpegArgs(t *testing.T) {
	args := BuildFFmpegArgs("/tmp/in.webm", "/tmp/in.mp3")

	joined := strings.Join(args, " ")

	if !strings.Contains(joined, "-i /tmp/in.webm") {
		t.Errorf("Expected input file in args, got %q", joined)
	}
	if !strings.Contains(joined, "-c:a libmp3lame") {
		t.Errorf("Expected mp3 codec in args, got %q", joined)
	}
	if !strings.Contains(joined, "-b:a 320k") {
		t.Errorf("Expected 320k bitrate in args, got %q", joined)
	}
	if !strings.Contains(joined, "-vn") {
		t.Errorf("Expected video streams dropped, got %q", joined)
	}
	if args[len(args)-1] != "/tmp/in.mp3" {
		t.Errorf("Expected output file last, got %q", args[len(args)-1])
	}
}

func TestMP3Path(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/tmp/video.webm", "/tmp/video.mp3"},
		{"/tmp/audio.m4a", "/tmp/audio.mp3"},
		{"downloads/clip.mp4", "downloads/clip.mp3"},
		{"noext", "noext.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := MP3Path(tt.input); got != tt.expected {
				t.Errorf("MP3Path(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
