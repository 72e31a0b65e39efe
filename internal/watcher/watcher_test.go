package watcher

import "testing"

func TestIsVideoFile(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"mp4", "/input/lecture.mp4", true},
		{"uppercase extension", "/input/lecture.MP4", true},
		{"mkv", "/input/lecture.mkv", true},
		{"subtitle file", "/input/lecture.srt", false},
		{"hidden file", "/input/.lecture.mp4", false},
		{"no extension", "/input/lecture", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isVideoFile(tt.path); got != tt.want {
				t.Errorf("isVideoFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
