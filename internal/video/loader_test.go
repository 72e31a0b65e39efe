package video

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// touch creates an empty file so the loader's existence check passes.
func touch(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.mp4")
	if err := os.WriteFile(path, []byte("stub"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadParsesProbeOutput(t *testing.T) {
	exec := &fakeExecutor{output: `{
		"streams": [
			{"index": 0, "codec_type": "video", "width": 1920, "height": 1080, "r_frame_rate": "30000/1001", "duration": "12.5"},
			{"index": 1, "codec_type": "audio"}
		],
		"format": {"duration": "12.480000"}
	}`}

	loader := NewLoader(exec)
	info, err := loader.Load(context.Background(), touch(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if info.Duration != 12.48 {
		t.Errorf("Duration = %v, want 12.48", info.Duration)
	}
	if info.Width != 1920 || info.Height != 1080 {
		t.Errorf("frame size = %dx%d, want 1920x1080", info.Width, info.Height)
	}
	if info.FPS < 29.96 || info.FPS > 29.98 {
		t.Errorf("FPS = %v, want ~29.97", info.FPS)
	}
	if !info.HasAudio {
		t.Error("HasAudio = false, want true")
	}
}

func TestLoadDurationFallbackFromStream(t *testing.T) {
	// Container omits duration; the video stream's own duration is used.
	exec := &fakeExecutor{output: `{
		"streams": [
			{"index": 0, "codec_type": "video", "width": 640, "height": 480, "r_frame_rate": "24/1", "duration": "7.25"}
		],
		"format": {}
	}`}

	loader := NewLoader(exec)
	info, err := loader.Load(context.Background(), touch(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if info.Duration != 7.25 {
		t.Errorf("Duration = %v, want 7.25 (stream fallback)", info.Duration)
	}
	if info.HasAudio {
		t.Error("HasAudio = true, want false")
	}
}

func TestLoadMissingFile(t *testing.T) {
	loader := NewLoader(&fakeExecutor{})
	_, err := loader.Load(context.Background(), "does/not/exist.mp4")
	if err == nil {
		t.Fatal("Load() should fail for a missing file")
	}

	var loadErr *VideoLoadError
	if !errors.As(err, &loadErr) {
		t.Errorf("error = %T, want *VideoLoadError", err)
	}
}

func TestLoadProbeFailure(t *testing.T) {
	loader := NewLoader(&fakeExecutor{err: errFake})
	_, err := loader.Load(context.Background(), touch(t))

	var loadErr *VideoLoadError
	if !errors.As(err, &loadErr) {
		t.Errorf("error = %T, want *VideoLoadError", err)
	}
}

func TestLoadNoVideoStream(t *testing.T) {
	exec := &fakeExecutor{output: `{
		"streams": [{"index": 0, "codec_type": "audio"}],
		"format": {"duration": "3.0"}
	}`}

	loader := NewLoader(exec)
	_, err := loader.Load(context.Background(), touch(t))
	if err == nil {
		t.Fatal("Load() should fail when no video stream exists")
	}

	var loadErr *VideoLoadError
	if !errors.As(err, &loadErr) {
		t.Errorf("error = %T, want *VideoLoadError", err)
	}
}
