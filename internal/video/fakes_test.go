package video

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/caption-studio/internal/caption"
	"github.com/nguyentantai21042004/caption-studio/pkg/executor"
)

// fakeExecutor replays canned output instead of running real binaries.
type fakeExecutor struct {
	output      string
	err         error
	streamLines []string
	streamErr   error

	lastName string
	lastArgs []string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.lastName = name
	f.lastArgs = args
	return f.output, f.err
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	return f.Execute(ctx, name, args...)
}

func (f *fakeExecutor) ExecuteStream(ctx context.Context, onLine executor.LineHandler, name string, args ...string) error {
	f.lastName = name
	f.lastArgs = args
	for _, line := range f.streamLines {
		onLine(line)
	}
	return f.streamErr
}

type fakeLoader struct {
	info Info
	err  error
}

func (f *fakeLoader) Load(ctx context.Context, path string) (Info, error) {
	if f.err != nil {
		return Info{}, f.err
	}
	info := f.info
	info.Path = path
	return info, nil
}

type fakeCompositor struct {
	gotClips    []caption.Clip
	gotBackdrop caption.Backdrop
	err         error
}

func (f *fakeCompositor) Compose(info Info, clips []caption.Clip, backdrop caption.Backdrop) (Composition, error) {
	f.gotClips = clips
	f.gotBackdrop = backdrop
	if f.err != nil {
		return Composition{}, f.err
	}
	return Composition{FilterGraph: "null", Duration: info.Duration, HasAudio: info.HasAudio}, nil
}

type fakeWriter struct {
	called bool
	err    error
}

func (f *fakeWriter) Write(ctx context.Context, comp Composition, inputPath, outputPath string, spec Spec, onProgress ProgressFunc) error {
	f.called = true
	return f.err
}

var errFake = errors.New("fake failure")
