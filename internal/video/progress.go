package video

// Stage identifies which part of a processing run is underway.
type Stage string

const (
	StageLoading     Stage = "loading"
	StageCompositing Stage = "compositing"
	StageEncoding    Stage = "encoding"
)

// Progress is a point-in-time snapshot pushed to the observer during a run.
// It is fire-and-forget: never stored, never acknowledged.
type Progress struct {
	TotalFrames     int
	ProcessedFrames int
	CurrentStage    Stage
	ETASeconds      float64
}

// ProgressFunc receives progress snapshots. A nil ProgressFunc disables
// reporting.
type ProgressFunc func(Progress)

// Spec is the encode configuration supplied once at pipeline construction.
type Spec struct {
	FPS           int
	Codec         string
	AudioCodec    string
	Threads       int
	Bitrate       string
	Preset        string
	TempDirectory string
}
