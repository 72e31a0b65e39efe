package executor

import "context"

// LineHandler receives one line of command output at a time.
type LineHandler func(line string)

// Executor defines the interface for executing external commands
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error)
	// ExecuteStream runs a command and delivers each stdout line to onLine as
	// it arrives. Used for long-running encodes that report progress on stdout.
	ExecuteStream(ctx context.Context, onLine LineHandler, name string, args ...string) error
}
