package common

import (
	"context"
)

type Stream string

const (
	Stdout Stream = "stdout"
	Stderr Stream = "stderr"
)

// LineHandler receives subprocess output one line at a time. Calls are never concurrent.
type LineHandler func(stream Stream, line string)

type CommandExecutor interface {
	RunCommand(name string, args ...string) ([]byte, error)
	RunStreamingCommand(ctx context.Context, onLine LineHandler, name string, args ...string) error
	LookPath(file string) (string, error)
}
