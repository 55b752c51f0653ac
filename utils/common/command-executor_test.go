package common

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealCommandExecutor_RunCommand(t *testing.T) {
	executor := &RealCommandExecutor{}

	output, err := executor.RunCommand("echo", "hello")
	assert.NoError(t, err)
	assert.Equal(t, "hello\n", string(output))

	_, err = executor.RunCommand("nonexistent-command-ssocreds")
	assert.Error(t, err)
}

func TestRealCommandExecutor_RunStreamingCommand(t *testing.T) {
	executor := &RealCommandExecutor{}

	type line struct {
		stream Stream
		text   string
	}
	var lines []line
	onLine := func(stream Stream, text string) {
		lines = append(lines, line{stream, text})
	}

	err := executor.RunStreamingCommand(context.Background(), onLine, "sh", "-c", "echo one; echo two; echo oops 1>&2")
	require.NoError(t, err)

	assert.Contains(t, lines, line{Stdout, "one"})
	assert.Contains(t, lines, line{Stdout, "two"})
	assert.Contains(t, lines, line{Stderr, "oops"})

	var stdout []string
	for _, l := range lines {
		if l.stream == Stdout {
			stdout = append(stdout, l.text)
		}
	}
	assert.Equal(t, []string{"one", "two"}, stdout)
}

func TestRealCommandExecutor_RunStreamingCommandExitCode(t *testing.T) {
	executor := &RealCommandExecutor{}

	err := executor.RunStreamingCommand(context.Background(), nil, "sh", "-c", "exit 2")

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.ExitCode())
}

func TestRealCommandExecutor_RunStreamingCommandSpawnFailure(t *testing.T) {
	executor := &RealCommandExecutor{}

	err := executor.RunStreamingCommand(context.Background(), nil, "nonexistent-command-ssocreds")

	require.Error(t, err)
	var exitErr *exec.ExitError
	assert.False(t, errors.As(err, &exitErr))
}

func TestRealCommandExecutor_LookPath(t *testing.T) {
	executor := &RealCommandExecutor{}

	path, err := executor.LookPath("sh")
	assert.NoError(t, err)
	assert.NotEmpty(t, path)
}

func TestRealCommandExecutor_RunStreamingCommandCancelled(t *testing.T) {
	executor := &RealCommandExecutor{}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := executor.RunStreamingCommand(ctx, nil, "sleep", "10")

	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
