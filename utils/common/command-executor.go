package common

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/exec"
	"sync"
)

const maxLineSize = 1024 * 1024

type RealCommandExecutor struct{}

func (e *RealCommandExecutor) RunCommand(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	return cmd.Output()
}

// RunStreamingCommand runs name with the caller's stdin and hands every stdout and
// stderr line to onLine as soon as it is read. It returns once the process has
// exited and both streams are drained; a non-zero exit surfaces as *exec.ExitError.
func (e *RealCommandExecutor) RunStreamingCommand(ctx context.Context, onLine LineHandler, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	forward := func(stream Stream, r io.Reader) {
		defer wg.Done()
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			if onLine == nil {
				continue
			}
			mu.Lock()
			onLine(stream, scanner.Text())
			mu.Unlock()
		}
		// keep the child from blocking on a full pipe after an oversized line
		_, _ = io.Copy(io.Discard, r)
	}

	wg.Add(2)
	go forward(Stdout, stdout)
	go forward(Stderr, stderr)
	wg.Wait()

	return cmd.Wait()
}

func (e *RealCommandExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}
