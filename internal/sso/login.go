package sso

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/BerryBytes/ssocreds/internal/logger"
	"github.com/BerryBytes/ssocreds/utils/common"
)

// LoginRunner starts an interactive SSO login for a profile.
type LoginRunner interface {
	Login(ctx context.Context, profile string, onLine common.LineHandler) error
}

// LoginError reports a login subprocess that could not be started or did not exit 0.
// ExitCode is -1 when the process never ran or was killed by a signal.
type LoginError struct {
	Profile  string
	ExitCode int
	Err      error
}

func (e *LoginError) Error() string {
	if e.ExitCode > 0 {
		return fmt.Sprintf("sso login for profile %q failed with exit code %d", e.Profile, e.ExitCode)
	}
	return fmt.Sprintf("sso login for profile %q failed: %v", e.Profile, e.Err)
}

func (e *LoginError) Unwrap() error {
	return e.Err
}

type CLILoginRunner struct {
	Executor common.CommandExecutor
	// Command is the AWS CLI binary, "aws" unless configured otherwise.
	Command string
}

func NewCLILoginRunner(executor common.CommandExecutor, command string) *CLILoginRunner {
	if executor == nil {
		executor = &common.RealCommandExecutor{}
	}
	if command == "" {
		command = "aws"
	}
	return &CLILoginRunner{Executor: executor, Command: command}
}

// Login runs `aws sso login --profile <profile>` and blocks until it exits.
// Output is streamed to onLine while the process runs.
func (r *CLILoginRunner) Login(ctx context.Context, profile string, onLine common.LineHandler) error {
	args := []string{"sso", "login", "--profile", profile}
	logger.Debug("Starting SSO login", "command", r.Command, "args", args)

	err := r.Executor.RunStreamingCommand(ctx, onLine, r.Command, args...)
	if err == nil {
		logger.Debug("SSO login finished", "profile", profile)
		return nil
	}

	loginErr := &LoginError{Profile: profile, ExitCode: -1, Err: err}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		loginErr.ExitCode = exitErr.ExitCode()
	}
	return loginErr
}
