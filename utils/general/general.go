package generalutils

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/BerryBytes/ssocreds/models"
	"github.com/BerryBytes/ssocreds/utils/common"
)

type GeneralUtilsInterface interface {
	CheckAWSCLI() error
	AWSCLIVersion() (string, error)
	HandleSignals() context.Context
	PrintCredentials(out io.Writer, result *models.SetCredsResult, identity *models.CallerIdentity)
}

type DefaultGeneralUtilsManager struct {
	Executor     common.CommandExecutor
	LoginCommand string
}

func (d *DefaultGeneralUtilsManager) CheckAWSCLI() error {
	if _, err := d.Executor.LookPath(d.LoginCommand); err != nil {
		return fmt.Errorf("AWS CLI not found: %w", err)
	}
	return nil
}

func (d *DefaultGeneralUtilsManager) AWSCLIVersion() (string, error) {
	out, err := d.Executor.RunCommand(d.LoginCommand, "--version")
	if err != nil {
		return "", fmt.Errorf("failed to get AWS CLI version: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// HandleSignals returns a context cancelled on SIGINT or SIGTERM. Cancelling it
// kills a running login subprocess.
func (d *DefaultGeneralUtilsManager) HandleSignals() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		fmt.Fprintf(os.Stderr, "Received termination signal: %v\n", sig)
		cancel()
	}()

	return ctx
}

func (d *DefaultGeneralUtilsManager) PrintCredentials(out io.Writer, result *models.SetCredsResult, identity *models.CallerIdentity) {
	roleARN := "-"
	if identity != nil && identity.Arn != "" {
		roleARN = identity.Arn
	}
	expiration := "-"
	if result.NewCreds != nil && !result.NewCreds.Expiration.IsZero() {
		expiration = result.NewCreds.Expiration.Local().Format(time.RFC1123)
	}

	fmt.Fprintf(out, `
AWS Credentials Updated:
---------------------------------
Profile         : %s
Credentials Key : %s
Account Id      : %s
Role Name       : %s
Role ARN        : %s
Expiration      : %s
---------------------------------
`, result.Profile, result.CredKey, result.AccountID, result.RoleName, roleARN, expiration)
}

// LoginOutputPrinter copies login output lines to the matching writer.
func LoginOutputPrinter(stdout, stderr io.Writer) common.LineHandler {
	return func(stream common.Stream, line string) {
		w := stdout
		if stream == common.Stderr {
			w = stderr
		}
		fmt.Fprintln(w, line)
	}
}

func NewGeneralUtilsManager(executor common.CommandExecutor, loginCommand string) GeneralUtilsInterface {
	if executor == nil {
		executor = &common.RealCommandExecutor{}
	}
	if loginCommand == "" {
		loginCommand = "aws"
	}
	return &DefaultGeneralUtilsManager{Executor: executor, LoginCommand: loginCommand}
}
