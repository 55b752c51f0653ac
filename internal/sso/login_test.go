package sso_test

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BerryBytes/ssocreds/internal/sso"
	mock_ssocreds "github.com/BerryBytes/ssocreds/tests/mock"
	"github.com/BerryBytes/ssocreds/utils/common"
)

func TestNewCLILoginRunner_Defaults(t *testing.T) {
	r := sso.NewCLILoginRunner(nil, "")
	assert.Equal(t, "aws", r.Command)
	assert.IsType(t, &common.RealCommandExecutor{}, r.Executor)

	r = sso.NewCLILoginRunner(nil, "/opt/aws/bin/aws")
	assert.Equal(t, "/opt/aws/bin/aws", r.Command)
}

func TestCLILoginRunner_Login(t *testing.T) {
	exitErr := exec.Command("sh", "-c", "exit 2").Run()
	require.Error(t, exitErr)

	tests := []struct {
		name         string
		runErr       error
		wantErr      bool
		wantExitCode int
		wantMessage  string
	}{
		{
			name: "success",
		},
		{
			name:         "non-zero exit",
			runErr:       exitErr,
			wantErr:      true,
			wantExitCode: 2,
			wantMessage:  `sso login for profile "dev" failed with exit code 2`,
		},
		{
			name:         "cannot start",
			runErr:       errors.New(`exec: "aws": executable file not found in $PATH`),
			wantErr:      true,
			wantExitCode: -1,
			wantMessage:  `sso login for profile "dev" failed: exec: "aws": executable file not found in $PATH`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockExecutor := mock_ssocreds.NewMockCommandExecutor(ctrl)
			mockExecutor.EXPECT().
				RunStreamingCommand(gomock.Any(), gomock.Any(), "aws", "sso", "login", "--profile", "dev").
				Return(tt.runErr)

			runner := sso.NewCLILoginRunner(mockExecutor, "aws")
			err := runner.Login(context.Background(), "dev", func(common.Stream, string) {})

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var loginErr *sso.LoginError
			require.ErrorAs(t, err, &loginErr)
			assert.Equal(t, "dev", loginErr.Profile)
			assert.Equal(t, tt.wantExitCode, loginErr.ExitCode)
			assert.Equal(t, tt.wantMessage, err.Error())
			assert.ErrorIs(t, err, tt.runErr)
		})
	}
}

func TestCLILoginRunner_LoginForwardsOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExecutor := mock_ssocreds.NewMockCommandExecutor(ctrl)
	mockExecutor.EXPECT().
		RunStreamingCommand(gomock.Any(), gomock.Any(), "aws2", "sso", "login", "--profile", "prod").
		DoAndReturn(func(_ context.Context, onLine common.LineHandler, _ string, _ ...string) error {
			onLine(common.Stdout, "Attempting to automatically open the SSO authorization page")
			onLine(common.Stderr, "Successfully logged into Start URL")
			return nil
		})

	var got []string
	runner := sso.NewCLILoginRunner(mockExecutor, "aws2")
	err := runner.Login(context.Background(), "prod", func(stream common.Stream, line string) {
		got = append(got, string(stream)+": "+line)
	})

	require.NoError(t, err)
	assert.Equal(t, []string{
		"stdout: Attempting to automatically open the SSO authorization page",
		"stderr: Successfully logged into Start URL",
	}, got)
}
