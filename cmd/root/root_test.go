package root

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cmdCreds "github.com/BerryBytes/ssocreds/cmd/creds"
	"github.com/BerryBytes/ssocreds/internal/config"
	credsSvc "github.com/BerryBytes/ssocreds/internal/creds"
	errUtils "github.com/BerryBytes/ssocreds/internal/errors"
	"github.com/BerryBytes/ssocreds/internal/logger"
	"github.com/BerryBytes/ssocreds/models"
	mock_ssocreds "github.com/BerryBytes/ssocreds/tests/mock"
)

func testConfig() *config.Config {
	return &config.Config{
		BaseDir:        "/home/u/.aws",
		LoginCommand:   "aws",
		LogLevel:       "warn",
		DefaultProfile: "default",
	}
}

type rootFixture struct {
	cfg     *config.Config
	built   *config.Config
	service *mock_ssocreds.MockSetter
	general *mock_ssocreds.MockGeneralUtilsInterface
}

func newRoot(t *testing.T, ctrl *gomock.Controller) (*rootFixture, Options) {
	t.Helper()
	f := &rootFixture{
		cfg:     testConfig(),
		service: mock_ssocreds.NewMockSetter(ctrl),
		general: mock_ssocreds.NewMockGeneralUtilsInterface(ctrl),
	}
	t.Cleanup(func() { require.NoError(t, logger.SetLevel("warn")) })

	return f, Options{
		Config: f.cfg,
		Build: func(cfg *config.Config) *cmdCreds.Dependencies {
			f.built = cfg
			return &cmdCreds.Dependencies{
				Service:        f.service,
				GeneralManager: f.general,
				DefaultProfile: cfg.DefaultProfile,
			}
		},
	}
}

func TestNewRootCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, opts := newRoot(t, ctrl)
	rootCmd := NewRootCmd(opts)

	assert.Equal(t, "ssocreds", rootCmd.Use)
	assert.Equal(t, "AWS SSO credentials helper", rootCmd.Short)
	assert.Contains(t, rootCmd.Long, "shared credentials file")

	var names []string
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Subset(t, names, []string{"set", "profiles", "version"})
}

func TestRootCmd_Execution(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectedOutput string
		expectUsageErr bool
		expectedErr    string
	}{
		{
			name:           "help command",
			args:           []string{"help"},
			expectedOutput: "Usage:",
		},
		{
			name:           "no args shows help",
			args:           []string{},
			expectedOutput: "Usage:",
		},
		{
			name:           "invalid command",
			args:           []string{"invalid"},
			expectUsageErr: true,
			expectedErr:    "unknown command",
		},
		{
			name:           "unknown flag",
			args:           []string{"set", "--nope"},
			expectUsageErr: true,
			expectedErr:    "unknown flag",
		},
		{
			name:           "bad log level",
			args:           []string{"--log-level", "loud", "version"},
			expectUsageErr: true,
			expectedErr:    "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			_, opts := newRoot(t, ctrl)
			rootCmd := NewRootCmd(opts)

			var outBuf bytes.Buffer
			rootCmd.SetOut(&outBuf)
			rootCmd.SetErr(&outBuf)
			rootCmd.SetArgs(tt.args)

			err := rootCmd.Execute()

			if tt.expectUsageErr {
				require.Error(t, err)
				var usage *errUtils.UsageError
				assert.ErrorAs(t, err, &usage)
				assert.Contains(t, err.Error(), tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, outBuf.String(), tt.expectedOutput)
		})
	}
}

func TestRootCmd_FlagsOverrideConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f, opts := newRoot(t, ctrl)
	f.general.EXPECT().AWSCLIVersion().Return("aws-cli/2.15.0", nil)

	rootCmd := NewRootCmd(opts)
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--aws-dir", "/tmp/aws", "--login-command", "aws2", "--log-level", "debug", "version"})
	require.NoError(t, rootCmd.Execute())

	require.NotNil(t, f.built)
	assert.Equal(t, "/tmp/aws", f.built.BaseDir)
	assert.Equal(t, "aws2", f.built.LoginCommand)
	assert.Equal(t, "debug", f.built.LogLevel)
	assert.Equal(t, "/tmp/aws/credentials", f.built.CredentialsPath())
}

func TestRootCmd_SetRunsService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f, opts := newRoot(t, ctrl)
	ctx := context.Background()
	result := &models.SetCredsResult{Profile: "default", CredKey: "default", NewCreds: &models.AWSCredentials{}}

	f.general.EXPECT().CheckAWSCLI().Return(nil)
	f.general.EXPECT().HandleSignals().Return(ctx)
	f.service.EXPECT().SetCreds(ctx, credsSvc.Request{Profile: "default"}).Return(result, nil)
	f.general.EXPECT().PrintCredentials(gomock.Any(), result, gomock.Nil())

	rootCmd := NewRootCmd(opts)
	rootCmd.SetArgs([]string{"set"})
	assert.NoError(t, rootCmd.Execute())
}

func TestVersionCmd(t *testing.T) {
	tests := []struct {
		name       string
		awsVersion string
		awsErr     error
		expected   string
	}{
		{name: "aws cli present", awsVersion: "aws-cli/2.15.0 Python/3.11.6", expected: "AWS CLI: aws-cli/2.15.0 Python/3.11.6"},
		{name: "aws cli missing", awsErr: errors.New("exec: not found"), expected: "AWS CLI: not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f, opts := newRoot(t, ctrl)
			f.general.EXPECT().AWSCLIVersion().Return(tt.awsVersion, tt.awsErr)

			rootCmd := NewRootCmd(opts)
			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetArgs([]string{"version"})
			require.NoError(t, rootCmd.Execute())

			assert.Contains(t, out.String(), "ssocreds "+Version)
			assert.Contains(t, out.String(), tt.expected)
		})
	}
}

func TestDefaultDependencies(t *testing.T) {
	deps := DefaultDependencies(testConfig())

	assert.NotNil(t, deps.Service)
	assert.NotNil(t, deps.ConfigRepo)
	assert.NotNil(t, deps.Verifier)
	assert.NotNil(t, deps.GeneralManager)
	assert.NotNil(t, deps.Prompter)
	assert.Equal(t, "default", deps.DefaultProfile)
}
