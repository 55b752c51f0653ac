package root

import (
	"os"

	cmdCreds "github.com/BerryBytes/ssocreds/cmd/creds"
	"github.com/BerryBytes/ssocreds/internal/config"
	credsSvc "github.com/BerryBytes/ssocreds/internal/creds"
	errUtils "github.com/BerryBytes/ssocreds/internal/errors"
	"github.com/BerryBytes/ssocreds/internal/logger"
	"github.com/BerryBytes/ssocreds/internal/repository"
	"github.com/BerryBytes/ssocreds/internal/sso"
	"github.com/BerryBytes/ssocreds/utils/common"
	generalUtils "github.com/BerryBytes/ssocreds/utils/general"
	promptUtils "github.com/BerryBytes/ssocreds/utils/prompt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type Options struct {
	Config *config.Config
	// Build is called after flags are applied to Config.
	Build func(cfg *config.Config) *cmdCreds.Dependencies
}

func NewRootCmd(opts Options) *cobra.Command {
	cfg := opts.Config
	deps := &cmdCreds.Dependencies{}

	rootCmd := &cobra.Command{
		Use:   "ssocreds",
		Short: "AWS SSO credentials helper",
		Long: `A CLI tool that exchanges AWS SSO sessions for role credentials
and writes them to the shared credentials file.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return errUtils.Usage("%v", err)
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			var err error
			if cfg.BaseDir, err = flags.GetString("aws-dir"); err != nil {
				return err
			}
			if cfg.LoginCommand, err = flags.GetString("login-command"); err != nil {
				return err
			}
			if cfg.LogLevel, err = flags.GetString("log-level"); err != nil {
				return err
			}
			if err := logger.SetLevel(cfg.LogLevel); err != nil {
				return errUtils.Usage("%v", err)
			}

			logger.Debug("Using configuration", "aws_dir", cfg.BaseDir, "login_command", cfg.LoginCommand, "default_profile", cfg.DefaultProfile)
			*deps = *opts.Build(cfg)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errUtils.Usage("%v", err)
	})

	rootCmd.PersistentFlags().String("aws-dir", cfg.BaseDir, "Directory holding the AWS config, credentials and sso/cache")
	rootCmd.PersistentFlags().String("login-command", cfg.LoginCommand, "AWS CLI used for \"sso login\"")
	rootCmd.PersistentFlags().String("log-level", cfg.LogLevel, "Log level: debug, info, warn or error")

	rootCmd.AddCommand(cmdCreds.NewCredsCommands(deps)...)
	rootCmd.AddCommand(VersionCmd(deps))

	return rootCmd
}

// DefaultDependencies wires the file repositories, the AWS CLI login and the SDK clients.
func DefaultDependencies(cfg *config.Config) *cmdCreds.Dependencies {
	fs := afero.NewOsFs()
	executor := &common.RealCommandExecutor{}

	configRepo := repository.NewFileConfigRepository(fs, cfg.ConfigPath())
	service := credsSvc.NewService(
		configRepo,
		repository.NewFileTokenCacheRepository(fs, cfg.TokenCacheDir()),
		repository.NewFileCredentialsRepository(fs, cfg.CredentialsPath()),
		sso.NewCLILoginRunner(executor, cfg.LoginCommand),
		sso.NewSDKExchanger(),
		generalUtils.LoginOutputPrinter(os.Stdout, os.Stderr),
	)

	return &cmdCreds.Dependencies{
		Service:        service,
		ConfigRepo:     configRepo,
		Verifier:       sso.NewSTSIdentityVerifier(),
		GeneralManager: generalUtils.NewGeneralUtilsManager(executor, cfg.LoginCommand),
		Prompter:       promptUtils.NewPrompt(),
		DefaultProfile: cfg.DefaultProfile,
	}
}
