package creds

import (
	"errors"
	"fmt"
	"strconv"

	credsSvc "github.com/BerryBytes/ssocreds/internal/creds"
	errUtils "github.com/BerryBytes/ssocreds/internal/errors"
	"github.com/BerryBytes/ssocreds/internal/logger"
	"github.com/BerryBytes/ssocreds/internal/profile"
	"github.com/BerryBytes/ssocreds/models"
	promptutils "github.com/BerryBytes/ssocreds/utils/prompt"

	"github.com/spf13/cobra"
)

func SetCmd(deps *Dependencies) *cobra.Command {
	setCmd := &cobra.Command{
		Use:   "set [profile]",
		Short: "Write role credentials for an SSO profile",
		Long: `Resolve short-lived role credentials for an AWS SSO profile and write them
to the shared credentials file.

A cached SSO token is used when it is still valid. Otherwise, or with --force,
"aws sso login" is run first.`,
		Example: `  ssocreds set dev
  ssocreds set dev --key default
  ssocreds set --select --verify
  ssocreds set dev --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, err := forceFlag(cmd)
			if err != nil {
				return err
			}
			key, err := cmd.Flags().GetString("key")
			if err != nil {
				return fmt.Errorf("could not get key flag: %w", err)
			}
			verify, err := cmd.Flags().GetBool("verify")
			if err != nil {
				return fmt.Errorf("could not get verify flag: %w", err)
			}
			selectProfile, err := cmd.Flags().GetBool("select")
			if err != nil {
				return fmt.Errorf("could not get select flag: %w", err)
			}

			profileName, err := profileArg(deps, args, selectProfile)
			if errors.Is(err, promptutils.ErrInterrupted) {
				return nil
			} else if err != nil {
				return err
			}

			if err := deps.GeneralManager.CheckAWSCLI(); err != nil {
				logger.Warn("SSO login will fail if a new token is needed", "err", err)
			}

			ctx := deps.GeneralManager.HandleSignals()
			result, err := deps.Service.SetCreds(ctx, credsSvc.Request{
				Profile: profileName,
				CredKey: key,
				Force:   force,
			})
			if err != nil {
				return err
			}

			var identity *models.CallerIdentity
			if verify {
				identity, err = deps.Verifier.CallerIdentity(ctx, result.Region, result.NewCreds)
				if err != nil {
					return fmt.Errorf("credentials for %q were written but could not be verified: %w", result.CredKey, err)
				}
			}

			deps.GeneralManager.PrintCredentials(cmd.OutOrStdout(), result, identity)
			return nil
		},
	}

	setCmd.Flags().StringP("key", "k", "", "Credentials file entry to write (defaults to the profile name)")
	setCmd.Flags().StringP("force", "f", "false", "Run SSO login even if a valid token is cached")
	setCmd.Flags().Lookup("force").NoOptDefVal = "true"
	setCmd.Flags().Bool("verify", false, "Check the new credentials with STS GetCallerIdentity")
	setCmd.Flags().BoolP("select", "s", false, "Pick the profile interactively")

	return setCmd
}

// forceFlag accepts the same spellings as strconv.ParseBool.
func forceFlag(cmd *cobra.Command) (bool, error) {
	value, err := cmd.Flags().GetString("force")
	if err != nil {
		return false, fmt.Errorf("could not get force flag: %w", err)
	}
	force, err := strconv.ParseBool(value)
	if err != nil {
		return false, errUtils.Usage("invalid value %q for --force: expected true or false", value)
	}
	return force, nil
}

func profileArg(deps *Dependencies, args []string, selectProfile bool) (string, error) {
	if !selectProfile {
		if len(args) == 1 {
			return args[0], nil
		}
		return deps.DefaultProfile, nil
	}

	if len(args) == 1 {
		return "", errUtils.Usage("--select cannot be combined with a profile argument")
	}

	raw, err := deps.ConfigRepo.Load()
	if err != nil {
		return "", err
	}
	names := profile.Names(raw)
	if len(names) == 0 {
		return "", errUtils.Known(errUtils.ErrProfileNotFound,
			"No profiles are configured.",
			"Run `aws configure sso` to create one.",
		)
	}
	return deps.Prompter.PromptForSelection("Select an AWS profile", names)
}
