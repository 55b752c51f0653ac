package root

import (
	"fmt"

	cmdCreds "github.com/BerryBytes/ssocreds/cmd/creds"
	"github.com/BerryBytes/ssocreds/internal/logger"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X github.com/BerryBytes/ssocreds/cmd/root.Version=...".
var Version = "dev"

func VersionCmd(deps *cmdCreds.Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ssocreds and AWS CLI versions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ssocreds %s\n", Version)

			awsVersion, err := deps.GeneralManager.AWSCLIVersion()
			if err != nil {
				logger.Debug("AWS CLI version unavailable", "err", err)
				awsVersion = "not found"
			}
			fmt.Fprintf(out, "AWS CLI: %s\n", awsVersion)
		},
	}
}
