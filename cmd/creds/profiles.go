package creds

import (
	"fmt"
	"text/tabwriter"

	"github.com/BerryBytes/ssocreds/internal/profile"

	"github.com/spf13/cobra"
)

func ProfilesCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the profiles in the AWS config file",
		Long: `List profiles in the order they appear in the AWS config file.

STATUS is "ok" when the profile has everything "ssocreds set" needs,
"incomplete" when SSO fields are missing and "shared-url" when another
profile uses the same sso_start_url.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := deps.ConfigRepo.Load()
			if err != nil {
				return err
			}

			candidates := profile.Candidates(raw)
			if len(candidates) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No profiles found.")
				return nil
			}

			urlCount := make(map[string]int)
			for _, c := range candidates {
				if c.Config.SSOStartURL != "" {
					urlCount[c.Config.SSOStartURL]++
				}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PROFILE\tSTATUS\tACCOUNT\tROLE\tSTART URL")
			for _, c := range candidates {
				status := "ok"
				switch {
				case !c.Config.IsValid():
					status = "incomplete"
				case urlCount[c.Config.SSOStartURL] > 1:
					status = "shared-url"
				}
				name := c.Config.Name
				if name == deps.DefaultProfile {
					name += " *"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					name, status, dash(c.Config.SSOAccountID), dash(c.Config.SSORoleName), dash(c.Config.SSOStartURL))
			}
			return w.Flush()
		},
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
