package creds

import (
	credsSvc "github.com/BerryBytes/ssocreds/internal/creds"
	"github.com/BerryBytes/ssocreds/internal/repository"
	"github.com/BerryBytes/ssocreds/internal/sso"
	generalUtils "github.com/BerryBytes/ssocreds/utils/general"
	promptutils "github.com/BerryBytes/ssocreds/utils/prompt"

	"github.com/spf13/cobra"
)

// Dependencies are filled in by the root command once flags are parsed,
// so commands must only read them inside RunE.
type Dependencies struct {
	Service        credsSvc.Setter
	ConfigRepo     repository.ConfigRepository
	Verifier       sso.IdentityVerifier
	GeneralManager generalUtils.GeneralUtilsInterface
	Prompter       promptutils.Prompter
	DefaultProfile string
}

func NewCredsCommands(deps *Dependencies) []*cobra.Command {
	return []*cobra.Command{
		SetCmd(deps),
		ProfilesCmd(deps),
	}
}
