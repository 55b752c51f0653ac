package main

import (
	"os"

	"github.com/BerryBytes/ssocreds/cmd/root"
	"github.com/BerryBytes/ssocreds/internal/config"

	"github.com/spf13/afero"
)

func main() {
	cfg, err := config.NewConfig(afero.NewOsFs())
	if err != nil {
		root.HandleError(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := root.NewRootCmd(root.Options{
		Config: cfg,
		Build:  root.DefaultDependencies,
	})
	if err := rootCmd.Execute(); err != nil {
		root.HandleError(os.Stderr, err)
		os.Exit(1)
	}
}
