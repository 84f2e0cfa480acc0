package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0Anshu1/collabup-be/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Version:  %s\nCommit:   %s\nBuilt:    %s\n",
				version.Version, version.Commit, version.Date)
			return err
		},
	}
}
