/*
Package main is the entry point for the collabup recommendation service.

Usage:

	collabup [command]

Available Commands:

	serve       Run the HTTP API
	mcp         Run the MCP server (stdio transport)
	seed        Load records from a JSON file into the store
	query       Rank records against a query and print the result
	version     Show build information
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/0Anshu1/collabup-be/internal/config"
	"github.com/0Anshu1/collabup-be/internal/version"
)

// rootOptions are the flags shared by every command.
type rootOptions struct {
	env        string
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "collabup",
		Short: "Fuzzy recommendation service for projects, startups, mentors and research",
		Long: `collabup ranks student projects, startup projects, mentor profiles and
research projects against a free-text query using keyword categorization
and weighted fuzzy field matching.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.env, "env", "e", config.GetEnv(), "Environment name, selects config/<env>.yaml")
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Explicit config file path (overrides --env lookup)")

	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newMCPCmd(opts))
	cmd.AddCommand(newSeedCmd(opts))
	cmd.AddCommand(newQueryCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
