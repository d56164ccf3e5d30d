package main

import (
	"fmt"

	"github.com/aretw0/storyview"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of storyview",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "storyview version %s\n", storyview.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
