package main

import (
	"fmt"
	"os"

	"github.com/aretw0/storyview"
	"github.com/aretw0/storyview/internal/cli"
	"github.com/aretw0/storyview/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storyview [dir]",
	Short: "Page through story documents one section at a time",
	Long: `storyview lists the story files of a directory and shows the chosen one
section by section, asking for confirmation before each step.

Answer y to continue, n to go back to the file list, q to quit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		if !cmd.Flags().Changed("dir") && len(args) > 0 {
			dir = args[0]
		}
		configPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")
		markdown, _ := cmd.Flags().GetBool("markdown")
		noBanner, _ := cmd.Flags().GetBool("no-banner")

		return cli.Execute(cli.RunOptions{
			ConfigPath: configPath,
			Dir:        dir,
			Debug:      debug,
			Markdown:   markdown,
			NoBanner:   noBanner,
			Version:    storyview.Version,
		})
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Configuration file (JSON or YAML)")
	rootCmd.Flags().String("dir", "", "Directory to list (prompted for when empty)")
	rootCmd.Flags().Bool("debug", false, "Write debug logs to stderr")
	rootCmd.Flags().Bool("markdown", false, "Render section content as markdown")
	rootCmd.Flags().Bool("no-banner", false, "Do not print the banner")
	rootCmd.SilenceErrors = true
}
