package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "uikit",
	Short: "Themed widget style resolver and checker",
	Long: `Resolve widget manifests against CSS custom-property themes.
Each widget becomes scoped style variables and presentation classes;
check reports invalid configuration and unknown tokens.`,
	// Default behavior: run resolve when no subcommand is given.
	// loadConfig is called here because PreRunE of resolveCmd is not
	// triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runResolve()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")
	pf.String("config", ".uikit.yaml", "Config file path")
	pf.String("source", "web/themes", "Directory containing theme stylesheets")
	pf.StringSlice("include", []string{"**/*.css"}, "Theme file patterns, relative to --source")
	pf.String("theme-name", "", "Theme to resolve against (default: the :root theme)")
	pf.Bool("gitignore", true, "Skip theme files matched by .gitignore")
	pf.StringP("manifest", "m", "widgets.yaml", "Widget manifest path")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
