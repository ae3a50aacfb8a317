package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultConfigFile = ".uikit.yaml"

const defaultConfig = `# uikit configuration
# Docs: https://github.com/yacobolo/uikit

# Theme stylesheets (:root plus [data-theme="..."] blocks)
theme:
  source: web/themes
  include:
    - "**/*.css"
  # Theme to resolve against; empty means the :root theme
  name: ""
  gitignore: true

# Widget manifest
manifest: widgets.yaml

resolve:
  output-format: css # css, json, preview

check:
  output-format: issues # issues, json
  strict: false
  print-lines: true
  print-linter-name: true

# Logging: debug, info, warn, error
log-level: warn
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default .uikit.yaml config file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", defaultConfigFile, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
