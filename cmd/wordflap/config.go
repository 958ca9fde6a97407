package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordflap/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the embedded default configuration as YAML.

Save it as ~/.wordflap/configs/wordflap.yaml and edit the values you want to
change; missing keys keep their defaults.

Examples:
  wordflap config > ~/.wordflap/configs/wordflap.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
