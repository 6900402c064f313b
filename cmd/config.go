package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clems4ever/kmltools/internal/config"
)

// NewConfigCommand groups the configuration file commands.
func NewConfigCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Manage the kmltools configuration file",
	}
	c.AddCommand(newConfigInitCommand())
	return c
}

func newConfigInitCommand() *cobra.Command {
	var path string
	var force bool
	c := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file holding the defaults",
		Long: `Write the default configuration (log level, indent, timestamps) to
$XDG_CONFIG_HOME/kmltools/config.yaml, or to --config. An existing file is
kept unless --force is given.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, _ []string) error {
			if path == "" {
				path = config.ConfigPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to replace it", path)
			}
			if err := config.DefaultConfig().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Configuration written to %s\n", path)
			return nil
		},
	}
	c.Flags().StringVar(&path, "config", "", "Path to configuration file (default $XDG_CONFIG_HOME/kmltools/config.yaml)")
	c.Flags().BoolVar(&force, "force", false, "Replace an existing configuration file")
	return c
}
