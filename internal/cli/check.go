package cli

import (
	"github.com/spf13/cobra"

	"github.com/tidyfile/tidyfile/internal/check"
	"github.com/tidyfile/tidyfile/internal/config"
	"github.com/tidyfile/tidyfile/internal/logging"
)

func newCheckCmd() *cobra.Command {
	var configPath string
	var verbose bool
	cmd := &cobra.Command{
		Use:          "check",
		Short:        "Validate the configuration and project folder trees",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			log, err := logging.New(logging.Options{Verbose: verbose})
			if err != nil {
				return err
			}
			defer log.Close()
			check.Run(cfg, log)
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath(), "path to the TOML config file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug output")
	return cmd
}
