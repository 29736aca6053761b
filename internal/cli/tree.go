package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tidyfile/tidyfile/internal/config"
	"github.com/tidyfile/tidyfile/internal/display"
	"github.com/tidyfile/tidyfile/internal/project"
)

func newTreeCmd() *cobra.Command {
	var configPath, projName string
	cmd := &cobra.Command{
		Use:          "tree",
		Short:        "Print a project's folder tree",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			proj, err := cfg.Project(projName)
			if err != nil {
				return err
			}
			tree, err := project.Build(proj)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), display.Tree(tree))
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath(), "path to the TOML config file")
	cmd.Flags().StringVarP(&projName, "project", "p", "", "project to print")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}
