package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simeg/git-x-sub001/internal/config"
	"github.com/simeg/git-x-sub001/internal/git"
	"github.com/simeg/git-x-sub001/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage git-x configuration.

Global config: ~/.config/git-x/config.toml
Local config:  .git-x.toml (in the repository root)`,
		Example: `  git-x config init   # Create default global config
  git-x config show   # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Long: `Create the default config file at ~/.config/git-x/config.toml.

Every setting is written out with a comment describing it.`,
		Example: `  git-x config init      # Create global config
  git-x config init -f   # Overwrite existing config`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Init(force)
			if err != nil {
				return fmt.Errorf("%w (use -f to overwrite)", err)
			}
			output.FromContext(cmd.Context()).Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show the effective configuration as TOML.

Inside a repository the repo's .git-x.toml is merged over the global config.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.ResolverFromContext(ctx).Global()

			if root, err := git.RepoRoot(ctx, config.WorkDirFromContext(ctx)); err == nil {
				local, err := config.ResolverFromContext(ctx).ConfigForRepo(root)
				if err != nil {
					return err
				}
				cfg = local
			}

			output.FromContext(ctx).Print(cfg.String())
			return nil
		},
	}

	return cmd
}
