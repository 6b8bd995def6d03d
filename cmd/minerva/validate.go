package main

import (
	"fmt"

	"github.com/aretw0/minerva"
	"github.com/aretw0/minerva/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check the graph for consistency",
	Long: `Loads the graph and reports duplicate ids, options pointing to missing nodes
and nodes that cannot be reached from the start node.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if len(args) > 0 {
			cfg.GraphFile = args[0]
		}
		strict, _ := cmd.Flags().GetBool("strict")

		loader, err := cli.NewLoader(cfg.GraphFile, cfg.StartNode)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		bot, err := minerva.New(minerva.WithLoader(loader))
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		g := bot.Graph()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Graph %s: %d nodes, start '%s', terminal %v\n", graphSource(cfg.GraphFile), g.Len(), g.Start(), g.Terminals())

		if orphans := g.Unreachable(); len(orphans) > 0 {
			fmt.Fprintf(out, "Unreachable nodes: %v\n", orphans)
			if strict {
				return fmt.Errorf("validation failed: %d unreachable nodes", len(orphans))
			}
		}
		fmt.Fprintln(out, "Graph is valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("strict", false, "Fail when some node is unreachable")
}
