package main

import (
	"errors"
	"fmt"

	"github.com/aretw0/minerva/internal/cli"
	"github.com/aretw0/minerva/internal/presentation/graph"
	"github.com/aretw0/minerva/pkg/adapters/file"
	"github.com/aretw0/minerva/pkg/domain"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the menu graph",
	Long: `Outputs the menu as a Mermaid diagram (graph TD) or as a YAML/JSON graph
file that can be edited and loaded back with --graph.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger := quietLogger(cmd, cfg)
		format, _ := cmd.Flags().GetString("format")
		user, _ := cmd.Flags().GetString("user")

		bot, closeStore, err := cli.NewBot(cmd.Context(), cfg, logger, domain.LifecycleHooks{})
		if err != nil {
			return err
		}
		defer closeStore()
		g := bot.Graph()

		switch format {
		case "mermaid":
			var overlay *graph.GraphOverlay
			if user != "" {
				current := g.Start()
				s, err := bot.Store().Load(cmd.Context(), user)
				switch {
				case err == nil:
					current = s.NodeID
				case !errors.Is(err, domain.ErrSessionNotFound):
					return fmt.Errorf("failed to load session of %s: %w", user, err)
				}
				overlay = &graph.GraphOverlay{CurrentNode: current}
			}
			fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(g.Start(), g.Nodes(), overlay))
			return nil
		case "yaml", "json":
			return file.Export(cmd.OutOrStdout(), file.Format(format), g.Start(), g.Nodes())
		default:
			return fmt.Errorf("unknown format %q (expected mermaid, yaml or json)", format)
		}
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringP("format", "f", "mermaid", "Output format: mermaid, yaml or json")
	graphCmd.Flags().String("user", "", "Highlight the current node of this user (mermaid only)")
}
