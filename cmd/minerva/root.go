package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/minerva/internal/config"
	"github.com/aretw0/minerva/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "minerva",
	Short: "MinervaBot is the menu chatbot of the Centro de Formación Minerva",
	Long: `MinervaBot walks each user through a fixed menu of courses.
Every user has an independent position in the menu; replies are chosen by
exact match of the typed option.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("graph", "", "Graph file (YAML or JSON); the built-in menu when empty")
	rootCmd.PersistentFlags().String("start", "", "Override the start node of the graph")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (text or json)")
	rootCmd.PersistentFlags().String("env-file", ".env", "Optional dotenv file")
}

// loadConfig reads the environment and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	override := func(name string, dst *string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	override("graph", &cfg.GraphFile)
	override("start", &cfg.StartNode)
	override("log-level", &cfg.LogLevel)
	override("log-format", &cfg.LogFormat)

	if flags.Lookup("addr") != nil {
		override("addr", &cfg.Addr)
	}
	if flags.Lookup("redis") != nil {
		override("redis", &cfg.RedisAddr)
	}
	if flags.Lookup("metrics") != nil && flags.Changed("metrics") {
		cfg.Metrics, _ = flags.GetBool("metrics")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// quietLogger keeps terminal commands silent unless a level was asked for.
func quietLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	if !cmd.Flags().Changed("log-level") && os.Getenv(config.Prefix+"_LOG_LEVEL") == "" {
		return logging.NewNop()
	}
	return cfg.Logger()
}
