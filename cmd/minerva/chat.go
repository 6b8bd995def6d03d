package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/minerva/internal/cli"
	"github.com/aretw0/minerva/internal/presentation/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the bot in the terminal",
	Long: `Reads one message per line from Stdin and prints each reply.
On an interactive terminal replies are rendered as markdown; otherwise they
are printed as plain text so the command can be scripted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger := quietLogger(cmd, cfg)
		user, _ := cmd.Flags().GetString("user")
		plain, _ := cmd.Flags().GetBool("plain")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		bot, closeStore, err := cli.NewBot(ctx, cfg, logger, cli.DebugHooks(logger))
		if err != nil {
			return err
		}
		defer closeStore()

		opts := cli.ChatOptions{
			User:     user,
			In:       os.Stdin,
			Out:      os.Stdout,
			Renderer: tui.PlainRenderer(),
			Quiet:    true,
		}
		if !plain && term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd())) {
			renderer, err := tui.NewRenderer()
			if err != nil {
				return err
			}
			tui.PrintBanner(os.Stdout)
			opts.Renderer = renderer
			opts.Quiet = false
		}

		return cli.Chat(ctx, bot, opts)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().StringP("user", "u", "terminal", "User identifier of the conversation")
	chatCmd.Flags().Bool("plain", false, "Print replies as plain text even on a terminal")
}
