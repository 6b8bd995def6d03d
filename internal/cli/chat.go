package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/minerva/internal/presentation/tui"
	"github.com/aretw0/minerva/pkg/domain"
	"github.com/aretw0/minerva/pkg/graph"
)

// Bot is the part of minerva.Bot the chat loop drives.
type Bot interface {
	Reply(ctx context.Context, userID, message string) (domain.Reply, error)
	Graph() *graph.Graph
}

// ChatOptions configures an interactive conversation.
type ChatOptions struct {
	User     string
	In       io.Reader
	Out      io.Writer
	Renderer tui.Renderer
	Quiet    bool // no prompts or system messages
}

// exitCommands end the loop without reaching the bot.
var exitCommands = map[string]bool{"/salir": true, "/exit": true, "/quit": true}

// Chat runs a conversation reading one message per line until the input ends,
// an exit command is typed or ctx is cancelled.
func Chat(ctx context.Context, bot Bot, opts ChatOptions) error {
	if opts.Renderer == nil {
		opts.Renderer = tui.PlainRenderer()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(opts.In)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	if !opts.Quiet {
		printSystemMessage(opts.Out, "Conversación de '%s'. Escribe /salir para terminar.", opts.User)
	}

	for {
		if !opts.Quiet {
			fmt.Fprint(opts.Out, "> ")
		}

		var line string
		select {
		case <-ctx.Done():
			return nil
		case l, ok := <-lines:
			if !ok {
				if !opts.Quiet {
					fmt.Fprintln(opts.Out)
				}
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}
			line = l
		}

		if exitCommands[strings.TrimSpace(line)] {
			if !opts.Quiet {
				printSystemMessage(opts.Out, "¡Hasta pronto!")
			}
			return nil
		}

		reply, err := bot.Reply(ctx, opts.User, line)
		if err != nil {
			return fmt.Errorf("reply failed: %w", err)
		}

		out, err := opts.Renderer(reply.Response)
		if err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		fmt.Fprint(opts.Out, out)

		if n, ok := bot.Graph().Node(reply.State); ok && n.IsTerminal() && !opts.Quiet {
			printSystemMessage(opts.Out, "Fin de la conversación. Escribe /salir para terminar.")
		}
	}
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}
