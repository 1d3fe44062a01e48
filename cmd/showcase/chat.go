package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhpenta/showcase"
	"github.com/mhpenta/showcase/surface"
)

func newChatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat with the standard model (one line per message, /exit to quit)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			bot, err := surface.NewChatBot(ctx, a.gateway, a.logger)
			if err != nil {
				return a.fail(err)
			}

			for _, m := range bot.Messages() {
				a.out.Markdown(m.Text)
			}

			return readLines(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), a.out.Prompt("you> "), func(line string) error {
				reply, err := bot.Send(ctx, line)
				if errors.Is(err, surface.ErrBlankInput) {
					return nil
				}
				if err != nil {
					return err
				}
				a.out.Markdown(reply.Text)
				return nil
			})
		},
	}
}

func newStreamCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stream",
		Short: "Stream fast responses from the low-latency model (/exit to quit)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ll, err := surface.NewLowLatency(ctx, a.gateway)
			if err != nil {
				return a.fail(err)
			}

			return readLines(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), a.out.Prompt("ask> "), func(line string) error {
				if strings.TrimSpace(line) == "" {
					return nil
				}
				a.out.Hint(surface.StreamWaiting)

				_, err := ll.Send(ctx, line, a.out.Plain)
				a.out.Plain("\n")
				if showcase.IsOpError(err) {
					a.out.Status(ll.Status())
					ll.Dismiss()
					return nil
				}
				return err
			})
		},
	}
}

// readLines runs handle for every line of in until EOF, "/exit" or ctx is
// done. Input is read in the background so an interrupt ends the loop even
// while waiting for a line.
func readLines(ctx context.Context, in io.Reader, out io.Writer, prompt string, handle func(string) error) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, prompt)

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				return <-scanErr
			}
			line = l
		}

		if strings.TrimSpace(line) == "/exit" {
			return nil
		}
		if err := handle(line); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}
