package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhpenta/showcase"
	"github.com/mhpenta/showcase/surface"
)

func newThinkCmd(a *app) *cobra.Command {
	var prompt string

	cmd := &cobra.Command{
		Use:   "think [query]",
		Short: "Answer a complex query with the reasoning model and maximum thinking budget",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if prompt == "" {
				prompt = strings.Join(args, " ")
			}

			tm := surface.NewThinkingMode(a.gateway)

			if showcase.ValidatePrompt(prompt) == nil {
				a.out.Hint(surface.ThinkingWaiting + " (this may take a moment)")
			}
			text, err := tm.Submit(cmd.Context(), prompt)
			if err != nil {
				if st := tm.Status(); st != "" {
					a.out.Status(st)
					return err
				}
				return a.fail(err)
			}

			a.out.Markdown(text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "the query to reason about")

	return cmd
}
