package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newModelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the models used by each surface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			models, err := a.gateway.Models(cmd.Context())
			if err != nil {
				return a.fail(err)
			}

			var sb strings.Builder
			sb.WriteString("| Name | API model | Kind | Description |\n|---|---|---|---|\n")
			for _, m := range models {
				fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n", m.Name, m.APIModelName, m.Kind, m.Description)
			}
			a.out.Markdown(sb.String())
			return nil
		},
	}
}
