package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mhpenta/showcase"
	"github.com/mhpenta/showcase/surface"
)

func newImageCmd(a *app) *cobra.Command {
	var (
		prompt string
		ratio  string
		out    string
	)

	ratios := make([]string, len(showcase.AspectRatios))
	for i, r := range showcase.AspectRatios {
		ratios[i] = r.String()
	}

	cmd := &cobra.Command{
		Use:   "image [prompt]",
		Short: "Generate one PNG image from a prompt",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if prompt == "" {
				prompt = strings.Join(args, " ")
			}

			gen := surface.NewImageGenerator(a.gateway)
			if err := gen.SetAspectRatio(showcase.AspectRatio(ratio)); err != nil {
				return fmt.Errorf("--aspect-ratio must be one of %s", strings.Join(ratios, ", "))
			}

			if showcase.ValidatePrompt(prompt) == nil {
				a.out.Hint(surface.ImageWaiting)
			}
			img, err := gen.Generate(cmd.Context(), prompt)
			if err != nil {
				if st := gen.Status(); st != "" {
					a.out.Status(st)
					return err
				}
				return a.fail(err)
			}

			if out == "" {
				a.out.Plain(img.DataURI() + "\n")
				return nil
			}

			storage := &showcase.FileStorage{}
			if !filepath.IsAbs(out) {
				storage.Dir = a.cfg.OutputDir
			}
			res, err := showcase.SaveImage(cmd.Context(), storage, img, out)
			if err != nil {
				return err
			}
			a.out.Plain(fmt.Sprintf("Saved: %s (%d bytes)\n", res.Location, res.Size))
			return nil
		},
	}

	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "description of the image")
	cmd.Flags().StringVarP(&ratio, "aspect-ratio", "r", showcase.AspectRatio1x1.String(), "one of "+strings.Join(ratios, ", "))
	cmd.Flags().StringVarP(&out, "out", "o", "", "save the image to this path instead of printing a data URI")

	return cmd
}
