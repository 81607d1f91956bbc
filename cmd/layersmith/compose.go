package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/layersmith"
	"github.com/unkn0wn-root/layersmith/layer"
)

// Canned outfits usable via --example instead of spelling out --params.
var exampleOutfits = map[string]string{
	"casual":    "hoodies/alpine4-black,pants/cargo-darkgreen",
	"winter":    "hoodies/alpine4-black,pants/cargo-darkgreen,hats/beanie-black,gloves/leatherlined-black",
	"patched":   "hoodies/alpine4-black,patches-left/flagpatch-red",
	"softshell": "jackets/softshell-grey,pants/cargo-darkgreen,patches-left/flagpatch-red",
	"expedition": "jackets/greenland-black,hoodies/alpine4-black,pants/cargo-darkgreen," +
		"hats/beanie-black,gloves/ski-black",
	"full": "tops/base-white,hoodies/alpine4-black,jackets/softshell-grey,pants/cargo-darkgreen," +
		"hats/beanie-black,gloves/ski-black,patches/flagpatch-red",
}

func newComposeCmd(flags *rootFlags) *cobra.Command {
	var (
		viewName string
		params   string
		example  string
		output   string
		bypass   bool
	)

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Render a composite and write it to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if params == "" && example == "" {
				return fmt.Errorf("either --params or --example is required")
			}
			if example != "" {
				outfit, ok := exampleOutfits[example]
				if !ok {
					return fmt.Errorf("unknown example %q (see 'layersmith examples')", example)
				}
				params = outfit
			}

			view, err := layer.ParseView(viewName)
			if err != nil {
				return err
			}

			renderer, err := newRenderer(cmd.Context(), flags)
			if err != nil {
				return err
			}

			res, err := renderer.Render(cmd.Context(), layersmith.RenderRequest{
				View:        view,
				Params:      params,
				BypassCache: bypass,
			})
			if err != nil {
				return err
			}

			if err := os.WriteFile(output, res.Data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			source := "composed"
			if res.Cached {
				source = "cached"
			}
			fmt.Printf("%s -> %s (%d bytes, key %s, %d/%d layers)\n",
				source, output, len(res.Data), res.Key, res.Found, res.Requested)
			return nil
		},
	}

	cmd.Flags().StringVar(&viewName, "view", "front", "view to render (front|back|side|left|right)")
	cmd.Flags().StringVar(&params, "params", "", "comma-separated category/sku pairs")
	cmd.Flags().StringVar(&example, "example", "", "render a canned outfit by name")
	cmd.Flags().StringVarP(&output, "output", "o", "composite.jpg", "output file")
	cmd.Flags().BoolVar(&bypass, "bypass-cache", false, "skip the cache lookup")
	return cmd
}
