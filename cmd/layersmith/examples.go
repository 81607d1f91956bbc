package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newExamplesCmd(_ *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "List the canned outfits usable with 'compose --example'",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := make([]string, 0, len(exampleOutfits))
			for name := range exampleOutfits {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("%-12s %s\n", name, exampleOutfits[name])
			}
			return nil
		},
	}
}
