package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show composite cache statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := newRenderer(cmd.Context(), flags)
			if err != nil {
				return err
			}
			s := renderer.Stats()
			fmt.Printf("memory entries:  %d\n", s.Entries)
			fmt.Printf("memory capacity: %d\n", s.Capacity)
			return nil
		},
	}
}
