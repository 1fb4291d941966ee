package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

func newClientsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clients",
		Short: "List client ids with stored catalog data or enquiries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			withKV, err := a.kv.Clients(ctx)
			if err != nil {
				return fmt.Errorf("list catalog clients: %w", err)
			}
			withEnq, err := a.enquiries.Clients(ctx)
			if err != nil {
				return fmt.Errorf("list enquiry clients: %w", err)
			}
			all := append(withKV, withEnq...)
			slices.Sort(all)
			for _, id := range slices.Compact(all) {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}
