package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newEnquiriesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enquiries",
		Short: "List or delete a client's enquiries",
	}
	var client string
	cmd.PersistentFlags().StringVar(&client, "client", "", "client id (sid cookie value)")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List enquiries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := a.enquiries.List(cmd.Context(), client)
			if err != nil {
				return fmt.Errorf("list enquiries: %w", err)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tDATE\tTYPE\tNAME\tPHONE\tSTATUS")
			for _, e := range list {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", e.ID, e.Date, e.Type, e.Name, e.Phone, e.Status)
			}
			return tw.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one enquiry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid id %q", args[0])
			}
			if client == "" {
				return fmt.Errorf("--client is required")
			}
			if err := a.enquiries.Delete(cmd.Context(), client, id); err != nil {
				return fmt.Errorf("delete enquiry: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted enquiry %d\n", id)
			return nil
		},
	})
	return cmd
}
