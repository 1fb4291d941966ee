package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"omoro/internal/catalog"
	"omoro/internal/domain"
)

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the catalog a client sees",
	}
	var client string
	var asJSON bool
	show := &cobra.Command{
		Use:   "show <products|projects|gallery>",
		Short: "Print the resolved list for one kind",
		Long: `Show resolves the kind exactly as the site would for the given client:
the override list when one exists, otherwise additions merged over the seed.
Without --client the seed data is shown.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"products", "projects", "gallery"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, out := cmd.Context(), cmd.OutOrStdout()
			switch args[0] {
			case "products":
				col := a.catalog.Products(client)
				return printKind(ctx, out, col, col.Resolve(ctx), asJSON, func(p domain.Product) string { return p.Title })
			case "projects":
				col := a.catalog.Projects(client)
				return printKind(ctx, out, col, col.Resolve(ctx), asJSON, func(p domain.Project) string { return p.Title })
			case "gallery":
				col := a.catalog.Gallery(client)
				return printKind(ctx, out, col, col.Resolve(ctx), asJSON, func(g domain.GalleryImage) string { return g.Alt })
			}
			return fmt.Errorf("unknown kind %q (valid: products, projects, gallery)", args[0])
		},
	}
	show.Flags().StringVar(&client, "client", "", "client id (sid cookie value)")
	show.Flags().BoolVar(&asJSON, "json", false, "print records as JSON")
	cmd.AddCommand(show)
	return cmd
}

func printKind[T catalog.Record[T]](ctx context.Context, out io.Writer, col *catalog.Collection[T], list []T, asJSON bool, title func(T) string) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}
	fmt.Fprintf(out, "%s (%s): %d records\n", col.Name(), col.Mode(ctx), len(list))
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSLUG\tTITLE")
	for _, r := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", r.RecordID(), r.RecordSlug(), title(r))
	}
	return tw.Flush()
}
