package main

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"omoro/internal/catalog"
	"omoro/internal/config"
	"omoro/internal/repos"
	"omoro/internal/services"
)

// app holds what every subcommand needs once the root command has run.
type app struct {
	configFile string
	db         *sqlx.DB
	kv         *repos.KVRepo
	enquiries  *repos.EnquiryRepo
	catalog    *services.CatalogService
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "omoroctl",
		Short: "Inspect Omoro site data",
		Long: `omoroctl reads the site's database directly. It lists the client
scopes that have stored data, shows the catalog each client sees, and
lists or removes their enquiries.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.db != nil {
				return a.db.Close()
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default: ./omoro.yaml)")

	root.AddCommand(newClientsCmd(a))
	root.AddCommand(newCatalogCmd(a))
	root.AddCommand(newEnquiriesCmd(a))
	return root
}

func (a *app) open() error {
	cfg := config.Load(a.configFile)
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	a.db = db
	a.kv = repos.NewKVRepo(db)
	a.enquiries = repos.NewEnquiryRepo(db)
	a.catalog = services.NewCatalogService(a.kv, catalog.NewIDSource(nil))
	return nil
}
