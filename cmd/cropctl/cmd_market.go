package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cropwise/config"
	"cropwise/database"
	"cropwise/pkg/market"
	marketRepoImp "cropwise/pkg/market/repositoryImp"
	marketSvcImp "cropwise/pkg/market/serviceImp"
)

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Manage stored market prices",
}

var marketImportCmd = &cobra.Command{
	Use:   "import <url>",
	Short: "Import a price table from an allow-listed page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		db := database.Open(cfg.DatabaseURL, cfg.DBPath)
		svc := marketSvcImp.NewMarketService(marketRepoImp.New(db), market.NewFetcher(cfg.MarketAllowList))
		if err := svc.Seed(); err != nil {
			return err
		}
		res, err := svc.Import(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d prices from %s\n", res.Imported, res.Source)
		return nil
	},
}

func init() {
	marketCmd.AddCommand(marketImportCmd)
}
