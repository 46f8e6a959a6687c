package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cropwise/config"
	"cropwise/database"
	"cropwise/pkg/middleware"
	"cropwise/pkg/records"
	recordsRepoImp "cropwise/pkg/records/repositoryImp"
	recordsSvcImp "cropwise/pkg/records/serviceImp"
)

var exportIn struct {
	email  string
	out    string
	filter records.Filter
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a user's farm records workbook (xlsx)",
	RunE:  runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&exportIn.email, "email", "", "account email")
	f.StringVarP(&exportIn.out, "out", "o", "farm-records.xlsx", "output file")
	f.StringVar(&exportIn.filter.Type, "type", "", "expense|sale")
	f.StringVar(&exportIn.filter.StartDate, "from", "", "first date, YYYY-MM-DD")
	f.StringVar(&exportIn.filter.EndDate, "to", "", "last date, YYYY-MM-DD")
	_ = exportCmd.MarkFlagRequired("email")
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	db := database.Open(cfg.DatabaseURL, cfg.DBPath)
	svc := recordsSvcImp.New(
		recordsRepoImp.NewRecordRepo(db),
		recordsRepoImp.NewActivityRepo(db),
		recordsRepoImp.NewProductionRepo(db),
		recordsRepoImp.NewInventoryRepo(db),
	)

	f, err := os.Create(exportIn.out)
	if err != nil {
		return err
	}
	if err := svc.Export(middleware.EmailKey(exportIn.email), exportIn.filter, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", exportIn.out)
	return nil
}
