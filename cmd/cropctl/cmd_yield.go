package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"cropwise/pkg/yield"
)

// yieldRand is nil in production so Estimate draws from math/rand.
var yieldRand yield.Rand

var yieldIn struct {
	in        yield.Input
	area      float64
	density   float64
	tablePath string
}

var yieldCmd = &cobra.Command{
	Use:   "yield",
	Short: "Estimate yield and revenue without storing anything",
	RunE:  runYield,
}

func init() {
	f := yieldCmd.Flags()
	f.StringVar(&yieldIn.in.CropType, "crop", "cabbage", "cabbage|kale|both")
	f.Float64Var(&yieldIn.area, "area", 1, "farm area in hectares")
	f.Float64Var(&yieldIn.density, "density", 10000, "plants per hectare")
	f.StringVar(&yieldIn.in.Variety, "variety", "standard", "variety factor")
	f.StringVar(&yieldIn.in.Conditions, "conditions", "good", "growing conditions factor")
	f.StringVar(&yieldIn.in.SoilType, "soil", "loamy", "soil type factor")
	f.StringVar(&yieldIn.in.Irrigation, "irrigation", "rainfed", "irrigation factor")
	f.StringVar(&yieldIn.in.Fertilizer, "fertilizer", "organic", "fertilizer factor")
	f.StringVar(&yieldIn.in.PestManagement, "pest", "integrated", "pest management factor")
	f.StringVar(&yieldIn.in.Season, "season", "long-rains", "season factor")
	f.StringVar(&yieldIn.tablePath, "table", "", "CSV, XLSX or YAML table overriding the defaults")
}

func runYield(cmd *cobra.Command, _ []string) error {
	table, err := yield.LoadTable(yieldIn.tablePath)
	if err != nil {
		return err
	}
	in := yieldIn.in
	in.FarmArea = &yieldIn.area
	in.PlantingDensity = &yieldIn.density

	res, err := yield.Estimate(table, in, yieldRand)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
