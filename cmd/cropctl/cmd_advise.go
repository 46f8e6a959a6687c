package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cropwise/config"
	"cropwise/pkg/climate"
	"cropwise/pkg/weather"
)

var adviseIn struct {
	cond     climate.Conditions
	forecast []string
	live     bool
}

var adviseCmd = &cobra.Command{
	Use:   "advise",
	Short: "Print crop advice for given conditions, or for the farm's live forecast",
	Example: `  cropctl advise --temp 22 --humidity 85 --wind 4 --forecast Rain:2.5,Clouds
  cropctl advise --live`,
	RunE: runAdvise,
}

func init() {
	f := adviseCmd.Flags()
	f.Float64Var(&adviseIn.cond.Temperature, "temp", 20, "temperature in C")
	f.Float64Var(&adviseIn.cond.Humidity, "humidity", 60, "relative humidity %")
	f.Float64Var(&adviseIn.cond.WindSpeed, "wind", 5, "wind speed")
	f.StringVar(&adviseIn.cond.Condition, "condition", "Clouds", "current condition, e.g. Clear")
	f.StringSliceVar(&adviseIn.forecast, "forecast", nil, "next slots as condition[:rain_mm]")
	f.BoolVar(&adviseIn.live, "live", false, "fetch the forecast for FARM_LAT/FARM_LON")
}

// parseSlots reads "Rain:2.5" style entries.
func parseSlots(raw []string) ([]climate.Slot, error) {
	var out []climate.Slot
	for _, r := range raw {
		cond, mm, found := strings.Cut(strings.TrimSpace(r), ":")
		s := climate.Slot{Condition: cond}
		if found {
			v, err := strconv.ParseFloat(mm, 64)
			if err != nil {
				return nil, fmt.Errorf("forecast slot %q: %w", r, err)
			}
			s.Rain3h = v
		}
		out = append(out, s)
	}
	return out, nil
}

func runAdvise(cmd *cobra.Command, _ []string) error {
	c := adviseIn.cond
	if adviseIn.live {
		cfg := config.Load()
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()
		f, err := weather.NewOWMClient(cfg.WeatherBaseURL, cfg.WeatherAPIKey).Forecast(ctx, cfg.FarmLat, cfg.FarmLon)
		if err != nil {
			return err
		}
		if c, err = f.Conditions(); err != nil {
			return err
		}
	} else {
		slots, err := parseSlots(adviseIn.forecast)
		if err != nil {
			return err
		}
		c.Forecast = slots
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(climate.Advise(c))
}
