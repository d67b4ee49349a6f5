package main

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"nethra_backend/internal/feature/yield/domain/entity"
	"nethra_backend/internal/feature/yield/usecase"
)

var errBlankFlag = errors.New("--crop and --soil must not be blank")

type yieldResult struct {
	Crop        string   `json:"crop"`
	Soil        string   `json:"soil"`
	Yield       float64  `json:"yield"`
	YieldText   string   `json:"yield_text"`
	Unit        string   `json:"unit"`
	Confidence  int      `json:"confidence"`
	Rating      string   `json:"rating"`
	RatingLabel string   `json:"rating_label"`
	Advice      []string `json:"advice"`
}

func newYieldCmd() *cobra.Command {
	var flags struct {
		crop     string
		soil     string
		rainfall float64
		temp     float64
	}

	yield := &cobra.Command{
		Use:   "yield",
		Short: "Yield simulator tools",
	}
	estimate := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate yield for a crop, soil category, rainfall (mm) and temperature (°C)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			crop := strings.TrimSpace(flags.crop)
			soil := strings.TrimSpace(flags.soil)
			if crop == "" || soil == "" {
				return errBlankFlag
			}
			if math.IsNaN(flags.rainfall) || math.IsInf(flags.rainfall, 0) || flags.rainfall < 0 {
				return errors.New("--rainfall must be a finite number >= 0")
			}
			if math.IsNaN(flags.temp) || math.IsInf(flags.temp, 0) {
				return errors.New("--temp must be a finite number")
			}

			est := usecase.Simulate(entity.YieldQuery{
				Crop:         crop,
				SoilCategory: soil,
				RainfallMm:   flags.rainfall,
				TemperatureC: flags.temp,
			})
			return printJSON(cmd.OutOrStdout(), yieldResult{
				Crop:        est.Crop,
				Soil:        soil,
				Yield:       est.Yield,
				YieldText:   strconv.FormatFloat(est.Yield, 'f', 1, 64),
				Unit:        est.Unit,
				Confidence:  est.Confidence,
				Rating:      string(est.Rating),
				RatingLabel: est.Rating.Label(),
				Advice:      est.Advice,
			})
		},
	}

	f := estimate.Flags()
	f.StringVar(&flags.crop, "crop", "", "Crop name, e.g. Wheat (required)")
	f.StringVar(&flags.soil, "soil", "", "Soil category, e.g. Alluvial (required)")
	f.Float64Var(&flags.rainfall, "rainfall", 0, "Rainfall in mm (required)")
	f.Float64Var(&flags.temp, "temp", 0, "Average temperature in °C (required)")
	for _, name := range []string{"crop", "soil", "rainfall", "temp"} {
		_ = estimate.MarkFlagRequired(name)
	}

	yield.AddCommand(estimate)
	return yield
}
