package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nethra_backend/internal/feature/soil/adapters/imaging"
	"nethra_backend/internal/feature/soil/transport/http/dto"
	"nethra_backend/internal/feature/soil/usecase"
)

func newSoilCmd() *cobra.Command {
	soil := &cobra.Command{
		Use:   "soil",
		Short: "Soil image tools",
	}
	soil.AddCommand(&cobra.Command{
		Use:   "classify <image-file>",
		Short: "Classify a soil photo by its average colour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read image: %w", err)
			}
			if len(data) > usecase.MaxImageSize {
				return fmt.Errorf("image exceeds %d bytes", usecase.MaxImageSize)
			}

			analysis, err := usecase.NewSoilUsecase(imaging.NewDecoder()).Classify(cmd.Context(), data)
			if err != nil {
				return err
			}

			p := analysis.Profile
			return printJSON(cmd.OutOrStdout(), dto.SoilAnalysisResponse{
				Label: string(analysis.Label),
				AverageColor: dto.AverageColorResponse{
					R: analysis.Sample.R,
					G: analysis.Sample.G,
					B: analysis.Sample.B,
				},
				Profile: dto.SoilProfileResponse{
					Type:          p.Type,
					Confidence:    p.Confidence,
					Color:         p.Color,
					Description:   p.Description,
					SuitableCrops: p.SuitableCrops,
					Properties:    p.Properties,
				},
			})
		},
	})
	return soil
}
