package util

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"caremap/models"
)

// PlotPlaces renders the given places as a scatter over a world map and
// writes the chart to an HTML file. Debug/visualization aid.
func PlotPlaces(places []models.Place, outPath string) error {
	points := make([]opts.GeoData, 0, len(places))
	for _, p := range places {
		points = append(points, opts.GeoData{
			Name:  p.Name,
			Value: []float64{p.Longitude, p.Latitude},
		})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Places Map",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("Places", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create HTML file %q: %w", outPath, err)
	}
	defer f.Close()

	if err := geo.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	fmt.Println("Places map generated:", outPath)
	return nil
}
