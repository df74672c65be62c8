// Package chart renders revenue summaries as image files.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"sales-report/models"
)

// ErrNoData is returned when there is nothing to draw. No file is written.
var ErrNoData = errors.New("chart: no data to display")

const (
	Title  = "Total Revenue by Product"
	XLabel = "Product"
	YLabel = "Total Revenue ($)"
)

var (
	width  = 10 * vg.Inch
	height = 6 * vg.Inch

	skyBlue = color.RGBA{R: 135, G: 206, B: 235, A: 255}
)

// RenderBar draws one bar per product, in summary order, with bar height
// equal to revenue, and saves it to path. The image format follows the
// file extension. An existing file at path is overwritten.
func RenderBar(summary models.RevenueSummary, path string) error {
	if len(summary) == 0 {
		return ErrNoData
	}

	p, err := buildBarPlot(summary)
	if err != nil {
		return err
	}
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("chart: save %q: %w", path, err)
	}
	return nil
}

func buildBarPlot(summary models.RevenueSummary) (*plot.Plot, error) {
	values := make(plotter.Values, len(summary))
	names := make([]string, len(summary))
	for i, r := range summary {
		values[i] = r.Revenue
		names[i] = r.Product
	}

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return nil, fmt.Errorf("chart: build bars: %w", err)
	}
	bars.Color = skyBlue
	bars.LineStyle.Width = vg.Length(0)

	p := plot.New()
	p.Title.Text = Title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	p.Y.Min = 0

	p.Add(plotter.NewGrid())
	p.Add(bars)
	p.NominalX(names...)

	// Rotated, right-aligned labels keep long product names readable.
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter

	return p, nil
}
