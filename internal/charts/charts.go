// Package charts renders the skew graphs as PNG files: a time series of skew
// across the session and a histogram of the skew distribution.
package charts

import (
	"fmt"
	"os"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/model"
)

var seriesColor = drawing.Color{R: 0, G: 122, B: 204, A: 255}

// WriteSkewOverTime renders the skew-vs-time line chart. Samples without a
// record timestamp are plotted by sequence position instead, so a file whose
// entries lack parseable times still charts. Returns false without writing
// when there are too few samples to draw a line.
func WriteSkewOverTime(rep *model.Report, path string) (bool, error) {
	samples := rep.SkewSamples
	if len(samples) < 2 {
		return false, nil
	}

	style := chart.Style{
		StrokeColor: seriesColor,
		StrokeWidth: 1.5,
		DotColor:    seriesColor,
		DotWidth:    2,
	}
	ys := make([]float64, len(samples))
	for i, s := range samples {
		ys[i] = float64(s.SkewMillis)
	}

	var series chart.Series
	xAxis := chart.XAxis{Name: "Timestamp"}
	if timestamped(samples) {
		xs := make([]time.Time, len(samples))
		for i, s := range samples {
			xs[i] = s.Timestamp
		}
		series = chart.TimeSeries{XValues: xs, YValues: ys, Style: style}
		xAxis.ValueFormatter = chart.TimeValueFormatterWithFormat("15:04:05")
	} else {
		xs := make([]float64, len(samples))
		for i, s := range samples {
			xs[i] = float64(s.SourceIndex)
		}
		series = chart.ContinuousSeries{XValues: xs, YValues: ys, Style: style}
		xAxis.Name = "Entry index"
	}

	graph := chart.Chart{
		Title:  "Client-Server Clock Skew Over Time",
		Width:  1200,
		Height: 600,
		XAxis:  xAxis,
		YAxis:  chart.YAxis{Name: "Skew (milliseconds)"},
		Series: []chart.Series{series},
	}

	if err := renderPNG(&graph, path); err != nil {
		return false, err
	}
	return true, nil
}

// WriteSkewDistribution renders the histogram from the summary's buckets.
// Returns false without writing when the distribution is empty.
func WriteSkewDistribution(summary model.SkewSummary, path string) (bool, error) {
	if len(summary.Distribution) == 0 {
		return false, nil
	}

	bars := make([]chart.Value, len(summary.Distribution))
	for i, b := range summary.Distribution {
		bars[i] = chart.Value{
			Value: float64(b.Count),
			Label: fmt.Sprintf("%.0f", b.Low),
			Style: chart.Style{FillColor: seriesColor, StrokeColor: seriesColor},
		}
	}

	graph := chart.BarChart{
		Title:    "Clock Skew Distribution",
		Width:    1000,
		Height:   600,
		BarWidth: 900 / len(bars),
		XAxis:    chart.Style{TextRotationDegrees: 45},
		YAxis:    chart.YAxis{Name: "Frequency"},
		Bars:     bars,
	}

	f, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()
	if err := graph.Render(chart.PNG, f); err != nil {
		return false, fmt.Errorf("failed to render distribution chart: %w", err)
	}
	return true, nil
}

func renderPNG(graph *chart.Chart, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()
	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// timestamped reports whether every sample carries a usable record timestamp.
func timestamped(samples []model.SkewSample) bool {
	for _, s := range samples {
		if s.Timestamp.IsZero() {
			return false
		}
	}
	return true
}
