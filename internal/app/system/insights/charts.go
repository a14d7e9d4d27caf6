package insights

import (
	"github.com/dalemusser/datavizz/internal/domain/models"
)

// Dataset is one named numeric series over shared labels.
type Dataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

// SeriesChart backs the bar and line views.
type SeriesChart struct {
	Title    string    `json:"title"`
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// CountChart backs the doughnut, polar-area, radar and pie views.
type CountChart struct {
	Title     string    `json:"title"`
	Dimension Dimension `json:"dimension"`
	Counts
}

// ScatterChart backs the scatter view.
type ScatterChart struct {
	Title  string  `json:"title"`
	Label  string  `json:"label"`
	XAxis  Measure `json:"x_axis"`
	YAxis  Measure `json:"y_axis"`
	Points []Point `json:"points"`
}

// Charts is the complete set of chart inputs for one filtered subset.
type Charts struct {
	Records   int          `json:"records"`
	Bar       SeriesChart  `json:"bar"`
	Line      SeriesChart  `json:"line"`
	Doughnut  CountChart   `json:"doughnut"`
	PolarArea CountChart   `json:"polar_area"`
	Radar     CountChart   `json:"radar"`
	Pie       CountChart   `json:"pie"`
	Scatter   ScatterChart `json:"scatter"`
}

var trendMeasures = []Measure{Intensity, Likelihood, Relevance}

// BuildCharts derives every chart input from an already filtered subset.
// An empty subset yields empty (non-nil) label and data slices.
func BuildCharts(records []models.Record) Charts {
	return Charts{
		Records:   len(records),
		Bar:       seriesChart("Intensity, Likelihood, and Relevance over Time", records),
		Line:      seriesChart("Intensity, Likelihood, and Relevance Trends", records),
		Doughnut:  countChart("Distribution of Data by Country", Country, records),
		PolarArea: countChart("Distribution of Topics", Topic, records),
		Radar:     countChart("Region Distribution", Region, records),
		Pie:       countChart("Distribution of Sectors", Sector, records),
		Scatter: ScatterChart{
			Title:  "Intensity vs Relevance",
			Label:  "Intensity vs Relevance",
			XAxis:  Intensity,
			YAxis:  Relevance,
			Points: Points(records, Intensity, Relevance),
		},
	}
}

func seriesChart(title string, records []models.Record) SeriesChart {
	sets := make([]Dataset, 0, len(trendMeasures))
	for _, m := range trendMeasures {
		sets = append(sets, Dataset{Label: m.Label(), Data: Project(records, m)})
	}
	return SeriesChart{
		Title:    title,
		Labels:   Labels(records, StartYearOf, UnknownLabel),
		Datasets: sets,
	}
}

func countChart(title string, d Dimension, records []models.Record) CountChart {
	return CountChart{
		Title:     title,
		Dimension: d,
		Counts:    CountBy(records, d.Of),
	}
}
