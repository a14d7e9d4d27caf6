package insights

import (
	"github.com/dalemusser/datavizz/internal/domain/models"
)

// Measure names a numeric record field.
type Measure string

const (
	Intensity  Measure = "intensity"
	Likelihood Measure = "likelihood"
	Relevance  Measure = "relevance"
)

// Label is the dataset name used for a measure.
func (m Measure) Label() string {
	switch m {
	case Intensity:
		return "Intensity"
	case Likelihood:
		return "Likelihood"
	case Relevance:
		return "Relevance"
	}
	return string(m)
}

// Of returns the record's value for m. Unknown measures yield 0.
func (m Measure) Of(r models.Record) float64 {
	switch m {
	case Intensity:
		return r.Intensity.Float()
	case Likelihood:
		return r.Likelihood.Float()
	case Relevance:
		return r.Relevance.Float()
	}
	return 0
}

// Point is one (x, y) pair of a scatter series.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Project extracts m from every record, preserving order.
func Project(records []models.Record, m Measure) []float64 {
	out := make([]float64, 0, len(records))
	for _, r := range records {
		out = append(out, m.Of(r))
	}
	return out
}

// Labels extracts key from every record, substituting fallback for empty
// values. Order is preserved and duplicates are kept.
func Labels(records []models.Record, key func(models.Record) string, fallback string) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		v := key(r)
		if v == "" {
			v = fallback
		}
		out = append(out, v)
	}
	return out
}

// Points pairs x and y for every record, preserving order.
func Points(records []models.Record, x, y Measure) []Point {
	out := make([]Point, 0, len(records))
	for _, r := range records {
		out = append(out, Point{X: x.Of(r), Y: y.Of(r)})
	}
	return out
}

// StartYearOf returns the record's start year as text.
func StartYearOf(r models.Record) string { return string(r.StartYear) }
