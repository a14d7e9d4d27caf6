// Package insights filters fetched records by the dashboard's categorical
// dimensions and derives the inputs for each chart view.
//
// Every function here is pure: the same records and selection always
// produce the same output, and input slices are never modified.
package insights

import (
	"net/url"

	"github.com/dalemusser/datavizz/internal/domain/models"
)

// Dimension names one of the eight filterable record fields.
type Dimension string

const (
	EndYear Dimension = "end_year"
	Topic   Dimension = "topic"
	Sector  Dimension = "sector"
	Region  Dimension = "region"
	Pestle  Dimension = "pestle"
	Source  Dimension = "source"
	Swot    Dimension = "swot"
	Country Dimension = "country"
)

// Dimensions lists the filterable dimensions in dashboard order.
var Dimensions = []Dimension{EndYear, Topic, Sector, Region, Pestle, Source, Swot, Country}

// Label is the human-facing name shown beside a dimension's selector.
func (d Dimension) Label() string {
	switch d {
	case EndYear:
		return "End Year"
	case Topic:
		return "Topic"
	case Sector:
		return "Sector"
	case Region:
		return "Region"
	case Pestle:
		return "PEST"
	case Source:
		return "Source"
	case Swot:
		return "SWOT"
	case Country:
		return "Country"
	}
	return string(d)
}

// Of returns the record's value for d. Unknown dimensions yield "".
func (d Dimension) Of(r models.Record) string {
	switch d {
	case EndYear:
		return string(r.EndYear)
	case Topic:
		return string(r.Topic)
	case Sector:
		return string(r.Sector)
	case Region:
		return string(r.Region)
	case Pestle:
		return string(r.Pestle)
	case Source:
		return string(r.Source)
	case Swot:
		return string(r.Swot)
	case Country:
		return string(r.Country)
	}
	return ""
}

// Selection maps dimensions to the chosen value. A missing key or an empty
// value means the dimension is unconstrained.
type Selection map[Dimension]string

// IsEmpty reports whether no dimension is constrained.
func (s Selection) IsEmpty() bool {
	for _, v := range s {
		if v != "" {
			return false
		}
	}
	return true
}

// Matches reports whether r satisfies every constrained dimension.
func (s Selection) Matches(r models.Record) bool {
	for d, want := range s {
		if want == "" {
			continue
		}
		if d.Of(r) != want {
			return false
		}
	}
	return true
}

// SelectionFromQuery reads the eight dimensions from query parameters.
// Unknown parameters are ignored.
func SelectionFromQuery(q url.Values) Selection {
	sel := Selection{}
	for _, d := range Dimensions {
		if v := q.Get(string(d)); v != "" {
			sel[d] = v
		}
	}
	return sel
}

// Query encodes the constrained dimensions as query parameters.
func (s Selection) Query() url.Values {
	q := url.Values{}
	for _, d := range Dimensions {
		if v := s[d]; v != "" {
			q.Set(string(d), v)
		}
	}
	return q
}

// Filter returns the records that satisfy sel, in input order.
// An empty selection returns every record.
func Filter(records []models.Record, sel Selection) []models.Record {
	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		if sel.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
