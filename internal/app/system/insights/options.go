package insights

import (
	"github.com/dalemusser/datavizz/internal/domain/models"
)

// Choice is one entry of a dimension's selector.
// Value is what gets placed in a Selection; Label is what is displayed.
type Choice struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Option lists the choices for one dimension.
type Option struct {
	Dimension Dimension `json:"dimension" yaml:"dimension"`
	Label     string    `json:"label" yaml:"label"`
	Choices   []Choice  `json:"choices" yaml:"choices"`
}

// FilterOptions builds one Option per dimension from the full record set.
// Choices are the distinct values in first-seen order; an empty value keeps
// its empty Value and is displayed as UnknownLabel.
func FilterOptions(records []models.Record) []Option {
	out := make([]Option, 0, len(Dimensions))
	for _, d := range Dimensions {
		values := Distinct(records, d.Of)
		choices := make([]Choice, 0, len(values))
		for _, v := range values {
			label := v
			if label == "" {
				label = UnknownLabel
			}
			choices = append(choices, Choice{Value: v, Label: label})
		}
		out = append(out, Option{Dimension: d, Label: d.Label(), Choices: choices})
	}
	return out
}
