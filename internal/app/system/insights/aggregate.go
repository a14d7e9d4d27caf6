package insights

import (
	"github.com/dalemusser/datavizz/internal/domain/models"
)

// UnknownLabel replaces an empty value where a label is displayed.
const UnknownLabel = "Unknown"

// Counts holds parallel category labels and occurrence counts.
type Counts struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// Total returns the sum of all counts.
func (c Counts) Total() int {
	n := 0
	for _, v := range c.Data {
		n += v
	}
	return n
}

// CountBy groups records by key and counts each distinct value.
//
// Categories appear in first-seen order and ties are left in that order.
// An empty value is a category of its own; it is not dropped and not
// renamed to UnknownLabel.
func CountBy(records []models.Record, key func(models.Record) string) Counts {
	out := Counts{Labels: []string{}, Data: []int{}}
	index := make(map[string]int)
	for _, r := range records {
		k := key(r)
		i, seen := index[k]
		if !seen {
			index[k] = len(out.Labels)
			out.Labels = append(out.Labels, k)
			out.Data = append(out.Data, 1)
			continue
		}
		out.Data[i]++
	}
	return out
}

// Distinct returns the distinct values of key in first-seen order.
func Distinct(records []models.Record, key func(models.Record) string) []string {
	out := []string{}
	seen := make(map[string]struct{})
	for _, r := range records {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
