package insights

import (
	"github.com/dalemusser/datavizz/internal/domain/models"
)

// RecordSource supplies the record set and whether it has been loaded.
// provider.Provider satisfies it.
type RecordSource interface {
	Data() ([]models.Record, bool)
}

// Frame is one render of the dashboard.
//
// While Loading is true no chart input is produced. Once the source is
// loaded every Render recomputes Charts from scratch for the selection.
type Frame struct {
	Loading   bool      `json:"loading"`
	Selection Selection `json:"selection,omitempty"`
	Options   []Option  `json:"options,omitempty"`
	Charts    *Charts   `json:"charts,omitempty"`
}

// View renders frames from a RecordSource.
type View struct {
	src RecordSource
}

// NewView binds a View to src.
func NewView(src RecordSource) *View {
	return &View{src: src}
}

// Render produces the frame for sel. Selector options always come from the
// full record set, charts from the filtered subset.
func (v *View) Render(sel Selection) Frame {
	records, ok := v.src.Data()
	if !ok {
		return Frame{Loading: true}
	}
	charts := BuildCharts(Filter(records, sel))
	return Frame{
		Selection: sel,
		Options:   FilterOptions(records),
		Charts:    &charts,
	}
}
