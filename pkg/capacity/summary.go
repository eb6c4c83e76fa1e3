package capacity

import (
	"github.com/hwameistor/storage-console/pkg/capacity/units"
)

// Summary is the capacity shown by the donut chart
type Summary struct {
	Selected  int64 `json:"selected"`
	Available int64 `json:"available"`
}

// Slice is one donut segment
type Slice struct {
	X     string `json:"x"`
	Y     int64  `json:"y"`
	Label string `json:"label"`
}

const (
	SliceSelected  = "Selected"
	SliceAvailable = "Available"
)

// Summarize splits the total into selected and available. Available never
// goes below zero.
func Summarize(total, selected int64) Summary {
	available := total - selected
	if available < 0 {
		available = 0
	}
	return Summary{Selected: selected, Available: available}
}

// Donut returns the selected and available segments in that order
func Donut(summary Summary) []Slice {
	return []Slice{
		{X: SliceSelected, Y: summary.Selected, Label: units.HumanizeBinaryBytes(summary.Selected)},
		{X: SliceAvailable, Y: summary.Available, Label: units.HumanizeBinaryBytes(summary.Available)},
	}
}

// Summary of the aggregation
func (a Aggregation) Summary() Summary {
	return Summarize(a.TotalCapacity, a.SelectedCapacity)
}
