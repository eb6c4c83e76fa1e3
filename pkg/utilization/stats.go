package utilization

import (
	"time"

	"github.com/prometheus/common/model"

	"github.com/hwameistor/storage-console/pkg/result"
)

// DataPoint is one chart sample
type DataPoint struct {
	X           time.Time `json:"x"`
	Y           float64   `json:"y"`
	Description string    `json:"description,omitempty"`
}

// Stats are the series of a multiline utilization chart
type Stats struct {
	Series  [][]DataPoint `json:"series"`
	Error   bool          `json:"error"`
	Loading bool          `json:"loading"`
}

// RangeVectorStats converts every stream of a range query to a series.
// Sample times are truncated to the minute.
func RangeVectorStats(matrix model.Matrix, description string) [][]DataPoint {
	series := make([][]DataPoint, 0, len(matrix))
	for _, stream := range matrix {
		if stream == nil {
			continue
		}
		points := make([]DataPoint, 0, len(stream.Values))
		for _, pair := range stream.Values {
			points = append(points, DataPoint{
				X:           pair.Timestamp.Time().UTC().Truncate(time.Minute),
				Y:           float64(pair.Value),
				Description: description,
			})
		}
		series = append(series, points)
	}
	return series
}

// firstSeries returns the first series of the matrix, empty when there is none
func firstSeries(matrix model.Matrix, description string) []DataPoint {
	if series := RangeVectorStats(matrix, description); len(series) > 0 {
		return series[0]
	}
	return []DataPoint{}
}

// MultilineStats combines the first series of each ready query. Queries that
// are pending or failed are left out and reported through the flags.
func MultilineStats(queries []result.Result[model.Matrix], descriptions []string) Stats {
	stats := Stats{Series: [][]DataPoint{}}
	for i, query := range queries {
		switch query.Phase() {
		case result.PhasePending:
			stats.Loading = true
		case result.PhaseFailed:
			stats.Error = true
		case result.PhaseReady:
			description := ""
			if i < len(descriptions) {
				description = descriptions[i]
			}
			stats.Series = append(stats.Series, firstSeries(query.OrEmpty(), description))
		}
	}
	return stats
}
