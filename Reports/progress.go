package Reports

import (
	"sort"
)

// ProgressEntry is one daily progress record for some task of a project.
type ProgressEntry struct {
	Date       string
	Percentage float64
}

// ProgressPoint is the chart value for one date: the arithmetic mean of the
// percentages reported across tasks on that date.
type ProgressPoint struct {
	Date            string  `json:"date"`
	AverageProgress float64 `json:"avg_progress"`
}

// ProgressSeries groups progress entries by date and averages them, ordered
// by date ascending. Dates without entries are omitted, not zero filled.
func ProgressSeries(entries []ProgressEntry) []ProgressPoint {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, e := range entries {
		sums[e.Date] += e.Percentage
		counts[e.Date]++
	}

	series := make([]ProgressPoint, 0, len(sums))
	for date, sum := range sums {
		series = append(series, ProgressPoint{
			Date:            date,
			AverageProgress: Round2(sum / float64(counts[date])),
		})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})
	return series
}
