package Reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressSeries_Empty(t *testing.T) {
	series := ProgressSeries(nil)
	assert.NotNil(t, series)
	assert.Empty(t, series)
}

func TestProgressSeries_AveragesPerDate(t *testing.T) {
	series := ProgressSeries([]ProgressEntry{
		{Date: "2024-02-01", Percentage: 50},
		{Date: "2024-02-01", Percentage: 70},
	})

	require.Len(t, series, 1)
	assert.Equal(t, "2024-02-01", series[0].Date)
	assert.Equal(t, 60.0, series[0].AverageProgress)
}

func TestProgressSeries_OrderedAscendingWithGaps(t *testing.T) {
	series := ProgressSeries([]ProgressEntry{
		{Date: "2024-02-10", Percentage: 80},
		{Date: "2024-02-01", Percentage: 20},
		{Date: "2024-02-05", Percentage: 40},
		{Date: "2024-02-05", Percentage: 60},
	})

	require.Len(t, series, 3)
	assert.Equal(t, "2024-02-01", series[0].Date)
	assert.Equal(t, "2024-02-05", series[1].Date)
	assert.Equal(t, "2024-02-10", series[2].Date)
	// 2024-02-02 .. 2024-02-04 are simply absent, not zero filled.
	assert.Equal(t, 50.0, series[1].AverageProgress)
}

func TestProgressSeries_SingleEntryPassesThrough(t *testing.T) {
	series := ProgressSeries([]ProgressEntry{{Date: "2024-03-03", Percentage: 33.333}})
	require.Len(t, series, 1)
	assert.Equal(t, 33.33, series[0].AverageProgress)
}
