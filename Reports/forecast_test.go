package Reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBudgetForecast_Midway(t *testing.T) {
	// 10 day project, 5 days in: schedule completion 50%, so half the budget
	// should be spent; 6000 actual against a 5000 forecast is 1000 over.
	f := BudgetForecast("2024-01-01", "2024-01-11", 10000, 6000, date(2024, time.January, 6))

	assert.Equal(t, 10, f.TotalDays)
	assert.Equal(t, 5, f.DaysPassed)
	assert.Equal(t, 50.00, f.CompletionPercentage)
	assert.Equal(t, 60.00, f.BudgetUtilization)
	assert.Equal(t, 5000.00, f.ForecastCompletion)
	assert.Equal(t, 1000.00, f.Variance)
}

func TestBudgetForecast_BeforeStart(t *testing.T) {
	f := BudgetForecast("2024-06-01", "2024-12-01", 50000, 1200, date(2024, time.May, 1))

	assert.Equal(t, 0, f.DaysPassed)
	assert.Equal(t, 0.0, f.CompletionPercentage)
	assert.Equal(t, 0.0, f.ForecastCompletion)
	assert.Equal(t, 0.0, f.Variance)
	// Utilization does not depend on elapsed time.
	assert.Equal(t, 2.4, f.BudgetUtilization)
}

func TestBudgetForecast_OnStartDate(t *testing.T) {
	f := BudgetForecast("2024-06-01", "2024-12-01", 50000, 0, date(2024, time.June, 1))
	assert.Equal(t, 0, f.DaysPassed)
	assert.Equal(t, 0.0, f.CompletionPercentage)
}

func TestBudgetForecast_EndBeforeStart(t *testing.T) {
	// Misconfigured project: negative duration yields a zero completion
	// percentage, never a negative or undefined one.
	f := BudgetForecast("2024-03-01", "2024-02-01", 10000, 4000, date(2024, time.March, 15))

	assert.Equal(t, -29, f.TotalDays)
	assert.Equal(t, 14, f.DaysPassed)
	assert.Equal(t, 0.0, f.CompletionPercentage)
	assert.Equal(t, 0.0, f.ForecastCompletion)
	assert.Equal(t, 0.0, f.Variance)
}

func TestBudgetForecast_ZeroBudget(t *testing.T) {
	f := BudgetForecast("2024-01-01", "2024-01-11", 0, 6000, date(2024, time.January, 6))
	assert.Equal(t, 0.0, f.BudgetUtilization)
	assert.Equal(t, 0.0, f.ForecastCompletion)
}

func TestBudgetForecast_BadDates(t *testing.T) {
	f := BudgetForecast("", "2024-01-11", 10000, 6000, date(2024, time.January, 6))
	assert.Equal(t, Forecast{}, f)

	f = BudgetForecast("2024-01-01", "not-a-date", 10000, 6000, date(2024, time.January, 6))
	assert.Equal(t, Forecast{}, f)
}

func TestBudgetForecast_LocalZoneNearMidnight(t *testing.T) {
	// 23:30 on Jan 6 in UTC-5 is already Jan 7 in UTC. The forecast anchors
	// on the caller's calendar date, so this is still day 5 of the schedule.
	loc := time.FixedZone("UTC-5", -5*60*60)
	today := time.Date(2024, time.January, 6, 23, 30, 0, 0, loc)

	f := BudgetForecast("2024-01-01", "2024-01-11", 10000, 6000, today)

	assert.Equal(t, 5, f.DaysPassed)
	assert.Equal(t, 50.00, f.CompletionPercentage)
}

func TestBudgetForecast_Rounding(t *testing.T) {
	// 3 of 7 days: 42.857...% rounds to 42.86 for display, while the
	// forecast uses the unrounded ratio.
	f := BudgetForecast("2024-01-01", "2024-01-08", 7000, 3500, date(2024, time.January, 4))
	assert.Equal(t, 42.86, f.CompletionPercentage)
	assert.Equal(t, 3000.00, f.ForecastCompletion)
	assert.Equal(t, 500.00, f.Variance)
}
