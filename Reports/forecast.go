package Reports

import (
	"time"
)

const dateLayout = "2006-01-02"

// Forecast compares actual spend against the spend expected from elapsed
// schedule time. Variance is actual minus forecast; positive means the
// project is spending ahead of its schedule progress.
type Forecast struct {
	TotalDays            int     `json:"total_days"`
	DaysPassed           int     `json:"days_passed"`
	CompletionPercentage float64 `json:"completion_percentage"`
	BudgetUtilization    float64 `json:"budget_utilization"`
	ForecastCompletion   float64 `json:"forecast_completion"`
	Variance             float64 `json:"variance"`
}

// BudgetForecast derives the schedule-anchored budget figures for a project,
// evaluated as of today. Degenerate configuration (zero or negative duration,
// zero budget, unparseable dates) degrades the dependent figures to zero
// instead of failing; project create/update validates end >= start so this
// only triggers for rows written outside the API.
func BudgetForecast(startDate, endDate string, estimatedBudget, totalActual float64, today time.Time) Forecast {
	var f Forecast

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return f
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return f
	}
	// Anchor on the calendar date, not the UTC instant, so a local-zone
	// clock near midnight cannot shift days_passed by one.
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	f.TotalDays = int(end.Sub(start).Hours() / 24)
	if today.After(start) {
		f.DaysPassed = int(today.Sub(start).Hours() / 24)
	}

	var completion float64
	if f.TotalDays > 0 {
		completion = float64(f.DaysPassed) / float64(f.TotalDays) * 100
	}
	f.CompletionPercentage = Round2(completion)

	if estimatedBudget > 0 {
		f.BudgetUtilization = Round2(totalActual / estimatedBudget * 100)
	}
	if completion > 0 {
		f.ForecastCompletion = Round2(estimatedBudget * (completion / 100))
		f.Variance = Round2(totalActual - estimatedBudget*(completion/100))
	}
	return f
}
