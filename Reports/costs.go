package Reports

import (
	"math"
)

// Labor cost normalizes the daily wage over an 8 hour working day.
const HoursPerDay = 8

// AssignmentCost carries the fields a labor cost depends on: the hours a
// worker put in and that worker's daily wage at aggregation time.
type AssignmentCost struct {
	HoursWorked float64
	DailyWage   float64
}

// UsageCost carries the stored cost snapshot of one material usage. The
// snapshot was taken when the usage was recorded; unit price edits after the
// fact do not change it.
type UsageCost struct {
	TotalCost float64
}

// CostBreakdown is the derived cost of a single task.
type CostBreakdown struct {
	LaborCost    float64 `json:"labor_cost"`
	MaterialCost float64 `json:"material_cost"`
	TotalCost    float64 `json:"total_cost"`
}

// TaskCosts rolls a task's assignments and material usages up into its cost
// breakdown. Empty inputs yield a zero breakdown, not an error. A zero or
// missing wage contributes zero labor cost; the worker-creation boundary is
// responsible for rejecting wages of zero.
func TaskCosts(assignments []AssignmentCost, usages []UsageCost) CostBreakdown {
	var b CostBreakdown
	for _, a := range assignments {
		b.LaborCost += a.HoursWorked * (a.DailyWage / HoursPerDay)
	}
	for _, u := range usages {
		b.MaterialCost += u.TotalCost
	}
	b.TotalCost = b.LaborCost + b.MaterialCost
	return b
}

// TaskCostRow is one task's line in a project cost report. MaterialCost and
// LaborCost come from fresh joins, not the cached actual_cost column.
type TaskCostRow struct {
	TaskID         uint    `json:"task_id"`
	TaskName       string  `json:"task_name"`
	ParentTaskID   *uint   `json:"parent_task_id"`
	ParentTaskName string  `json:"parent_task_name,omitempty"`
	Status         string  `json:"status"`
	EstimatedCost  float64 `json:"estimated_cost"`
	MaterialCost   float64 `json:"material_cost"`
	LaborCost      float64 `json:"labor_cost"`
	TotalCost      float64 `json:"total_cost"`
	CostVariance   float64 `json:"cost_variance"`
}

// CostSummary is the project level rollup over TaskCostRows.
type CostSummary struct {
	TotalEstimated float64       `json:"total_estimated"`
	TotalMaterial  float64       `json:"total_material"`
	TotalLabor     float64       `json:"total_labor"`
	TotalActual    float64       `json:"total_actual"`
	Tasks          []TaskCostRow `json:"tasks"`
}

// SummaryOptions controls the hierarchy handling of ProjectCostSummary.
// The flat sum counts every task, parents and subtasks alike, which double
// counts estimates when a parent carries its own estimated cost next to its
// subtasks'. LeafTasksOnly restricts the summary to tasks without children.
type SummaryOptions struct {
	LeafTasksOnly bool
}

// ProjectCostSummary sums estimated, material and labor cost over the given
// tasks and fills each row's total and signed variance (positive = overrun).
func ProjectCostSummary(rows []TaskCostRow, opts SummaryOptions) CostSummary {
	summary := CostSummary{Tasks: []TaskCostRow{}}

	hasChildren := make(map[uint]bool, len(rows))
	if opts.LeafTasksOnly {
		for _, row := range rows {
			if row.ParentTaskID != nil {
				hasChildren[*row.ParentTaskID] = true
			}
		}
	}

	for _, row := range rows {
		if opts.LeafTasksOnly && hasChildren[row.TaskID] {
			continue
		}
		row.TotalCost = row.LaborCost + row.MaterialCost
		row.CostVariance = row.TotalCost - row.EstimatedCost

		summary.TotalEstimated += row.EstimatedCost
		summary.TotalMaterial += row.MaterialCost
		summary.TotalLabor += row.LaborCost
		summary.Tasks = append(summary.Tasks, row)
	}
	summary.TotalActual = summary.TotalMaterial + summary.TotalLabor
	return summary
}

// Round2 rounds a monetary or percentage value to two decimals for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
