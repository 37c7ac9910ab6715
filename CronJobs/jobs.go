package CronJobs

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"Crane/Models"
)

// CostReconciler rewrites every task's cached actual_cost from the underlying
// assignment and material rows on a nightly schedule. The write paths keep the
// cache in step transactionally; the sweep catches rows written outside the
// API or left behind by worker wage edits.
type CostReconciler struct {
	db             *gorm.DB
	cronScheduler  *cron.Cron
	runImmediately bool
	jobID          cron.EntryID
}

// NewCostReconciler creates a reconciler on the given database handle.
func NewCostReconciler(db *gorm.DB, runImmediately bool) *CostReconciler {
	return &CostReconciler{
		db:             db,
		cronScheduler:  cron.New(cron.WithSeconds()),
		runImmediately: runImmediately,
	}
}

// Start schedules the nightly sweep at 2:00 AM.
func (r *CostReconciler) Start() error {
	var err error
	r.jobID, err = r.cronScheduler.AddFunc("0 0 2 * * *", func() {
		log.Println("Running scheduled task cost reconciliation")
		if err := r.ReconcileAll(); err != nil {
			log.Println("Cost reconciliation failed:", err)
		}
	})
	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	r.cronScheduler.Start()
	log.Println("Cost reconciliation scheduler started - will run daily at 2:00 AM")

	if r.runImmediately {
		log.Println("Running initial cost reconciliation")
		if err := r.ReconcileAll(); err != nil {
			log.Println("Initial cost reconciliation failed:", err)
		}
	}
	return nil
}

// Stop halts the scheduler. Running jobs finish.
func (r *CostReconciler) Stop() {
	if r.cronScheduler != nil {
		r.cronScheduler.Stop()
	}
}

// ReconcileAll recomputes the cached cost of every live task, one
// transaction per task so a single bad row cannot wedge the sweep.
func (r *CostReconciler) ReconcileAll() error {
	var taskIDs []uint
	if err := r.db.Model(&Models.Task{}).Pluck("id", &taskIDs).Error; err != nil {
		return fmt.Errorf("error listing tasks: %w", err)
	}

	var failed int
	for _, taskID := range taskIDs {
		err := r.db.Transaction(func(tx *gorm.DB) error {
			return Models.RecomputeTaskActualCost(tx, taskID)
		})
		if err != nil {
			failed++
			log.Printf("Failed to reconcile task %d: %v\n", taskID, err)
		}
	}

	log.Printf("Cost reconciliation finished: %d tasks, %d failures\n", len(taskIDs), failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d tasks failed to reconcile", failed, len(taskIDs))
	}
	return nil
}
