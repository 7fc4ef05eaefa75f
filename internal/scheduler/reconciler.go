package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"health-research-cms/internal/domain"
	"health-research-cms/pkg/logger"

	"github.com/robfig/cron/v3"
)

// StatusReconciler periodically sweeps vacancies and persists any
// status that has drifted from its effective value, so a vacancy whose
// deadline passes or whose headcount fills closes without an admin
// touching it.
type StatusReconciler struct {
	vacancyUC domain.VacancyUsecase
	interval  time.Duration
	cron      *cron.Cron
}

func NewStatusReconciler(vacancyUC domain.VacancyUsecase, interval time.Duration) *StatusReconciler {
	return &StatusReconciler{
		vacancyUC: vacancyUC,
		interval:  interval,
		cron:      cron.New(),
	}
}

// Start runs one sweep immediately and then schedules recurring sweeps.
func (r *StatusReconciler) Start() error {
	r.run()

	spec := fmt.Sprintf("@every %s", r.interval)
	if _, err := r.cron.AddFunc(spec, r.run); err != nil {
		return fmt.Errorf("failed to schedule status reconciler: %w", err)
	}
	r.cron.Start()

	logger.Log.Info("status reconciler started", slog.Duration("interval", r.interval))
	return nil
}

// Stop halts scheduling and waits for a running sweep to finish.
func (r *StatusReconciler) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	logger.Log.Info("status reconciler stopped")
}

func (r *StatusReconciler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	corrections, err := r.vacancyUC.ReconcileStatuses(ctx, time.Now())
	if err != nil {
		logger.Log.Error("vacancy status sweep failed", slog.String("error", err.Error()))
		return
	}
	if len(corrections) > 0 {
		logger.Log.Info("vacancy status sweep applied corrections",
			slog.Int("count", len(corrections)))
	}
}
