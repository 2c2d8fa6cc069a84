package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/emaar-erp/erp-backend-go/internal/domain/percentage"
)

// PercentageJobs contains fee accrual period cron jobs
type PercentageJobs struct {
	feeAccrualRepo percentage.FeeAccrualRepository
}

// NewPercentageJobs creates fee accrual cron jobs
func NewPercentageJobs(feeAccrualRepo percentage.FeeAccrualRepository) *PercentageJobs {
	return &PercentageJobs{
		feeAccrualRepo: feeAccrualRepo,
	}
}

// RegisterJobs registers all fee accrual cron jobs
func (j *PercentageJobs) RegisterJobs(scheduler *Scheduler) {
	// Roll fee accrual periods over daily; only rows whose period started
	// in a previous month get reset.
	scheduler.AddJob(
		"rollover_fee_periods",
		24*time.Hour,
		j.RolloverFeePeriods,
	)
}

// RolloverFeePeriods zeroes period_percentage for accruals whose period
// began before the start of the current month. total_percentage is never
// touched by the rollover.
func (j *PercentageJobs) RolloverFeePeriods(ctx context.Context) error {
	now := time.Now().UTC()
	cutoff := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	rolled, err := j.feeAccrualRepo.StartNewPeriods(ctx, cutoff)
	if err != nil {
		return err
	}

	if rolled > 0 {
		slog.Info("Fee accrual periods rolled over", "count", rolled)
	}
	return nil
}
