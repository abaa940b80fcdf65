package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/shiftpay-hr/shiftpay-backend-go/internal/domain/payslip"
)

type PayslipJobs struct {
	payslipService payslip.PayslipService
}

func NewPayslipJobs(payslipService payslip.PayslipService) *PayslipJobs {
	return &PayslipJobs{payslipService: payslipService}
}

func (j *PayslipJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("recompute_current_period_payslips", 1*time.Hour, j.RecomputeCurrentPeriod)
}

// RecomputeCurrentPeriod refreshes every employee's payslip for the running
// calendar month, so late attendance corrections show up without a manual
// recompute. Only fires during the first hour of the day (UTC).
func (j *PayslipJobs) RecomputeCurrentPeriod(ctx context.Context) error {
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting payslip recomputation job")

	if err := j.payslipService.RecomputeCurrentPeriod(ctx); err != nil {
		return err
	}

	slog.Info("Cron: Payslip recomputation job finished")
	return nil
}
