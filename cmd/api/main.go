package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/shiftpay-hr/shiftpay-backend-go/internal/config"
	appHTTP "github.com/shiftpay-hr/shiftpay-backend-go/internal/handler/http"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/pkg/cron"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/pkg/database"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/pkg/jwt"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/pkg/metrics"
	"github.com/shiftpay-hr/shiftpay-backend-go/internal/repository/postgresql"
	attendanceService "github.com/shiftpay-hr/shiftpay-backend-go/internal/service/attendance"
	holidayService "github.com/shiftpay-hr/shiftpay-backend-go/internal/service/holiday"
	payslipService "github.com/shiftpay-hr/shiftpay-backend-go/internal/service/payslip"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "shiftpay"),
	)
	slog.SetDefault(logger)

	dsn := cfg.DatabaseURL()
	if err := database.RunMigrations(dsn); err != nil {
		fmt.Println("Error running migrations:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	schedule, err := cfg.Payroll.Schedule()
	if err != nil {
		fmt.Println("Error building shift schedule:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	contractRepo := postgresql.NewContractRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	collector := metrics.NewCollector(registry)

	payslipSvc := payslipService.NewPayslipService(
		payslipRepo,
		attendanceRepo,
		employeeRepo,
		holidayRepo,
		contractRepo,
		schedule,
		cfg.Payroll.RoundingStepMinutes,
		cfg.Payroll.LeaveBankHours,
		cfg.Payroll.DefaultTimezone,
		collector,
		logger,
	)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		cfg.Payroll.DefaultTimezone,
		collector,
		logger,
	)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)

	payslipHandler := appHTTP.NewPayslipHandler(payslipSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)

	scheduler := cron.NewScheduler()
	cron.NewPayslipJobs(payslipSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.Env,
		metrics.Handler(registry),
		payslipHandler,
		attendanceHandler,
		holidayHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
