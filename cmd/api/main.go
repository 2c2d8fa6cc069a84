package main

import (
	"fmt"
	"net/http"

	"github.com/emaar-erp/erp-backend-go/internal/config"
	appHTTP "github.com/emaar-erp/erp-backend-go/internal/handler/http"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/cron"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/database"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/jwt"
	"github.com/emaar-erp/erp-backend-go/internal/repository/postgresql"
	contractService "github.com/emaar-erp/erp-backend-go/internal/service/contract"
	expenseService "github.com/emaar-erp/erp-backend-go/internal/service/expense"
	incomeService "github.com/emaar-erp/erp-backend-go/internal/service/income"
	payrollService "github.com/emaar-erp/erp-backend-go/internal/service/payroll"
	projectService "github.com/emaar-erp/erp-backend-go/internal/service/project"
	refundService "github.com/emaar-erp/erp-backend-go/internal/service/refund"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	accountRepo := postgresql.NewAccountRepository(db)
	balanceRepo := postgresql.NewProjectBalanceRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	accrualRepo := postgresql.NewFeeAccrualRepository(db)
	feeLogRepo := postgresql.NewFeeLogRepository(db)
	incomeRepo := postgresql.NewIncomeRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	expensePaymentRepo := postgresql.NewExpensePaymentRepository(db)
	refundRepo := postgresql.NewRefundRepository(db)
	contractRepo := postgresql.NewContractRepository(db)
	contractPaymentRepo := postgresql.NewContractPaymentRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	employeeAccountRepo := postgresql.NewEmployeeAccountRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	incomeSvc := incomeService.NewIncomeService(db, incomeRepo, projectRepo, accountRepo, balanceRepo)
	expenseSvc := expenseService.NewExpenseService(
		db,
		expenseRepo,
		expensePaymentRepo,
		projectRepo,
		accountRepo,
		balanceRepo,
		accrualRepo,
		feeLogRepo,
	)
	refundSvc := refundService.NewRefundService(
		db,
		refundRepo,
		accountRepo,
		balanceRepo,
		accrualRepo,
		feeLogRepo,
	)
	contractSvc := contractService.NewContractService(
		db,
		contractRepo,
		contractPaymentRepo,
		expenseRepo,
		expensePaymentRepo,
		projectRepo,
		accountRepo,
		balanceRepo,
		accrualRepo,
		feeLogRepo,
	)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeAccountRepo)
	projectSvc := projectService.NewProjectService(balanceRepo, feeLogRepo)

	incomeHandler := appHTTP.NewIncomeHandler(incomeSvc)
	expenseHandler := appHTTP.NewExpenseHandler(expenseSvc)
	refundHandler := appHTTP.NewRefundHandler(refundSvc)
	contractHandler := appHTTP.NewContractHandler(contractSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	projectHandler := appHTTP.NewProjectHandler(projectSvc)

	scheduler := cron.NewScheduler()
	cron.NewPercentageJobs(accrualRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		incomeHandler,
		expenseHandler,
		refundHandler,
		contractHandler,
		payrollHandler,
		projectHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
