package http

import (
	"log/slog"
	"os"

	"github.com/emaar-erp/erp-backend-go/internal/handler/http/middleware"
	"github.com/emaar-erp/erp-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	incomeHandler IncomeHandler,
	expenseHandler ExpenseHandler,
	refundHandler RefundHandler,
	contractHandler ContractHandler,
	payrollHandler PayrollHandler,
	projectHandler ProjectHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "erp-emaar"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/projects/{projectID}", func(r chi.Router) {
				r.Get("/balance", projectHandler.GetBalance)
				r.Get("/fee-logs", projectHandler.ListFeeLogs)

				r.Route("/incomes", func(r chi.Router) {
					r.Get("/", incomeHandler.ListIncomes)
					r.Post("/", incomeHandler.AddIncome)
					r.Delete("/{incomeID}", incomeHandler.DeleteIncome)
				})

				r.Route("/expenses", func(r chi.Router) {
					r.Get("/", expenseHandler.ListExpenses)
					r.Post("/", expenseHandler.CreateExpense)
					r.Get("/{expenseID}", expenseHandler.GetExpense)
					r.Post("/{expenseID}/payments", expenseHandler.PayExpense)
				})

				r.Route("/refunds", func(r chi.Router) {
					r.Get("/", refundHandler.ListRefunds)
					r.Post("/", refundHandler.CreateRefund)
					r.Delete("/{refundID}", refundHandler.DeleteRefund)
				})
			})

			r.Route("/contract-payments", func(r chi.Router) {
				r.Post("/{paymentID}/accept", contractHandler.AcceptPayment)
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Post("/{payrollID}/accept", payrollHandler.AcceptPayment)
				r.Get("/employees/{employeeID}", payrollHandler.ListByEmployee)
			})
		})
	})
	return r
}
