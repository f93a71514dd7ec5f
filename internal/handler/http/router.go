package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	env string,
	structureHandler SalaryStructureHandler,
	payrollHandler PayrollHandler,
	slipHandler SalarySlipHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Actor"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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
		r.Route("/salary-structures", func(r chi.Router) {
			r.Post("/", structureHandler.Create)
			r.Get("/", structureHandler.ListByEmployee)
			r.Get("/{id}", structureHandler.Get)
			r.Post("/{id}/deactivate", structureHandler.Deactivate)
		})

		r.Route("/payrolls", func(r chi.Router) {
			r.Post("/process", payrollHandler.Process)
			r.Post("/bulk-process", payrollHandler.BulkProcess)
			r.Get("/", payrollHandler.ListPayrolls)
			r.Get("/summary", payrollHandler.GetSummary)
			r.Get("/lookup", payrollHandler.LookupPayroll)
			r.Get("/export", payrollHandler.ExportCSV)
			r.Get("/{id}", payrollHandler.GetPayroll)
			r.Patch("/{id}/payment-status", payrollHandler.UpdatePaymentStatus)
			r.Delete("/{id}", payrollHandler.DeletePayroll)
		})

		r.Route("/salary-slips", func(r chi.Router) {
			r.Post("/generate", slipHandler.Generate)
			r.Get("/", slipHandler.List)
			r.Get("/{id}", slipHandler.Get)
			r.Get("/{id}/pdf", slipHandler.DownloadPDF)
			r.Post("/{id}/email-sent", slipHandler.MarkEmailed)
			r.Patch("/{id}/notes", slipHandler.UpdateNotes)
		})
	})

	return r
}
