package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/mindgarden/counseling-backend-go/internal/handler/http/middleware"
	"github.com/mindgarden/counseling-backend-go/internal/pkg/jwt"
)

func NewRouter(JWTService jwt.Service, salaryHandler SalaryHandler, taxHandler TaxHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "counseling-backend"),
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

		// Salary administration requires an authenticated admin
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
			r.Use(middleware.AdminOnly)

			r.Route("/salary", func(r chi.Router) {
				r.Get("/profiles", salaryHandler.ListActiveProfiles)

				r.Route("/consultants/{consultantId}", func(r chi.Router) {
					r.Post("/profile", salaryHandler.CreateProfile)
					r.Get("/profile", salaryHandler.GetActiveProfile)
					r.Delete("/profile", salaryHandler.DeactivateProfile)

					r.Post("/calculate/freelance", salaryHandler.CalculateFreelance)
					r.Post("/calculate/regular", salaryHandler.CalculateRegular)

					r.Get("/calculations", salaryHandler.GetCalculations)
					r.Get("/calculation", salaryHandler.GetCalculationByPeriod)
					r.Get("/total-paid", salaryHandler.GetTotalPaid)
				})

				r.Route("/profiles/{profileId}/options", func(r chi.Router) {
					r.Post("/", salaryHandler.AddOption)
					r.Get("/", salaryHandler.ListOptions)
				})
				r.Route("/options/{id}", func(r chi.Router) {
					r.Put("/", salaryHandler.UpdateOption)
					r.Delete("/", salaryHandler.RemoveOption)
				})

				r.Route("/calculations", func(r chi.Router) {
					r.Get("/pending-approval", salaryHandler.ListPendingApproval)
					r.Get("/pending-payment", salaryHandler.ListPendingPayment)
					r.Post("/cleanup", salaryHandler.CleanupDuplicates)
					r.Post("/{id}/approve", salaryHandler.ApproveCalculation)
					r.Post("/{id}/mark-paid", salaryHandler.MarkCalculationPaid)
				})

				r.Route("/statistics", func(r chi.Router) {
					r.Get("/monthly", salaryHandler.GetMonthlyStatistics)
					r.Get("/profile-types", salaryHandler.GetProfileTypeStatistics)
				})
			})

			r.Route("/tax", func(r chi.Router) {
				r.Get("/calculations/{calculationId}/line-items", taxHandler.GetLineItems)
				r.Delete("/line-items/{id}", taxHandler.DeactivateLineItem)
				r.Get("/statistics", taxHandler.GetPeriodStatistics)
			})
		})
	})

	return r
}
