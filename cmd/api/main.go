package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mindgarden/counseling-backend-go/internal/config"
	appHTTP "github.com/mindgarden/counseling-backend-go/internal/handler/http"
	"github.com/mindgarden/counseling-backend-go/internal/pkg/cron"
	"github.com/mindgarden/counseling-backend-go/internal/pkg/database"
	"github.com/mindgarden/counseling-backend-go/internal/pkg/jwt"
	"github.com/mindgarden/counseling-backend-go/internal/pkg/ledger"
	"github.com/mindgarden/counseling-backend-go/internal/repository/postgresql"
	financeService "github.com/mindgarden/counseling-backend-go/internal/service/finance"
	salaryService "github.com/mindgarden/counseling-backend-go/internal/service/salary"
	taxService "github.com/mindgarden/counseling-backend-go/internal/service/tax"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	profileRepo := postgresql.NewProfileRepository(db)
	optionRepo := postgresql.NewOptionRepository(db)
	calculationRepo := postgresql.NewCalculationRepository(db)
	lineItemRepo := postgresql.NewTaxLineItemRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)
	commonCodeRepo := postgresql.NewCommonCodeRepository(db)
	consultantRepo := postgresql.NewConsultantRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	ledgerClient := ledger.NewClient(cfg.Ledger.BaseURL, cfg.Ledger.APIKey)

	taxSvc := taxService.NewTaxService(lineItemRepo, calculationRepo)
	emitter := financeService.NewEmitter(ledgerClient, consultantRepo)
	salarySvc := salaryService.NewSalaryService(
		db,
		profileRepo,
		optionRepo,
		calculationRepo,
		sessionRepo,
		commonCodeRepo,
		consultantRepo,
		taxSvc,
		emitter,
	)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("cleanup-duplicate-calculations", 24*time.Hour, func(ctx context.Context) error {
		deleted, err := salarySvc.CleanupDuplicateCalculations(ctx)
		if err != nil {
			return err
		}
		if deleted > 0 {
			fmt.Printf("Cleanup removed %d duplicate calculations\n", deleted)
		}
		return nil
	})
	scheduler.Start()
	defer scheduler.Stop()

	salaryHandler := appHTTP.NewSalaryHandler(salarySvc)
	taxHandler := appHTTP.NewTaxHandler(taxSvc)

	router := appHTTP.NewRouter(JWTService, salaryHandler, taxHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
