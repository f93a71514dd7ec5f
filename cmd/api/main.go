package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/golang-migrate/migrate/v4"
	migratePostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/paydesk/payroll-backend-go/internal/config"
	appHTTP "github.com/paydesk/payroll-backend-go/internal/handler/http"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
	"github.com/paydesk/payroll-backend-go/internal/repository/postgresql"
	payrollService "github.com/paydesk/payroll-backend-go/internal/service/payroll"
	salarySlipService "github.com/paydesk/payroll-backend-go/internal/service/salaryslip"
	salaryStructureService "github.com/paydesk/payroll-backend-go/internal/service/salarystructure"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()

	if err := runMigrations(dsn, cfg.App.MigrationsPath); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	structureRepo := postgresql.NewSalaryStructureRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	slipRepo := postgresql.NewSalarySlipRepository(db)

	structureSvc := salaryStructureService.NewSalaryStructureService(db, structureRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, structureRepo, employeeRepo, slipRepo)
	slipSvc := salarySlipService.NewSalarySlipService(db, slipRepo, payrollRepo)

	structureHandler := appHTTP.NewSalaryStructureHandler(structureSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	slipHandler := appHTTP.NewSalarySlipHandler(slipSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		structureHandler,
		payrollHandler,
		slipHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

// runMigrations applies pending schema migrations over a short-lived
// database/sql connection; the pgxpool used by the app never sees DDL.
func runMigrations(dsn, migrationsPath string) error {
	migrationDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer migrationDB.Close()

	driver, err := migratePostgres.WithInstance(migrationDB, &migratePostgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
