package postgresql_test

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	testDB *database.DB
	dbOnce sync.Once
)

// requireTestDB connects once per test binary. Tests are skipped, not
// failed, when no test database is configured so the pure suites still run
// everywhere.
func requireTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database integration test")
	}

	dbOnce.Do(func() {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn)
		if err != nil {
			t.Logf("failed to connect to test database: %v", err)
		}
	})
	if testDB == nil {
		t.Skip("test database unavailable")
	}

	return testDB
}

func setupTestData(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()

	for _, table := range []string{"salary_slips", "payrolls", "salary_structures", "employees"} {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func createTestEmployee(t *testing.T, ctx context.Context, db *database.DB, code string) {
	t.Helper()

	_, err := db.Exec(ctx, `
		INSERT INTO employees (id, employee_id, full_name, email, department, designation, status,
			bank_name, bank_account_number, bank_ifsc, pan)
		VALUES ($1, $2, $3, $4, 'Engineering', 'Engineer', 'active',
			'Test Bank', '0001112223334', 'TEST0000001', 'ABCDE1234F')
	`, uuid.Must(uuid.NewV7()).String(), code, "Employee "+code, code+"@example.com")
	require.NoError(t, err)
}

func createActiveStructure(t *testing.T, ctx context.Context, db *database.DB, code string, basic int64) {
	t.Helper()

	_, err := db.Exec(ctx, `
		INSERT INTO salary_structures (id, employee_id, basic_salary, created_by, updated_by)
		VALUES ($1, $2, $3, 'test', 'test')
	`, uuid.Must(uuid.NewV7()).String(), code, decimal.NewFromInt(basic))
	require.NoError(t, err)
}

func countRows(t *testing.T, ctx context.Context, db *database.DB, query string, args ...interface{}) int {
	t.Helper()

	var count int
	require.NoError(t, db.QueryRow(ctx, query, args...).Scan(&count))
	return count
}
