package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ogurasousui/codex-grpc-payroll/internal/core/payroll"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write roster file: %v", err)
	}
	return path
}

func TestRepository_ListYAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "roster.yaml", `employees:
  - id: E001
    name: Ana Lopez
    kind: hourly
    hire_date: "2025-01-01"
    hourly_rate: "20000"
    hours_worked: "45"
    months_of_service: 12
  - id: E002
    name: Sofia Diaz
    kind: commission
    hire_date: "2021-05-01"
    permanent: true
    base_salary: "2000000"
    sales_amount: "30000000"
    commission_percent: "0.10"
`)

	repo, err := NewRepository(path, "")
	if err != nil {
		t.Fatalf("NewRepository returned error: %v", err)
	}

	records, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "E001" || records[0].Kind != payroll.KindHourly || records[0].HoursWorked != "45" || records[0].MonthsOfService != 12 {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[1].ID != "E002" || !records[1].Permanent || records[1].CommissionPercent != "0.10" {
		t.Fatalf("unexpected second record: %+v", records[1])
	}
}

func TestRepository_ListCSV(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "roster.csv", `id,name,kind,hire_date,permanent,monthly_salary,hourly_rate,hours_worked,months_of_service,accept_savings_fund,base_salary,sales_amount,commission_percent
S1,Laura Gomez,salaried,2018-04-01,true,5000000,,,0,false,,,
T1,Marta Rios,temporary,2025-02-01,false,1800000,,,0,false,,,
H1,Carlos Ruiz,hourly,2024-01-15,false,,20000,42.5,12,true,,,
`)

	repo, err := NewRepository(path, "")
	if err != nil {
		t.Fatalf("NewRepository returned error: %v", err)
	}

	records, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].ID != "S1" || records[0].Kind != payroll.KindSalaried || !records[0].Permanent || records[0].MonthlySalary != "5000000" {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[2].HoursWorked != "42.5" || !records[2].AcceptSavingsFund || records[2].MonthsOfService != 12 {
		t.Fatalf("unexpected hourly record: %+v", records[2])
	}
}

func TestRepository_ListMissingFile(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(filepath.Join(t.TempDir(), "missing.yaml"), FormatYAML)
	if err != nil {
		t.Fatalf("NewRepository returned error: %v", err)
	}

	if _, err := repo.List(context.Background()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestRepository_ListCanceledContext(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "roster.yaml", "employees: []\n")
	repo, err := NewRepository(path, FormatYAML)
	if err != nil {
		t.Fatalf("NewRepository returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := repo.List(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewRepository_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	if _, err := NewRepository("roster.json", ""); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := NewRepository("", FormatCSV); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestDecodeYAML_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := DecodeYAML([]byte("employees: [")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDecodeCSV_Empty(t *testing.T) {
	t.Parallel()

	records, err := DecodeCSV([]byte(""))
	if err != nil {
		t.Fatalf("DecodeCSV returned error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}
