package payroll

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func newTestService(t *testing.T, employees []Employee) *Service {
	t.Helper()
	return NewService(employees, DefaultRates(), &stubClock{now: date(2025, time.June, 1)})
}

func TestService_CalculateFor(t *testing.T) {
	t.Parallel()

	h := NewHourly(NewProfile("H1", "Carlos Ruiz", date(2025, time.January, 1), false), dec(t, "20000"), dec(t, "45"), 12, false)
	svc := newTestService(t, nil)

	result, err := svc.CalculateFor(h)
	if err != nil {
		t.Fatalf("CalculateFor returned error: %v", err)
	}

	if result.EmployeeID() != "H1" {
		t.Fatalf("unexpected employee id: %s", result.EmployeeID())
	}
	if !result.Gross().Equal(dec(t, "950000")) {
		t.Fatalf("expected gross 950000, got %s", result.Gross())
	}
	if !result.Deductions().Equal(dec(t, "38000")) {
		t.Fatalf("expected deductions 38000, got %s", result.Deductions())
	}
	if !result.Net().Equal(dec(t, "912000")) {
		t.Fatalf("expected net 912000, got %s", result.Net())
	}
}

func TestService_CalculateFor_UsesConfiguredRates(t *testing.T) {
	t.Parallel()

	s := NewSalaried(NewProfile("S1", "Laura", date(2024, time.January, 1), true), dec(t, "3000000"))
	rates := Rates{
		DeductionRate: dec(t, "0.08"),
		ARLRate:       decimal.NewNullDecimal(dec(t, "0.02")),
		FoodAllowance: dec(t, "500000"),
	}
	svc := NewService(nil, rates, &stubClock{now: date(2025, time.June, 1)})

	result, err := svc.CalculateFor(s)
	if err != nil {
		t.Fatalf("CalculateFor returned error: %v", err)
	}
	if !result.Gross().Equal(dec(t, "3500000")) {
		t.Fatalf("expected gross 3500000, got %s", result.Gross())
	}
	if !result.Deductions().Equal(dec(t, "350000")) {
		t.Fatalf("expected deductions 350000, got %s", result.Deductions())
	}
	if !result.Net().Equal(dec(t, "3150000")) {
		t.Fatalf("expected net 3150000, got %s", result.Net())
	}
}

func TestService_CalculateFor_PropagatesErrorsUnwrapped(t *testing.T) {
	t.Parallel()

	c := NewCommission(NewProfile("C1", "Sofia", date(2024, time.January, 1), false), dec(t, "1000000"), dec(t, "-5"), dec(t, "0.10"))
	svc := newTestService(t, nil)

	_, err := svc.CalculateFor(c)
	if err != ErrNegativeSales {
		t.Fatalf("expected ErrNegativeSales unchanged, got %v", err)
	}
}

func TestService_CalculateFor_NegativeNet(t *testing.T) {
	t.Parallel()

	tmp, err := NewTemporary(NewProfile("T1", "Marta", date(2024, time.January, 1), false), decimal.NewNullDecimal(dec(t, "1000")))
	if err != nil {
		t.Fatalf("NewTemporary returned error: %v", err)
	}
	svc := NewService(nil, Rates{DeductionRate: dec(t, "1.5")}, &stubClock{now: date(2025, time.June, 1)})

	if _, err := svc.CalculateFor(tmp); !errors.Is(err, ErrNegativeNet) {
		t.Fatalf("expected ErrNegativeNet, got %v", err)
	}
}

func TestService_CalculateFor_Idempotent(t *testing.T) {
	t.Parallel()

	s := NewSalaried(NewProfile("S1", "Laura", date(2018, time.January, 1), true), dec(t, "4200000.50"))
	svc := newTestService(t, nil)

	first, err := svc.CalculateFor(s)
	if err != nil {
		t.Fatalf("first CalculateFor returned error: %v", err)
	}
	second, err := svc.CalculateFor(s)
	if err != nil {
		t.Fatalf("second CalculateFor returned error: %v", err)
	}

	if first.String() != second.String() {
		t.Fatalf("expected identical results, got %s and %s", first, second)
	}
}

func TestService_CalculateFor_FollowsClock(t *testing.T) {
	t.Parallel()

	s := NewSalaried(NewProfile("S1", "Laura", date(2020, time.March, 1), false), dec(t, "1000000"))
	clk := &stubClock{now: date(2025, time.December, 31)}
	svc := NewService(nil, DefaultRates(), clk)

	before, err := svc.CalculateFor(s)
	if err != nil {
		t.Fatalf("CalculateFor returned error: %v", err)
	}
	if !before.Gross().Equal(dec(t, "1000000")) {
		t.Fatalf("expected no bonus in 2025, got %s", before.Gross())
	}

	clk.now = date(2026, time.January, 1)
	after, err := svc.CalculateFor(s)
	if err != nil {
		t.Fatalf("CalculateFor returned error: %v", err)
	}
	if !after.Gross().Equal(dec(t, "1100000")) {
		t.Fatalf("expected bonus from 2026, got %s", after.Gross())
	}
}

func TestService_ProcessAll_KeepsRosterOrder(t *testing.T) {
	t.Parallel()

	employees := []Employee{
		NewHourly(NewProfile("E001", "Ana Lopez", date(2025, time.January, 1), false), dec(t, "20000"), dec(t, "40"), 12, false),
		NewHourly(NewProfile("E002", "Juan Perez", date(2025, time.January, 1), true), dec(t, "15000"), dec(t, "42"), 6, true),
		NewCommission(NewProfile("E003", "Sofia", date(2021, time.May, 1), true), dec(t, "2000000"), dec(t, "30000000"), dec(t, "0.10")),
	}
	svc := newTestService(t, employees)

	results, err := svc.ProcessAll()
	if err != nil {
		t.Fatalf("ProcessAll returned error: %v", err)
	}
	if len(results) != len(employees) {
		t.Fatalf("expected %d results, got %d", len(employees), len(results))
	}
	for i, r := range results {
		if r.EmployeeID() != employees[i].ID() {
			t.Fatalf("result %d: expected %s, got %s", i, employees[i].ID(), r.EmployeeID())
		}
		if !r.Net().IsPositive() {
			t.Fatalf("result %d: expected positive net, got %s", i, r.Net())
		}
	}
}

func TestService_ProcessAll_AbortsOnFirstError(t *testing.T) {
	t.Parallel()

	employees := []Employee{
		NewHourly(NewProfile("E001", "Ana Lopez", date(2025, time.January, 1), false), dec(t, "20000"), dec(t, "40"), 12, false),
		NewHourly(NewProfile("E002", "Juan Perez", date(2025, time.January, 1), false), dec(t, "15000"), dec(t, "-2"), 6, false),
		NewHourly(NewProfile("E003", "Luis", date(2025, time.January, 1), false), dec(t, "15000"), dec(t, "10"), 6, false),
	}
	svc := newTestService(t, employees)

	results, err := svc.ProcessAll()
	if !errors.Is(err, ErrNegativeHours) {
		t.Fatalf("expected ErrNegativeHours, got %v", err)
	}
	if results != nil {
		t.Fatalf("expected no partial results, got %d", len(results))
	}
}

func TestService_ProcessAll_EmptyRoster(t *testing.T) {
	t.Parallel()

	results, err := newTestService(t, nil).ProcessAll()
	if err != nil {
		t.Fatalf("ProcessAll returned error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}

func TestResult_String(t *testing.T) {
	t.Parallel()

	r := NewResult("E001", dec(t, "950000"), dec(t, "38000"), dec(t, "912000"))
	want := "PayrollResult[id=E001, gross=950000, deductions=38000, net=912000]"
	if r.String() != want {
		t.Fatalf("unexpected rendering: %s", r)
	}
}

func TestFixedClock(t *testing.T) {
	t.Parallel()

	at := date(2024, time.July, 1)
	if !(FixedClock{At: at}).Now().Equal(at) {
		t.Fatalf("expected fixed clock to return %v", at)
	}
}
