package roster

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/ogurasousui/codex-grpc-payroll/internal/core/payroll"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate は各行の形式と、名簿内での社員 ID の一意性を検証します。
func Validate(records []Record) error {
	seen := make(map[string]int, len(records))
	for i := range records {
		if err := validate.Struct(&records[i]); err != nil {
			return fmt.Errorf("%w: row %d: %s", ErrInvalidRecord, i+1, describeValidation(err))
		}
		if prev, ok := seen[records[i].ID]; ok {
			return fmt.Errorf("%w: %s (rows %d and %d)", ErrDuplicateEmployeeID, records[i].ID, prev+1, i+1)
		}
		seen[records[i].ID] = i
	}
	return nil
}

// Build は名簿を検証し、行順を保ったまま社員へ変換します。
// 臨時社員の生成時エラーは payroll.ErrInvalidInput のまま返します。
func Build(records []Record) ([]payroll.Employee, error) {
	if err := Validate(records); err != nil {
		return nil, err
	}

	employees := make([]payroll.Employee, 0, len(records))
	for i, rec := range records {
		e, err := buildEmployee(rec)
		if err != nil {
			if errors.Is(err, payroll.ErrInvalidInput) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidRecord, i+1, err)
		}
		employees = append(employees, e)
	}
	return employees, nil
}

func buildEmployee(rec Record) (payroll.Employee, error) {
	hireDate, err := time.Parse(HireDateLayout, rec.HireDate)
	if err != nil {
		return nil, fmt.Errorf("hire_date: %w", err)
	}
	profile := payroll.NewProfile(rec.ID, rec.Name, hireDate, rec.Permanent)

	switch rec.Kind {
	case payroll.KindSalaried:
		salary, err := parseAmount("monthly_salary", rec.MonthlySalary)
		if err != nil {
			return nil, err
		}
		return payroll.NewSalaried(profile, salary), nil

	case payroll.KindHourly:
		rate, err := parseAmount("hourly_rate", rec.HourlyRate)
		if err != nil {
			return nil, err
		}
		hours, err := parseAmount("hours_worked", rec.HoursWorked)
		if err != nil {
			return nil, err
		}
		return payroll.NewHourly(profile, rate, hours, rec.MonthsOfService, rec.AcceptSavingsFund), nil

	case payroll.KindCommission:
		base, err := parseAmount("base_salary", rec.BaseSalary)
		if err != nil {
			return nil, err
		}
		sales, err := parseAmount("sales_amount", rec.SalesAmount)
		if err != nil {
			return nil, err
		}
		percent, err := parseAmount("commission_percent", rec.CommissionPercent)
		if err != nil {
			return nil, err
		}
		return payroll.NewCommission(profile, base, sales, percent), nil

	case payroll.KindTemporary:
		salary, err := parseOptionalAmount("monthly_salary", rec.MonthlySalary)
		if err != nil {
			return nil, err
		}
		return payroll.NewTemporary(profile, salary)

	default:
		return nil, fmt.Errorf("kind: unsupported value %q", rec.Kind)
	}
}

func parseAmount(field, raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Decimal{}, fmt.Errorf("%s: value is required", field)
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s: %w", field, err)
	}
	return d, nil
}

// parseOptionalAmount は空文字列を NULL として扱います。
func parseOptionalAmount(field, raw string) (decimal.NullDecimal, error) {
	if strings.TrimSpace(raw) == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := parseAmount(field, raw)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}
